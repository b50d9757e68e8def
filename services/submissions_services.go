package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"conspiracy/metrics"
	"conspiracy/models"
	"conspiracy/repository"
	"conspiracy/utils"
)

// OutcomeStatus classifies the result of one flag submission.
type OutcomeStatus string

const (
	OutcomeAccepted  OutcomeStatus = "accepted"
	OutcomeDuplicate OutcomeStatus = "duplicate"
	OutcomeRejected  OutcomeStatus = "rejected"
)

// Audit reasons stored with incorrect submissions.
const (
	ReasonWrong            = "wrong"
	ReasonAlreadySubmitted = "already_submitted"
)

// ReasonUnknownFlag is the rejection reason reported to the caller.
const ReasonUnknownFlag = "unknown_flag"

// SubmissionOutcome is the terminal result of Submit. PointsAwarded is only
// set for accepted submissions; TotalPoints accompanies accepted and
// duplicate outcomes.
type SubmissionOutcome struct {
	Status        OutcomeStatus `json:"status"`
	Reason        string        `json:"reason,omitempty"`
	ChallengeName string        `json:"challenge_name,omitempty"`
	PointsAwarded int           `json:"points_awarded"`
	TotalPoints   int           `json:"total_points"`
}

// FlagStore is the read side of the flag registry.
type FlagStore interface {
	Lookup(ctx context.Context, code string) (*models.Flag, error)
	ListAll(ctx context.Context) ([]models.Flag, error)
}

// LedgerStore is the durable submission record. Credit must apply the ledger
// insert and the score increment atomically and return
// repository.ErrAlreadyCredited when the composite key already exists.
type LedgerStore interface {
	HasCorrect(ctx context.Context, userID int64, flagCode string) (bool, error)
	Credit(ctx context.Context, userID int64, flagCode string, points int, timestamp string) error
	RecordIncorrect(ctx context.Context, userID int64, flagCode, reason, timestamp string) error
	SolvedFlags(ctx context.Context, userID int64) ([]string, error)
}

// ScoreStore is the read side of the point totals.
type ScoreStore interface {
	GetPoints(ctx context.Context, userID int64) (int, error)
	TopN(ctx context.Context, n int) ([]models.UserPoints, error)
}

// SubmissionService orchestrates registry, ledger and score store into one
// terminal decision per submitted flag text.
type SubmissionService struct {
	flags  FlagStore
	ledger LedgerStore
	scores ScoreStore
}

func NewSubmissionService(flags FlagStore, ledger LedgerStore, scores ScoreStore) *SubmissionService {
	return &SubmissionService{flags: flags, ledger: ledger, scores: scores}
}

// Submit validates the submitted text and credits the participant at most
// once per flag, ever. Evaluation order, each step terminal:
//  1. trim surrounding whitespace
//  2. unknown code: rejected, first-occurrence audit entry
//  3. already credited: duplicate with the unchanged total
//  4. otherwise ledger insert + score increment as one transaction; losing
//     the unique-insert race degrades the call to duplicate, never a double
//     credit
//
// A returned error means storage failed for this call only; the service
// stays usable.
func (s *SubmissionService) Submit(ctx context.Context, userID int64, rawText string) (SubmissionOutcome, error) {
	code := strings.TrimSpace(rawText)
	now := utils.NowEventTimestamp()

	flag, err := s.flags.Lookup(ctx, code)
	if err != nil {
		metrics.SubmissionCounter.WithLabelValues("error").Inc()
		return SubmissionOutcome{}, fmt.Errorf("flag lookup failed: %w", err)
	}

	if flag == nil {
		if err := s.ledger.RecordIncorrect(ctx, userID, code, ReasonWrong, now); err != nil {
			metrics.SubmissionCounter.WithLabelValues("error").Inc()
			return SubmissionOutcome{}, err
		}
		metrics.SubmissionCounter.WithLabelValues(string(OutcomeRejected)).Inc()
		return SubmissionOutcome{Status: OutcomeRejected, Reason: ReasonUnknownFlag}, nil
	}

	solved, err := s.ledger.HasCorrect(ctx, userID, flag.Code)
	if err != nil {
		metrics.SubmissionCounter.WithLabelValues("error").Inc()
		return SubmissionOutcome{}, err
	}
	if solved {
		return s.duplicateOutcome(ctx, userID, flag, now)
	}

	err = s.ledger.Credit(ctx, userID, flag.Code, flag.Points, now)
	if errors.Is(err, repository.ErrAlreadyCredited) {
		// A concurrent duplicate won the insert race; the transaction rolled
		// back and no points were added.
		return s.duplicateOutcome(ctx, userID, flag, now)
	}
	if err != nil {
		metrics.SubmissionCounter.WithLabelValues("error").Inc()
		return SubmissionOutcome{}, err
	}

	total, err := s.scores.GetPoints(ctx, userID)
	if err != nil {
		metrics.SubmissionCounter.WithLabelValues("error").Inc()
		return SubmissionOutcome{}, err
	}

	metrics.SubmissionCounter.WithLabelValues(string(OutcomeAccepted)).Inc()
	metrics.PointsAwarded.Add(float64(flag.Points))
	return SubmissionOutcome{
		Status:        OutcomeAccepted,
		ChallengeName: flag.ChallengeName,
		PointsAwarded: flag.Points,
		TotalPoints:   total,
	}, nil
}

func (s *SubmissionService) duplicateOutcome(ctx context.Context, userID int64, flag *models.Flag, now string) (SubmissionOutcome, error) {
	if err := s.ledger.RecordIncorrect(ctx, userID, flag.Code, ReasonAlreadySubmitted, now); err != nil {
		metrics.SubmissionCounter.WithLabelValues("error").Inc()
		return SubmissionOutcome{}, err
	}
	total, err := s.scores.GetPoints(ctx, userID)
	if err != nil {
		metrics.SubmissionCounter.WithLabelValues("error").Inc()
		return SubmissionOutcome{}, err
	}
	metrics.SubmissionCounter.WithLabelValues(string(OutcomeDuplicate)).Inc()
	return SubmissionOutcome{
		Status:        OutcomeDuplicate,
		ChallengeName: flag.ChallengeName,
		TotalPoints:   total,
	}, nil
}
