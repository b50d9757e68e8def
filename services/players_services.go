package services

import (
	"context"
	"fmt"
)

// ChallengeStatus is one row of a participant's per-challenge progress.
type ChallengeStatus struct {
	ChallengeName string `json:"challenge_name"`
	Solved        bool   `json:"solved"`
	Points        int    `json:"points"`
}

// PlayerService answers the per-participant queries behind the chat menu.
type PlayerService struct {
	flags  FlagStore
	ledger LedgerStore
	scores ScoreStore
}

func NewPlayerService(flags FlagStore, ledger LedgerStore, scores ScoreStore) *PlayerService {
	return &PlayerService{flags: flags, ledger: ledger, scores: scores}
}

// GetPoints returns the participant's accumulated total, 0 for unknown ids.
func (s *PlayerService) GetPoints(ctx context.Context, userID int64) (int, error) {
	return s.scores.GetPoints(ctx, userID)
}

// Status joins the registered challenges against the participant's solved
// flags, in registration order.
func (s *PlayerService) Status(ctx context.Context, userID int64) ([]ChallengeStatus, error) {
	flags, err := s.flags.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch challenges: %w", err)
	}

	solvedCodes, err := s.ledger.SolvedFlags(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch solved flags: %w", err)
	}
	solved := make(map[string]bool, len(solvedCodes))
	for _, code := range solvedCodes {
		solved[code] = true
	}

	statuses := make([]ChallengeStatus, 0, len(flags))
	for _, f := range flags {
		statuses = append(statuses, ChallengeStatus{
			ChallengeName: f.ChallengeName,
			Solved:        solved[f.Code],
			Points:        f.Points,
		})
	}
	return statuses, nil
}
