package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"conspiracy/metrics"
	"conspiracy/models"

	"gorm.io/gorm"
)

// ErrAlreadyCredited reports that the (participant, flag) pair already has a
// correct submission on record. It is a defined outcome, not a storage
// failure: callers translate it into the duplicate response.
var ErrAlreadyCredited = errors.New("flag already credited to this participant")

// LedgerRepository is the durable record of every correct submission and of
// the first incorrect attempt per (participant, flag) pair.
type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// HasCorrect reports whether the participant has already been credited for
// the flag.
func (r *LedgerRepository) HasCorrect(ctx context.Context, userID int64, flagCode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CorrectSubmission{}).
		Where("user_id = ? AND flag_code = ?", userID, flagCode).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check correct submissions: %w", err)
	}
	return count > 0, nil
}

// Credit records the correct submission and applies the score increment as
// one transaction. The composite primary key on correct_submissions is the
// authoritative race-breaker: when a concurrent duplicate wins the insert
// race the transaction rolls back, no points are added, and ErrAlreadyCredited
// is returned.
func (r *LedgerRepository) Credit(ctx context.Context, userID int64, flagCode string, points int, timestamp string) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub := models.CorrectSubmission{UserID: userID, FlagCode: flagCode, Timestamp: timestamp}
		if err := tx.Create(&sub).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyCredited
			}
			return fmt.Errorf("failed to record correct submission: %w", err)
		}

		return addPoints(tx, userID, points)
	})
	metrics.RecordDBOperation("credit", "correct_submissions", start)
	return err
}

// RecordIncorrect stores the attempt unless the (participant, flag) pair was
// already seen. First write wins regardless of reason; later attempts are
// silently dropped.
func (r *LedgerRepository) RecordIncorrect(ctx context.Context, userID int64, flagCode, reason, timestamp string) error {
	sub := models.IncorrectSubmission{UserID: userID, FlagCode: flagCode, Timestamp: timestamp, Reason: reason}
	err := r.db.WithContext(ctx).Create(&sub).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to record incorrect submission: %w", err)
	}
	return nil
}

// SolvedFlags returns the flag codes the participant has been credited for.
func (r *LedgerRepository) SolvedFlags(ctx context.Context, userID int64) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).Model(&models.CorrectSubmission{}).
		Where("user_id = ?", userID).
		Pluck("flag_code", &codes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch solved flags: %w", err)
	}
	return codes, nil
}
