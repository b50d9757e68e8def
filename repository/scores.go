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

// ScoreRepository is the per-participant point total store.
type ScoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// GetPoints returns the participant's total, 0 when no row exists.
func (r *ScoreRepository) GetPoints(ctx context.Context, userID int64) (int, error) {
	var entry models.UserPoints
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to fetch points: %w", err)
	}
	return entry.Points, nil
}

// AddPoints atomically upserts the participant's total. The increment runs
// inside the database so concurrent credits for the same participant never
// lose an update.
func (r *ScoreRepository) AddPoints(ctx context.Context, userID int64, delta int) error {
	return addPoints(r.db.WithContext(ctx), userID, delta)
}

// addPoints is shared with the ledger's credit transaction, which passes its
// transaction handle so the increment commits or rolls back with the ledger
// insert.
func addPoints(db *gorm.DB, userID int64, delta int) error {
	err := db.Exec(`
		INSERT INTO user_points (user_id, points)
		VALUES (?, ?)
		ON CONFLICT (user_id) DO UPDATE
		SET points = user_points.points + excluded.points
	`, userID, delta).Error
	if err != nil {
		return fmt.Errorf("failed to add points: %w", err)
	}
	return nil
}

// TopN returns the ranking, points descending with ties broken by ascending
// participant id for deterministic reads. A single SELECT, so a concurrent
// in-progress credit is either fully visible or not at all.
func (r *ScoreRepository) TopN(ctx context.Context, n int) ([]models.UserPoints, error) {
	start := time.Now()
	var entries []models.UserPoints
	err := r.db.WithContext(ctx).
		Order("points DESC, user_id ASC").
		Limit(n).
		Find(&entries).Error
	metrics.RecordDBOperation("top_n", "user_points", start)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
	}
	return entries, nil
}
