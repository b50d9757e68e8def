package repository

import (
	"context"
	"errors"
	"fmt"

	"conspiracy/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FlagRepository is the static flag registry backed by the flags table.
type FlagRepository struct {
	db *gorm.DB
}

func NewFlagRepository(db *gorm.DB) *FlagRepository {
	return &FlagRepository{db: db}
}

// Register inserts the flag if its code is absent. Re-registering an
// existing code is a no-op, never an update.
func (r *FlagRepository) Register(ctx context.Context, code string, points int, challengeName string) error {
	flag := models.Flag{Code: code, Points: points, ChallengeName: challengeName}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "code"}}, DoNothing: true}).
		Create(&flag).Error
	if err != nil {
		return fmt.Errorf("failed to register flag: %w", err)
	}
	return nil
}

// Lookup fetches the flag with an exact, case-sensitive code match. Returns
// (nil, nil) when no flag matches.
func (r *FlagRepository) Lookup(ctx context.Context, code string) (*models.Flag, error) {
	var flag models.Flag
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&flag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up flag: %w", err)
	}
	return &flag, nil
}

// ListAll returns every registered flag in registration order.
func (r *FlagRepository) ListAll(ctx context.Context) ([]models.Flag, error) {
	var flags []models.Flag
	err := r.db.WithContext(ctx).Order("id ASC").Find(&flags).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list flags: %w", err)
	}
	return flags, nil
}
