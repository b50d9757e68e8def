package database

import (
	"context"
	"fmt"

	"conspiracy/config"
	"conspiracy/models"
	"conspiracy/repository"
	"conspiracy/utils/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the database connection and migrates the models. The handle
// is returned rather than held in a package variable so every component gets
// its storage dependency injected explicitly.
func InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=America/New_York",
		config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	// TranslateError turns the Postgres unique violation into
	// gorm.ErrDuplicatedKey, which the ledger relies on as its race-breaker.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	err = db.AutoMigrate(
		&models.Flag{},
		&models.CorrectSubmission{},
		&models.IncorrectSubmission{},
		&models.UserPoints{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedFlags registers the startup flag list through the registry.
// Registration is idempotent, so re-running the service against a populated
// database is a no-op and never updates an existing flag's points or
// challenge name.
func SeedFlags(ctx context.Context, flags *repository.FlagRepository, seed []config.SeedFlag) error {
	for _, f := range seed {
		if err := flags.Register(ctx, f.Code, f.Points, f.ChallengeName); err != nil {
			return fmt.Errorf("failed to seed flag %q: %w", f.Code, err)
		}
		logger.Infof("Registered flag for challenge %q (%d points)", f.ChallengeName, f.Points)
	}
	return nil
}
