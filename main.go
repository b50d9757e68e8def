package main

import (
	"context"

	"conspiracy/config"
	"conspiracy/database"
	"conspiracy/handlers/leaderboard"
	"conspiracy/handlers/players"
	"conspiracy/handlers/submissions"
	"conspiracy/middleware"
	"conspiracy/repository"
	v1 "conspiracy/routes/v1"
	"conspiracy/services"
	"conspiracy/utils/logger"

	_ "conspiracy/docs"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title           Conspiracy Scoring API
// @version         1.0
// @description     Flag submission, scoring and ranking service for THE CONSPIRACY CTF
// @BasePath        /api/v1

func main() {
	config.Load()
	logger.Init(config.LogLevel, config.LogFormat)

	db, err := database.InitDB()
	if err != nil {
		logger.Fatal("Failed to initialize database: ", err)
	}

	flagRepo := repository.NewFlagRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	scoreRepo := repository.NewScoreRepository(db)

	seedFlags, err := config.LoadSeedFlags()
	if err != nil {
		logger.Fatal("Failed to load flag seed list: ", err)
	}
	if err := database.SeedFlags(context.Background(), flagRepo, seedFlags); err != nil {
		logger.Fatal("Failed to seed flags: ", err)
	}

	var cache *redis.Client
	if config.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
		})
		logger.Infof("Leaderboard cache enabled at %s", config.RedisAddr)
	}

	submissionService := services.NewSubmissionService(flagRepo, ledgerRepo, scoreRepo)
	playerService := services.NewPlayerService(flagRepo, ledgerRepo, scoreRepo)
	leaderboardService := services.NewLeaderboardService(scoreRepo, cache)

	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")

	v1.Register(r, v1.Handlers{
		Submissions: submissions.NewHandler(submissionService, leaderboardService),
		Players:     players.NewHandler(playerService),
		Leaderboard: leaderboard.NewHandler(leaderboardService),
	})

	middleware.UpdateSystemMetrics()

	logger.Infof("Scoring service listening on :%s", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		logger.Fatal("Server stopped: ", err)
	}
}
