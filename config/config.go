package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	ServerPort string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisAddr     string
	RedisPassword string

	// FlagsFile points at an optional JSON seed list; when empty the built-in
	// event flags are registered instead.
	FlagsFile string

	// LeaderboardURL is the public ranking page link handed out by the menu.
	LeaderboardURL string

	LogLevel  string
	LogFormat string
)

// Load reads the .env file if present and populates the package variables
// from the environment.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "conspiracy")

	RedisAddr = getEnv("REDIS_ADDR", "")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	FlagsFile = getEnv("FLAGS_FILE", "")
	LogLevel = getEnv("LOG_LEVEL", "info")
	LogFormat = getEnv("LOG_FORMAT", "text")
	LeaderboardURL = getEnv("LEADERBOARD_URL", "https://leaderboard.maguireyounes.com/")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
