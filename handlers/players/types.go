package players

import (
	"github.com/gin-gonic/gin"
)

// Error messages
const (
	ErrInvalidUserID     = "Invalid participant id"
	ErrFailedFetchPoints = "Failed to fetch points"
	ErrFailedFetchStatus = "Failed to fetch challenge status"
)

// PointsResponse model for a participant's total
type PointsResponse struct {
	UserID int64 `json:"user_id"`
	Points int   `json:"points"`
}

// MenuResponse is the fixed menu offered to any direct message to the bot
type MenuResponse struct {
	Message        string   `json:"message"`
	Actions        []string `json:"actions"`
	LeaderboardURL string   `json:"leaderboard_url"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
