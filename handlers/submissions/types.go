package submissions

import (
	"github.com/gin-gonic/gin"
)

// Error messages
const (
	ErrInvalidRequest   = "Invalid request data"
	ErrSubmissionFailed = "Failed to process submission"
)

// SubmitFlagRequest model for submitting a flag
type SubmitFlagRequest struct {
	UserID int64  `json:"user_id" binding:"required"`
	Flag   string `json:"flag" binding:"required"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
