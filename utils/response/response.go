package response

import (
	"github.com/gin-gonic/gin"
)

// Error sends a standardized error response. Storage failures go through
// this helper with a generic message so internal detail never reaches the
// submitter.
func Error(c *gin.Context, status int, message string) {
    c.JSON(status, gin.H{"error": message})
}

// Success sends a standardized success response
func Success(c *gin.Context, status int, data interface{}) {
    c.JSON(status, gin.H{"data": data})
}
