package submissions

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to flag submissions
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/submissions", h.SubmitFlag)
}
