package leaderboard

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to the ranking
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	lb := r.Group("/leaderboard")
	{
		lb.GET("", h.GetLeaderboard)
		lb.GET("/export", h.ExportLeaderboard)
		lb.GET("/live", h.LiveFeed)
	}
}

// RegisterPageRoutes serves the public HTML ranking page at the site root.
func RegisterPageRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", h.Page)
}
