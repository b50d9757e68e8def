package players

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to participant queries
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.GET("/menu", h.GetMenu)

	p := r.Group("/players")
	{
		p.GET("/:id/points", h.GetPoints)
		p.GET("/:id/status", h.GetStatus)
	}
}
