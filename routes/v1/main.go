package v1

import (
	"conspiracy/handlers/leaderboard"
	"conspiracy/handlers/players"
	"conspiracy/handlers/submissions"
	"conspiracy/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the wired handler set for route registration.
type Handlers struct {
	Submissions *submissions.Handler
	Players     *players.Handler
	Leaderboard *leaderboard.Handler
}

// Register the endpoints for the v1 API
func Register(r *gin.Engine, h Handlers) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	submissions.RegisterRoutes(v1, h.Submissions)
	players.RegisterRoutes(v1, h.Players)
	leaderboard.RegisterRoutes(v1, h.Leaderboard)

	// Public ranking page outside the API group
	leaderboard.RegisterPageRoutes(r, h.Leaderboard)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}
