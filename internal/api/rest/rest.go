package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/hoopsledger/pickboard/internal/api/middleware"
)

// SetupRoutes configures all REST API routes.
// Every route is read-only; authentication applies only when credentials are configured.
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	if authCfg.Enabled() {
		v1.Use(middleware.Auth(authCfg))
	}
	{
		// Whichever view the selection names, with the overlay resolved
		v1.GET("/dashboard", handler.GetDashboard)

		// Individual views
		v1.GET("/picks", handler.GetPicks)
		v1.GET("/grid", handler.GetGrid)
		v1.GET("/selections", handler.GetSelections)

		// Pick detail (asset lines, provenance, endnotes)
		v1.GET("/picks/:key", handler.GetPick)
	}
}
