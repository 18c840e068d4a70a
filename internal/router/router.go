package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Fahad-1515/fnol-agent/internal/handler"
	"github.com/Fahad-1515/fnol-agent/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	claimH *handler.ClaimHandler,
	statsH *handler.StatsHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	claims := v1.Group("/claims")
	claims.POST("", claimH.Process)
	claims.GET("", claimH.List)
	claims.GET("/export", claimH.Export)
	claims.GET("/:id", claimH.GetByID)
	claims.DELETE("/:id", claimH.Delete)

	v1.GET("/stats", statsH.GetStats)

	return r
}
