package routes

import (
	"github.com/gin-gonic/gin"

	locationHandlers "demandsurvey/internal/interfaces/http/handlers/location"
)

// LocationRouteConfig holds dependencies for the public catalog routes.
type LocationRouteConfig struct {
	LocationHandler *locationHandlers.Handler
}

// SetupLocationRoutes configures the public location catalog.
func SetupLocationRoutes(engine *gin.Engine, cfg *LocationRouteConfig) {
	engine.GET("/locations", cfg.LocationHandler.List)
}
