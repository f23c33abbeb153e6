package routes

import (
	"github.com/gin-gonic/gin"

	adminHandlers "demandsurvey/internal/interfaces/http/handlers/admin"
	locationHandlers "demandsurvey/internal/interfaces/http/handlers/location"
	"demandsurvey/internal/interfaces/http/middleware"
	"demandsurvey/internal/shared/constants"
)

// AdminRouteConfig holds dependencies for admin routes.
type AdminRouteConfig struct {
	LocationHandler      *locationHandlers.Handler
	ResponseHandler      *adminHandlers.ResponseHandler
	ReportHandler        *adminHandlers.ReportHandler
	AuthMiddleware       *middleware.AuthMiddleware
	CapabilityMiddleware *middleware.CapabilityMiddleware
}

// SetupAdminRoutes configures admin routes. Every route requires a valid
// token; the capability for the resource is resolved per request and the
// use case decides whether it is sufficient.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth())

	capability := cfg.CapabilityMiddleware

	locations := admin.Group("/locations")
	{
		write := capability.Resolve(constants.ResourceLocation, constants.ActionWrite)
		locations.POST("", write, cfg.LocationHandler.Create)
		locations.PUT("/:id", write, cfg.LocationHandler.Update)
		locations.DELETE("/:id", write, cfg.LocationHandler.Delete)
	}

	responses := admin.Group("/responses")
	{
		read := capability.Resolve(constants.ResourceResponse, constants.ActionRead)
		write := capability.Resolve(constants.ResourceResponse, constants.ActionWrite)
		responses.GET("", read, cfg.ResponseHandler.List)
		responses.PUT("/:id", write, cfg.ResponseHandler.Update)
		responses.DELETE("/:id", write, cfg.ResponseHandler.Delete)
	}

	reports := admin.Group("/reports")
	{
		reports.GET("/demand", capability.Resolve(constants.ResourceReport, constants.ActionRead), cfg.ReportHandler.Demand)
	}
}
