package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"demandsurvey/internal/infrastructure/config"
	"demandsurvey/internal/interfaces/http/middleware"
	"demandsurvey/internal/interfaces/http/routes"
	"demandsurvey/internal/shared/logger"
	"demandsurvey/internal/shared/utils"

	_ "demandsurvey/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	container *Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	utils.RegisterBindingTagNames()

	container, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{container: container}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	c := r.container
	engine := c.engine

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(c.log))
	engine.Use(middleware.Recovery(c.log))
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	engine.GET("/health", c.healthHandler.HealthCheck)
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupLocationRoutes(engine, &routes.LocationRouteConfig{
		LocationHandler: c.locationHandler,
	})

	routes.SetupSurveyRoutes(engine, &routes.SurveyRouteConfig{
		SurveyHandler: c.surveyHandler,
		SubmitLimiter: c.submitLimiter,
	})

	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		LocationHandler:      c.locationHandler,
		ResponseHandler:      c.responseHandler,
		ReportHandler:        c.reportHandler,
		AuthMiddleware:       c.authMiddleware,
		CapabilityMiddleware: c.capabilityMiddleware,
	})
}

// GetEngine returns the gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.container.engine
}

// Shutdown releases router resources
func (r *Router) Shutdown() {
	r.container.Shutdown()
}
