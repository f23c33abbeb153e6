package routes

import (
	"github.com/gin-gonic/gin"

	surveyHandlers "demandsurvey/internal/interfaces/http/handlers/survey"
	"demandsurvey/internal/interfaces/http/middleware"
)

// SurveyRouteConfig holds dependencies for the public survey routes.
type SurveyRouteConfig struct {
	SurveyHandler *surveyHandlers.Handler
	SubmitLimiter *middleware.RateLimiter
}

// SetupSurveyRoutes configures survey submission and draft routes.
// Both submission endpoints share one rate limit scope.
func SetupSurveyRoutes(engine *gin.Engine, cfg *SurveyRouteConfig) {
	surveys := engine.Group("/surveys")
	{
		surveys.POST("", cfg.SubmitLimiter.Limit(), cfg.SurveyHandler.Submit)

		drafts := surveys.Group("/drafts")
		{
			drafts.POST("", cfg.SurveyHandler.CreateDraft)
			drafts.GET("/:id", cfg.SurveyHandler.GetDraft)
			drafts.PATCH("/:id", cfg.SurveyHandler.UpdateDraft)
			drafts.PUT("/:id/location", cfg.SurveyHandler.SelectLocation)
			drafts.PUT("/:id/sub-region", cfg.SurveyHandler.SelectSubRegion)
			drafts.POST("/:id/items", cfg.SurveyHandler.AppendItem)
			drafts.PUT("/:id/items/:index", cfg.SurveyHandler.UpdateItem)
			drafts.DELETE("/:id/items/:index", cfg.SurveyHandler.RemoveItem)
			drafts.POST("/:id/submit", cfg.SubmitLimiter.Limit(), cfg.SurveyHandler.SubmitDraft)
		}
	}
}
