package http

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	locationUsecases "demandsurvey/internal/application/location/usecases"
	surveyUsecases "demandsurvey/internal/application/survey/usecases"
	"demandsurvey/internal/domain/location"
	"demandsurvey/internal/domain/survey"
	"demandsurvey/internal/infrastructure/auth"
	"demandsurvey/internal/infrastructure/cache"
	"demandsurvey/internal/infrastructure/config"
	"demandsurvey/internal/infrastructure/permission"
	"demandsurvey/internal/infrastructure/ratelimit"
	"demandsurvey/internal/infrastructure/repository"
	"demandsurvey/internal/interfaces/http/handlers"
	adminHandlers "demandsurvey/internal/interfaces/http/handlers/admin"
	locationHandlers "demandsurvey/internal/interfaces/http/handlers/location"
	surveyHandlers "demandsurvey/internal/interfaces/http/handlers/survey"
	"demandsurvey/internal/interfaces/http/middleware"
	"demandsurvey/internal/shared/db"
	"demandsurvey/internal/shared/logger"
	"demandsurvey/internal/shared/services/sanitize"
)

// Container holds the infrastructure components, repositories, use cases,
// handlers and middlewares, and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	sqlDB  *sql.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	locationRepo location.Repository
	responseRepo survey.ResponseRepository
	itemRepo     survey.ItemRepository
	txMgr        *db.TransactionManager

	// Infrastructure services
	enforcer    *permission.Enforcer
	jwtSvc      *auth.JWTService
	draftStore  *cache.RedisDraftStore
	rateLimiter *ratelimit.RedisRateLimiter

	// Handlers
	healthHandler   *handlers.HealthHandler
	surveyHandler   *surveyHandlers.Handler
	locationHandler *locationHandlers.Handler
	responseHandler *adminHandlers.ResponseHandler
	reportHandler   *adminHandlers.ReportHandler

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	capabilityMiddleware *middleware.CapabilityMiddleware
	submitLimiter        *middleware.RateLimiter
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(gdb *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gdb,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initHandlers()
	c.initMiddlewares()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	c.redis = redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})
	if err := c.redis.Ping(context.Background()).Err(); err != nil {
		c.log.Warnw("redis is not reachable, drafts and rate limiting will fail until it is",
			"addr", c.cfg.Redis.GetAddr(),
			"error", err,
		)
	}

	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	c.sqlDB = sqlDB

	c.locationRepo = repository.NewLocationRepository(c.db, c.log)
	c.responseRepo = repository.NewSurveyResponseRepository(c.db, c.log)
	c.itemRepo = repository.NewSurveyItemRepository(c.db, c.log)
	c.txMgr = db.NewTransactionManager(c.db)

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.EnsureAdminPolicies(c.cfg.Permission.AdminRoles); err != nil {
		return fmt.Errorf("failed to seed admin policies: %w", err)
	}
	c.enforcer = enforcer

	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.Issuer)
	c.draftStore = cache.NewRedisDraftStore(c.redis, c.cfg.Survey.DraftTTL)
	c.rateLimiter = ratelimit.NewRedisRateLimiter(c.redis)

	return nil
}

func (c *Container) initHandlers() {
	sanitizer := sanitize.NewTextService()
	validator := survey.NewValidator()

	submitUC := surveyUsecases.NewSubmitSurveyUseCase(c.responseRepo, c.itemRepo, c.locationRepo, validator, sanitizer, c.log)
	submitDraftUC := surveyUsecases.NewSubmitDraftUseCase(c.responseRepo, c.itemRepo, c.locationRepo, validator, sanitizer, c.draftStore, c.log)
	manageDraftUC := surveyUsecases.NewManageDraftUseCase(c.draftStore, c.locationRepo, c.log)
	listResponsesUC := surveyUsecases.NewListResponsesUseCase(c.responseRepo, c.log)
	updateResponseUC := surveyUsecases.NewUpdateResponseUseCase(c.responseRepo, c.locationRepo, validator, sanitizer, c.log)
	deleteResponseUC := surveyUsecases.NewDeleteResponseUseCase(c.responseRepo, c.txMgr, c.log)
	reportUC := surveyUsecases.NewGetDemandReportUseCase(c.responseRepo, c.itemRepo, c.log)

	listLocationsUC := locationUsecases.NewListLocationsUseCase(c.locationRepo, c.log)
	createLocationUC := locationUsecases.NewCreateLocationUseCase(c.locationRepo, c.log)
	updateLocationUC := locationUsecases.NewUpdateLocationUseCase(c.locationRepo, c.log)
	deleteLocationUC := locationUsecases.NewDeleteLocationUseCase(c.locationRepo, c.log)

	c.healthHandler = handlers.NewHealthHandler(c.sqlDB, c.log)

	c.surveyHandler = surveyHandlers.NewHandler(submitUC, submitDraftUC, manageDraftUC, c.log)
	c.locationHandler = locationHandlers.NewHandler(listLocationsUC, createLocationUC, updateLocationUC, deleteLocationUC, c.log)
	c.responseHandler = adminHandlers.NewResponseHandler(listResponsesUC, updateResponseUC, deleteResponseUC, c.log)
	c.reportHandler = adminHandlers.NewReportHandler(reportUC, c.log)
}

func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.capabilityMiddleware = middleware.NewCapabilityMiddleware(c.enforcer, c.log)
	c.submitLimiter = middleware.NewRateLimiter(c.rateLimiter, "submit", ratelimit.Policy{
		Limit:  c.cfg.Survey.SubmitRateLimit,
		Window: c.cfg.Survey.SubmitRateWindow,
	}, c.log)
}

// Shutdown releases resources held by the container.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
