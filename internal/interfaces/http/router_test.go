package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"demandsurvey/internal/infrastructure/config"
	"demandsurvey/internal/infrastructure/migration"
	sharedConfig "demandsurvey/internal/shared/config"
	"demandsurvey/internal/shared/logger"
)

func setupRouter(t *testing.T) *Router {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, migration.NewGormAutoMigrateStrategy(logger.Nop()).Migrate(gdb))

	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		Auth:   sharedConfig.AuthConfig{JWT: sharedConfig.JWTConfig{Secret: "test-secret"}},
		// nothing listens here; redis-backed features fail until it is up
		Redis:      sharedConfig.RedisConfig{Host: "127.0.0.1", Port: 1},
		Survey:     sharedConfig.SurveyConfig{SubmitRateLimit: 5, SubmitRateWindow: time.Minute, DraftTTL: time.Hour},
		Permission: sharedConfig.PermissionConfig{AdminRoles: []string{"admin"}},
	}

	router, err := NewRouter(gdb, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(router.Shutdown)

	router.SetupRoutes()
	return router
}

func serve(router *Router, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	router.GetEngine().ServeHTTP(w, req)
	return w
}

func TestRouter_RegistersRoutes(t *testing.T) {
	router := setupRouter(t)

	registered := map[string]bool{}
	for _, r := range router.GetEngine().Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"GET /health",
		"GET /locations",
		"POST /surveys",
		"POST /surveys/drafts",
		"GET /surveys/drafts/:id",
		"PATCH /surveys/drafts/:id",
		"PUT /surveys/drafts/:id/location",
		"PUT /surveys/drafts/:id/sub-region",
		"POST /surveys/drafts/:id/items",
		"PUT /surveys/drafts/:id/items/:index",
		"DELETE /surveys/drafts/:id/items/:index",
		"POST /surveys/drafts/:id/submit",
		"POST /admin/locations",
		"PUT /admin/locations/:id",
		"DELETE /admin/locations/:id",
		"GET /admin/responses",
		"PUT /admin/responses/:id",
		"DELETE /admin/responses/:id",
		"GET /admin/reports/demand",
		"GET /swagger/*any",
	} {
		assert.True(t, registered[route], "missing route %s", route)
	}
}

func TestRouter_PublicAndAdminAccess(t *testing.T) {
	router := setupRouter(t)

	w := serve(router, nethttp.MethodGet, "/health")
	assert.Equal(t, nethttp.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = serve(router, nethttp.MethodGet, "/locations")
	assert.Equal(t, nethttp.StatusOK, w.Code)

	w = serve(router, nethttp.MethodGet, "/admin/reports/demand")
	assert.Equal(t, nethttp.StatusUnauthorized, w.Code)

	w = serve(router, nethttp.MethodPost, "/admin/locations")
	assert.Equal(t, nethttp.StatusUnauthorized, w.Code)
}

func TestRouter_SubmitValidationWithoutRedis(t *testing.T) {
	router := setupRouter(t)

	// the limiter fails open, so an empty form reaches validation
	w := serve(router, nethttp.MethodPost, "/surveys")
	assert.Equal(t, nethttp.StatusBadRequest, w.Code)
}
