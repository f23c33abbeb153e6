package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demandsurvey/internal/infrastructure/auth"
	"demandsurvey/internal/infrastructure/ratelimit"
	"demandsurvey/internal/interfaces/http/handlers/testutil"
	"demandsurvey/internal/shared/authorization"
	"demandsurvey/internal/shared/constants"
	"demandsurvey/internal/shared/logger"
	"demandsurvey/internal/shared/utils"
)

type fakeVerifier struct {
	claims *auth.Claims
	err    error
	got    string
}

func (f *fakeVerifier) Verify(token string) (*auth.Claims, error) {
	f.got = token
	return f.claims, f.err
}

type fakeEnforcer struct {
	allowed map[string]bool
	err     error
}

func (f *fakeEnforcer) Enforce(subject, resource, action string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.allowed[subject+":"+resource+":"+action], nil
}

type fakeLimiter struct {
	calls int
	limit int
	err   error
	keys  []string
}

func (f *fakeLimiter) Allow(_ context.Context, key string, _ ratelimit.Policy) (bool, error) {
	f.calls++
	f.keys = append(f.keys, key)
	if f.err != nil {
		return false, f.err
	}
	return f.calls <= f.limit, nil
}

func (f *fakeLimiter) Reset(context.Context, string) error { return nil }

func serve(handlers ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	engine.GET("/x", handlers...)
	return engine
}

func do(engine *gin.Engine, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if header != "" {
		req.Header.Set(constants.HeaderAuthorization, header)
	}
	req.RemoteAddr = "10.0.0.1:1234"
	engine.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	claims := &auth.Claims{Role: authorization.RoleAdmin, TokenType: auth.TokenTypeAccess}
	claims.Subject = "ops-1"

	t.Run("missing header", func(t *testing.T) {
		m := NewAuthMiddleware(&fakeVerifier{claims: claims}, logger.Nop())
		engine := serve(m.RequireAuth())
		assert.Equal(t, http.StatusUnauthorized, do(engine, "").Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		m := NewAuthMiddleware(&fakeVerifier{claims: claims}, logger.Nop())
		engine := serve(m.RequireAuth())
		assert.Equal(t, http.StatusUnauthorized, do(engine, "Token abc").Code)
		assert.Equal(t, http.StatusUnauthorized, do(engine, "Bearer ").Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		m := NewAuthMiddleware(&fakeVerifier{err: jwt.ErrTokenExpired}, logger.Nop())
		engine := serve(m.RequireAuth())
		w := do(engine, "Bearer abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.False(t, resp.Success)
	})

	t.Run("valid token sets identity", func(t *testing.T) {
		verifier := &fakeVerifier{claims: claims}
		m := NewAuthMiddleware(verifier, logger.Nop())

		var userID, role string
		engine := gin.New()
		engine.GET("/x", m.RequireAuth(), func(c *gin.Context) {
			userID = c.GetString(constants.ContextKeyUserID)
			role = c.GetString(constants.ContextKeyUserRole)
			c.Status(http.StatusOK)
		})

		assert.Equal(t, http.StatusOK, do(engine, "Bearer good").Code)
		assert.Equal(t, "good", verifier.got)
		assert.Equal(t, "ops-1", userID)
		assert.Equal(t, "admin", role)
	})
}

func TestCapabilityMiddleware_Resolve(t *testing.T) {
	enforcer := &fakeEnforcer{allowed: map[string]bool{"admin:location:write": true}}
	m := NewCapabilityMiddleware(enforcer, logger.Nop())

	resolve := func(role authorization.UserRole, resource string) (authorization.Capability, int) {
		var capability authorization.Capability
		engine := gin.New()
		engine.GET("/x", func(c *gin.Context) {
			c.Set(constants.ContextKeyUserID, "ops-1")
			c.Set(constants.ContextKeyUserRole, string(role))
			c.Next()
		}, m.Resolve(resource, constants.ActionWrite), func(c *gin.Context) {
			capability = utils.CapabilityFromContext(c)
			c.Status(http.StatusOK)
		})
		w := do(engine, "")
		return capability, w.Code
	}

	capability, code := resolve(authorization.RoleAdmin, constants.ResourceLocation)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, capability.IsAdmin())
	assert.Equal(t, "ops-1", capability.Subject())

	capability, code = resolve(authorization.RoleViewer, constants.ResourceLocation)
	assert.Equal(t, http.StatusOK, code, "denial is decided by the use case")
	assert.False(t, capability.IsAdmin())

	capability, _ = resolve(authorization.RoleAdmin, constants.ResourceReport)
	assert.False(t, capability.IsAdmin())

	t.Run("enforcer error aborts", func(t *testing.T) {
		m := NewCapabilityMiddleware(&fakeEnforcer{err: errors.New("db down")}, logger.Nop())
		engine := serve(m.Resolve(constants.ResourceLocation, constants.ActionWrite))
		assert.Equal(t, http.StatusInternalServerError, do(engine, "").Code)
	})
}

func TestCapabilityFromContext_DefaultsToDenied(t *testing.T) {
	c, _ := testutil.NewTestContext(http.MethodGet, "/x", nil)
	assert.False(t, utils.CapabilityFromContext(c).IsAdmin())
}

func TestRateLimiter_Limit(t *testing.T) {
	policy := ratelimit.Policy{Limit: 2, Window: time.Minute}

	t.Run("blocks after the limit", func(t *testing.T) {
		limiter := &fakeLimiter{limit: 2}
		rl := NewRateLimiter(limiter, "submit", policy, logger.Nop())
		engine := serve(rl.Limit())

		assert.Equal(t, http.StatusOK, do(engine, "").Code)
		assert.Equal(t, http.StatusOK, do(engine, "").Code)
		assert.Equal(t, http.StatusTooManyRequests, do(engine, "").Code)
		assert.Equal(t, "submit:10.0.0.1", limiter.keys[0])
	})

	t.Run("fails open when the store errors", func(t *testing.T) {
		limiter := &fakeLimiter{err: errors.New("redis down")}
		rl := NewRateLimiter(limiter, "submit", policy, logger.Nop())
		engine := serve(rl.Limit())

		assert.Equal(t, http.StatusOK, do(engine, "").Code)
	})
}

func TestCORS(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS([]string{"https://survey.example.org"}))
	engine.GET("/locations", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.OPTIONS("/locations", func(c *gin.Context) { c.Status(http.StatusOK) })

	request := func(method, origin string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, "/locations", nil)
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		engine.ServeHTTP(w, req)
		return w
	}

	w := request(http.MethodGet, "https://survey.example.org")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://survey.example.org", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))

	w = request(http.MethodGet, "https://evil.example.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = request(http.MethodOptions, "https://survey.example.org")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCORS_Wildcard(t *testing.T) {
	assert.Equal(t, "https://a.example", matchOrigin("https://a.example", []string{"*"}))
	assert.Empty(t, matchOrigin("", []string{"*"}))
}

func TestSecurityHeaders_SkipsCSPForSwagger(t *testing.T) {
	engine := gin.New()
	engine.Use(SecurityHeaders())
	engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/swagger/*any", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Empty(t, w.Header().Get("Content-Security-Policy"))
}

func TestRequestID(t *testing.T) {
	var seen string
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/x", func(c *gin.Context) {
		seen = c.GetString(constants.ContextKeyRequestID)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(constants.HeaderXRequestID, "req-42")
	engine.ServeHTTP(w, req)
	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", w.Header().Get(constants.HeaderXRequestID))

	w = do(engine, "")
	assert.Len(t, w.Header().Get(constants.HeaderXRequestID), 36)
	assert.Equal(t, seen, w.Header().Get(constants.HeaderXRequestID))
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery(logger.Nop()))
	engine.GET("/x", func(c *gin.Context) { panic("boom") })

	w := do(engine, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, constants.ErrMsgInternalServerError, resp.Error.Message)
}
