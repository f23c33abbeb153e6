package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"demandsurvey/internal/shared/authorization"
	"demandsurvey/internal/shared/constants"
	"demandsurvey/internal/shared/logger"
	"demandsurvey/internal/shared/utils"
)

// PolicyEnforcer answers whether a role may perform action on resource
type PolicyEnforcer interface {
	Enforce(subject, resource, action string) (bool, error)
}

// CapabilityMiddleware resolves the caller's admin capability for one
// resource and action. It does not reject the request; use cases decide.
type CapabilityMiddleware struct {
	enforcer PolicyEnforcer
	logger   logger.Interface
}

func NewCapabilityMiddleware(enforcer PolicyEnforcer, logger logger.Interface) *CapabilityMiddleware {
	return &CapabilityMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

func (m *CapabilityMiddleware) Resolve(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.GetString(constants.ContextKeyUserID)
		role := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))

		allowed, err := m.enforcer.Enforce(role.String(), resource, action)
		if err != nil {
			m.logger.Errorw("capability check failed", "error", err, "user_id", subject, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		capability := authorization.Denied(subject)
		if allowed {
			capability = authorization.Admin(subject)
		} else {
			m.logger.Warnw("admin capability denied", "user_id", subject, "role", role, "resource", resource, "action", action)
		}

		c.Set(constants.ContextKeyCapability, capability)
		c.Next()
	}
}
