package utils

import (
	"github.com/gin-gonic/gin"

	"demandsurvey/internal/shared/authorization"
	"demandsurvey/internal/shared/constants"
)

// CapabilityFromContext returns the capability resolved by the capability
// middleware. Requests that never passed through it get a denied capability.
func CapabilityFromContext(c *gin.Context) authorization.Capability {
	if v, ok := c.Get(constants.ContextKeyCapability); ok {
		if capability, ok := v.(authorization.Capability); ok {
			return capability
		}
	}
	return authorization.Denied(c.GetString(constants.ContextKeyUserID))
}
