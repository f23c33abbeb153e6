package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"demandsurvey/internal/shared/errors"
)

// ParseUintParam parses a positive numeric ID from a URL path parameter.
// entityName is used in error messages (e.g., "location", "response").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(id), nil
}

// ParseIndexParam parses a zero-based slot index from a URL path parameter.
func ParseIndexParam(c *gin.Context, paramName string) (int, error) {
	index, err := strconv.Atoi(c.Param(paramName))
	if err != nil || index < 0 {
		return 0, errors.NewValidationError("invalid " + paramName)
	}
	return index, nil
}
