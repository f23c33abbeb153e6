package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"demandsurvey/internal/shared/errors"
)

func TestCapability_RequireAdmin(t *testing.T) {
	assert.NoError(t, Admin("u1").RequireAdmin())

	err := Denied("u2").RequireAdmin()
	assert.True(t, errors.IsForbiddenError(err))

	var zero Capability
	assert.False(t, zero.IsAdmin())
	assert.Error(t, zero.RequireAdmin())
}

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseUserRole("admin"))
	assert.Equal(t, RoleViewer, ParseUserRole("viewer"))
	assert.Equal(t, RoleViewer, ParseUserRole("root"))
}
