package authorization

import (
	"demandsurvey/internal/shared/errors"
)

// Capability is the admin permission resolved for one request. It is passed
// into mutating use cases instead of being read from global state, and is
// never cached across requests.
type Capability struct {
	admin   bool
	subject string
}

// Admin returns a capability that allows admin-only operations.
func Admin(subject string) Capability {
	return Capability{admin: true, subject: subject}
}

// Denied returns a capability that rejects admin-only operations.
func Denied(subject string) Capability {
	return Capability{subject: subject}
}

// IsAdmin reports whether admin-only operations are allowed.
func (c Capability) IsAdmin() bool {
	return c.admin
}

// Subject identifies who the capability was resolved for, for logging.
func (c Capability) Subject() string {
	return c.subject
}

// RequireAdmin returns a forbidden error unless the capability is admin.
func (c Capability) RequireAdmin() error {
	if !c.admin {
		return errors.NewForbiddenError("admin access required")
	}
	return nil
}
