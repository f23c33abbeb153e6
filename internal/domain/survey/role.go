package survey

// Role is the respondent's relationship to the survey
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAgent    Role = "agent"
)

// IsValid checks if the role is one of the accepted values
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleAgent
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}
