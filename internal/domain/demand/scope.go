package demand

import "strings"

// AllLocations is the filter value meaning no location restriction
const AllLocations = "all"

// Scope restricts a report to responses stored under one location
type Scope struct {
	location string
}

// ParseScope reads a location filter. Empty and "all" mean every location;
// anything else is matched exactly against the stored location.
func ParseScope(filter string) Scope {
	if strings.TrimSpace(filter) == "" || filter == AllLocations {
		return Scope{}
	}
	return Scope{location: filter}
}

// IsAll reports whether the scope covers every location
func (s Scope) IsAll() bool {
	return s.location == ""
}

// Location returns the scoped location, or "" for all
func (s Scope) Location() string {
	return s.location
}

// String returns the filter value the scope was parsed from
func (s Scope) String() string {
	if s.IsAll() {
		return AllLocations
	}
	return s.location
}
