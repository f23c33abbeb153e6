// Package location provides the location catalog: named locations and the
// number of sub-regions each one contains.
package location

import (
	"fmt"
	"strings"
	"time"
)

// Location is a catalog entry. Survey responses reference it by name only.
type Location struct {
	id             uint
	name           string
	subRegionCount int
	createdAt      time.Time
	updatedAt      time.Time
}

// NewLocation creates a new catalog entry
func NewLocation(name string, subRegionCount int) (*Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if subRegionCount < 1 {
		return nil, ErrInvalidSubRegionCount
	}

	now := time.Now()
	return &Location{
		name:           name,
		subRegionCount: subRegionCount,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructLocation reconstructs a location from persistence
func ReconstructLocation(id uint, name string, subRegionCount int, createdAt, updatedAt time.Time) (*Location, error) {
	if id == 0 {
		return nil, fmt.Errorf("location ID cannot be zero")
	}
	if name == "" {
		return nil, ErrNameRequired
	}

	return &Location{
		id:             id,
		name:           name,
		subRegionCount: subRegionCount,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

// ID returns the location ID
func (l *Location) ID() uint {
	return l.id
}

// Name returns the location name
func (l *Location) Name() string {
	return l.name
}

// SubRegionCount returns the number of addressable sub-regions
func (l *Location) SubRegionCount() int {
	return l.subRegionCount
}

// CreatedAt returns when the location was created
func (l *Location) CreatedAt() time.Time {
	return l.createdAt
}

// UpdatedAt returns when the location was last updated
func (l *Location) UpdatedAt() time.Time {
	return l.updatedAt
}

// SetID sets the location ID (only for persistence layer use)
func (l *Location) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("location ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("location ID cannot be zero")
	}
	l.id = id
	return nil
}

// Replace overwrites name and sub-region count. Responses already stored
// under the old name or a larger count are left untouched.
func (l *Location) Replace(name string, subRegionCount int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if subRegionCount < 1 {
		return ErrInvalidSubRegionCount
	}
	if l.name == name && l.subRegionCount == subRegionCount {
		return nil
	}
	l.name = name
	l.subRegionCount = subRegionCount
	l.updatedAt = time.Now()
	return nil
}
