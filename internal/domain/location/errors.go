package location

import "errors"

var (
	// ErrNotFound indicates the location was not found
	ErrNotFound = errors.New("location not found")

	// ErrDuplicateName indicates a location with the same name already exists
	ErrDuplicateName = errors.New("location already exists")

	// ErrInvalidSubRegionCount indicates a sub-region count below one
	ErrInvalidSubRegionCount = errors.New("sub-region count must be at least 1")

	// ErrNameRequired indicates a blank location name
	ErrNameRequired = errors.New("location name is required")

	// ErrSubRegionOutOfRange indicates a sub-region outside the location's bounds
	ErrSubRegionOutOfRange = errors.New("sub-region is out of range")

	// ErrUnknownLocation indicates a name missing from the catalog
	ErrUnknownLocation = errors.New("unknown location")
)
