package location

import "context"

// Repository defines the interface for location persistence operations
type Repository interface {
	// Create creates a new location; a duplicate name returns ErrDuplicateName
	Create(ctx context.Context, loc *Location) error

	// Update updates an existing location
	Update(ctx context.Context, loc *Location) error

	// Delete deletes a location by ID
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a location by ID
	GetByID(ctx context.Context, id uint) (*Location, error)

	// ExistsByName checks if a location with the exact name exists
	ExistsByName(ctx context.Context, name string) (bool, error)

	// List retrieves all locations ordered by name
	List(ctx context.Context) ([]*Location, error)
}
