package survey

import "context"

// ResponseRepository defines persistence operations for survey responses
type ResponseRepository interface {
	// Create inserts the response and assigns its ID. Items are not written.
	Create(ctx context.Context, response *Response) error

	// Update persists edited respondent fields
	Update(ctx context.Context, response *Response) error

	// Delete removes the response together with its item mentions
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a response with its items
	GetByID(ctx context.Context, id uint) (*Response, error)

	// ListWithItems returns responses with items, newest first
	ListWithItems(ctx context.Context, filter ListFilter) ([]*Response, error)

	// ListLocations returns the distinct location values present in stored responses
	ListLocations(ctx context.Context) ([]string, error)
}

// ItemRepository defines persistence operations for item mentions
type ItemRepository interface {
	// CreateBatch inserts all mentions in a single call
	CreateBatch(ctx context.Context, items []*ItemMention) error

	// ListNames returns item names in insertion order
	ListNames(ctx context.Context, filter ListFilter) ([]string, error)
}

// ListFilter scopes reads to responses stored under one location.
// An empty Location means no filter.
type ListFilter struct {
	Location string
}
