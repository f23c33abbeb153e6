package survey

import "errors"

var (
	// ErrResponseNotFound indicates the survey response was not found
	ErrResponseNotFound = errors.New("survey response not found")

	// ErrDraftNotFound indicates the draft is missing or expired
	ErrDraftNotFound = errors.New("survey draft not found")

	// ErrLastSlot indicates an attempt to remove the only remaining item slot
	ErrLastSlot = errors.New("at least one item slot must remain")

	// ErrSlotOutOfRange indicates an item slot index outside the list
	ErrSlotOutOfRange = errors.New("item slot index out of range")

	// ErrNoItems indicates a response with no item mentions
	ErrNoItems = errors.New("survey response requires at least one item")

	// ErrInvalidRole indicates a role outside customer and agent
	ErrInvalidRole = errors.New("survey response role is invalid")
)
