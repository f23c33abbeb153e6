package survey

import (
	"fmt"
	"time"
)

// ItemTypeProduct is the tag carried by every item mention today
const ItemTypeProduct = "product"

// Respondent holds the validated identity and placement of a respondent
type Respondent struct {
	Name      string
	Mobile    string
	Location  string
	SubRegion int
	Role      Role
}

// Response is the survey response aggregate root. It owns its item mentions.
type Response struct {
	id         uint
	respondent Respondent
	items      []*ItemMention
	createdAt  time.Time
	updatedAt  time.Time
}

// ItemMention is one product or service named in a response
type ItemMention struct {
	id         uint
	responseID uint
	itemName   string
	itemType   string
}

// NewResponse creates a response from a validated submission
func NewResponse(sub *Submission) (*Response, error) {
	if sub == nil {
		return nil, fmt.Errorf("submission is required")
	}
	if len(sub.Items) == 0 {
		return nil, ErrNoItems
	}
	if !sub.Respondent.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	now := time.Now()
	return &Response{
		respondent: sub.Respondent,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructResponse reconstructs a response from persistence
func ReconstructResponse(id uint, respondent Respondent, items []*ItemMention, createdAt, updatedAt time.Time) (*Response, error) {
	if id == 0 {
		return nil, fmt.Errorf("response ID cannot be zero")
	}

	return &Response{
		id:         id,
		respondent: respondent,
		items:      items,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// ID returns the response ID
func (r *Response) ID() uint {
	return r.id
}

// Respondent returns the respondent fields
func (r *Response) Respondent() Respondent {
	return r.respondent
}

// Items returns the item mentions loaded with the response
func (r *Response) Items() []*ItemMention {
	return r.items
}

// CreatedAt returns when the response was created
func (r *Response) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the response was last edited
func (r *Response) UpdatedAt() time.Time {
	return r.updatedAt
}

// SetID sets the response ID (only for persistence layer use)
func (r *Response) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("response ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("response ID cannot be zero")
	}
	r.id = id
	return nil
}

// EditRespondent replaces the respondent fields with an already validated value
func (r *Response) EditRespondent(respondent Respondent) {
	if r.respondent == respondent {
		return
	}
	r.respondent = respondent
	r.updatedAt = time.Now()
}

// NewItemMentions builds one product mention per name, all owned by responseID
func NewItemMentions(responseID uint, names []string) ([]*ItemMention, error) {
	if responseID == 0 {
		return nil, fmt.Errorf("response ID is required")
	}
	if len(names) == 0 {
		return nil, ErrNoItems
	}

	mentions := make([]*ItemMention, 0, len(names))
	for _, name := range names {
		mentions = append(mentions, &ItemMention{
			responseID: responseID,
			itemName:   name,
			itemType:   ItemTypeProduct,
		})
	}
	return mentions, nil
}

// ReconstructItemMention reconstructs an item mention from persistence
func ReconstructItemMention(id, responseID uint, itemName, itemType string) *ItemMention {
	return &ItemMention{
		id:         id,
		responseID: responseID,
		itemName:   itemName,
		itemType:   itemType,
	}
}

// ID returns the item mention ID
func (m *ItemMention) ID() uint {
	return m.id
}

// ResponseID returns the owning response ID
func (m *ItemMention) ResponseID() uint {
	return m.responseID
}

// ItemName returns the item name as submitted
func (m *ItemMention) ItemName() string {
	return m.itemName
}

// ItemType returns the item type tag
func (m *ItemMention) ItemType() string {
	return m.itemType
}

// SetID sets the item mention ID (only for persistence layer use)
func (m *ItemMention) SetID(id uint) {
	m.id = id
}
