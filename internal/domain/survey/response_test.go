package survey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponse(t *testing.T) {
	sub := &Submission{
		Respondent: Respondent{Name: "Anu", Mobile: "9876543210", Location: "A", SubRegion: 1, Role: RoleCustomer},
		Items:      []string{"Rice"},
	}

	resp, err := NewResponse(sub)
	require.NoError(t, err)
	assert.Zero(t, resp.ID())
	assert.Equal(t, "Anu", resp.Respondent().Name)

	require.NoError(t, resp.SetID(9))
	assert.Error(t, resp.SetID(10))
}

func TestNewResponse_RequiresItems(t *testing.T) {
	_, err := NewResponse(&Submission{})
	assert.ErrorIs(t, err, ErrNoItems)

	_, err = NewResponse(nil)
	assert.Error(t, err)
}

func TestNewItemMentions(t *testing.T) {
	items, err := NewItemMentions(7, []string{"Soap", "Rice", "Oil"})
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, it := range items {
		assert.Equal(t, uint(7), it.ResponseID())
		assert.Equal(t, ItemTypeProduct, it.ItemType())
	}
	assert.Equal(t, "Rice", items[1].ItemName())

	_, err = NewItemMentions(0, []string{"Soap"})
	assert.Error(t, err)
	_, err = NewItemMentions(7, nil)
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestResponse_EditRespondent(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	resp, err := ReconstructResponse(3, Respondent{Name: "Old"}, nil, created, created)
	require.NoError(t, err)

	resp.EditRespondent(Respondent{Name: "Old"})
	assert.Equal(t, created, resp.UpdatedAt())

	resp.EditRespondent(Respondent{Name: "New"})
	assert.Equal(t, "New", resp.Respondent().Name)
	assert.True(t, resp.UpdatedAt().After(created))
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleCustomer.IsValid())
	assert.True(t, RoleAgent.IsValid())
	assert.False(t, Role("vendor").IsValid())
}

func TestNewResponse_RejectsUnknownRole(t *testing.T) {
	_, err := NewResponse(&Submission{
		Respondent: Respondent{Name: "Anu", Mobile: "9876543210", Location: "A", SubRegion: 1, Role: Role("vendor")},
		Items:      []string{"Rice"},
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}
