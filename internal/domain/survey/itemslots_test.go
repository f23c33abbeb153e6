package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemSlots_StartsWithOneEmptySlot(t *testing.T) {
	s := NewItemSlots()
	assert.Equal(t, []string{""}, s.Slots())
	assert.Empty(t, s.Commit())
}

func TestItemSlots_RemoveNeverDropsBelowOne(t *testing.T) {
	s := NewItemSlots()
	s.Append()
	s.Append()

	for i := 0; i < 10; i++ {
		_ = s.RemoveAt(0)
		assert.GreaterOrEqual(t, s.Len(), 1)
	}
	assert.ErrorIs(t, s.RemoveAt(0), ErrLastSlot)
	assert.Equal(t, 1, s.Len())
}

func TestItemSlots_IndexBounds(t *testing.T) {
	s := NewItemSlots()
	assert.ErrorIs(t, s.UpdateAt(1, "x"), ErrSlotOutOfRange)
	assert.ErrorIs(t, s.UpdateAt(-1, "x"), ErrSlotOutOfRange)
	s.Append()
	assert.ErrorIs(t, s.RemoveAt(2), ErrSlotOutOfRange)
}

func TestItemSlots_CommitKeepsSlots(t *testing.T) {
	s := NewItemSlots()
	require.NoError(t, s.UpdateAt(0, "  "))
	s.Append()
	require.NoError(t, s.UpdateAt(1, " Rice "))
	s.Append()
	require.NoError(t, s.UpdateAt(2, "Soap"))

	assert.Equal(t, []string{"Rice", "Soap"}, s.Commit())
	assert.Equal(t, 3, s.Len(), "commit leaves the slot list untouched")
	assert.Equal(t, []string{"  ", " Rice ", "Soap"}, s.Slots())
}

func TestItemSlots_RemoveMiddle(t *testing.T) {
	s := RestoreItemSlots([]string{"a", "b", "c"})
	require.NoError(t, s.RemoveAt(1))
	assert.Equal(t, []string{"a", "c"}, s.Slots())
}

func TestItemSlots_Reset(t *testing.T) {
	s := RestoreItemSlots([]string{"a", "b"})
	s.Reset()
	assert.Equal(t, []string{""}, s.Slots())
}

func TestRestoreItemSlots_EmptyInput(t *testing.T) {
	assert.Equal(t, 1, RestoreItemSlots(nil).Len())
}
