package survey

// ItemSlots is the editable, ordered list of item inputs on a form. It always
// holds at least one slot; its length is independent of the committed value.
type ItemSlots struct {
	slots []string
}

// NewItemSlots returns a list with a single empty slot
func NewItemSlots() *ItemSlots {
	return &ItemSlots{slots: []string{""}}
}

// RestoreItemSlots rebuilds a list from stored slot text
func RestoreItemSlots(slots []string) *ItemSlots {
	if len(slots) == 0 {
		return NewItemSlots()
	}
	cp := make([]string, len(slots))
	copy(cp, slots)
	return &ItemSlots{slots: cp}
}

// Append adds an empty slot at the end
func (s *ItemSlots) Append() {
	s.slots = append(s.slots, "")
}

// RemoveAt removes the slot at index. The last remaining slot cannot be removed.
func (s *ItemSlots) RemoveAt(index int) error {
	if index < 0 || index >= len(s.slots) {
		return ErrSlotOutOfRange
	}
	if len(s.slots) == 1 {
		return ErrLastSlot
	}
	s.slots = append(s.slots[:index], s.slots[index+1:]...)
	return nil
}

// UpdateAt replaces the text of the slot at index
func (s *ItemSlots) UpdateAt(index int, text string) error {
	if index < 0 || index >= len(s.slots) {
		return ErrSlotOutOfRange
	}
	s.slots[index] = text
	return nil
}

// Commit returns the trimmed, non-blank slot values in order
func (s *ItemSlots) Commit() []string {
	return CommitItems(s.slots)
}

// Reset returns the list to a single empty slot
func (s *ItemSlots) Reset() {
	s.slots = []string{""}
}

// Slots returns a copy of the raw slot text
func (s *ItemSlots) Slots() []string {
	out := make([]string, len(s.slots))
	copy(out, s.slots)
	return out
}

// Len returns the number of slots
func (s *ItemSlots) Len() int {
	return len(s.slots)
}
