package survey

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"demandsurvey/internal/domain/location"
)

// ConfirmationWindow is how long a draft reports a successful submission
// before reverting to the plain empty form.
const ConfirmationWindow = 5 * time.Second

// Draft is a server-held form session: respondent fields, the location
// selection and the editable item slots.
type Draft struct {
	id             string
	name           string
	mobile         string
	role           string
	selection      location.Selection
	slots          *ItemSlots
	confirmedUntil time.Time
	updatedAt      time.Time
}

// generateDraftID generates a short random ID with the drf prefix
func generateDraftID() (string, error) {
	bytes := make([]byte, 12)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return "drf_" + base64.RawURLEncoding.EncodeToString(bytes), nil
}

// NewDraft starts an empty form session
func NewDraft() (*Draft, error) {
	id, err := generateDraftID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate draft ID: %w", err)
	}
	return &Draft{
		id:        id,
		slots:     NewItemSlots(),
		updatedAt: time.Now(),
	}, nil
}

// ReconstructDraft rebuilds a draft from the session store
func ReconstructDraft(
	id, name, mobile, role string,
	selection location.Selection,
	slots []string,
	confirmedUntil, updatedAt time.Time,
) (*Draft, error) {
	if id == "" {
		return nil, fmt.Errorf("draft ID is required")
	}
	return &Draft{
		id:             id,
		name:           name,
		mobile:         mobile,
		role:           role,
		selection:      selection,
		slots:          RestoreItemSlots(slots),
		confirmedUntil: confirmedUntil,
		updatedAt:      updatedAt,
	}, nil
}

// ID returns the draft ID
func (d *Draft) ID() string { return d.id }

// Name returns the entered respondent name
func (d *Draft) Name() string { return d.name }

// Mobile returns the entered mobile number
func (d *Draft) Mobile() string { return d.mobile }

// Role returns the entered role
func (d *Draft) Role() string { return d.role }

// Selection returns the location selection
func (d *Draft) Selection() location.Selection { return d.selection }

// Slots returns the raw item slot text
func (d *Draft) Slots() []string { return d.slots.Slots() }

// ConfirmedUntil returns when the success confirmation expires
func (d *Draft) ConfirmedUntil() time.Time { return d.confirmedUntil }

// UpdatedAt returns the last edit time
func (d *Draft) UpdatedAt() time.Time { return d.updatedAt }

// IsConfirmed reports whether the last submission is still being confirmed at now
func (d *Draft) IsConfirmed(now time.Time) bool {
	return now.Before(d.confirmedUntil)
}

// UpdateFields sets the respondent fields that are not nil
func (d *Draft) UpdateFields(name, mobile, role *string) {
	if name != nil {
		d.name = *name
	}
	if mobile != nil {
		d.mobile = *mobile
	}
	if role != nil {
		d.role = *role
	}
	d.touch()
}

// SelectLocation chooses a location, clearing the sub-region when it changes
func (d *Draft) SelectLocation(name string) {
	d.selection.SelectLocation(name)
	d.touch()
}

// SelectSubRegion chooses a sub-region of the selected location
func (d *Draft) SelectSubRegion(dir *location.Directory, n int) error {
	if err := d.selection.SelectSubRegion(dir, n); err != nil {
		return err
	}
	d.touch()
	return nil
}

// AppendSlot adds an empty item slot
func (d *Draft) AppendSlot() {
	d.slots.Append()
	d.touch()
}

// RemoveSlot removes an item slot
func (d *Draft) RemoveSlot(index int) error {
	if err := d.slots.RemoveAt(index); err != nil {
		return err
	}
	d.touch()
	return nil
}

// UpdateSlot replaces the text of an item slot
func (d *Draft) UpdateSlot(index int, text string) error {
	if err := d.slots.UpdateAt(index, text); err != nil {
		return err
	}
	d.touch()
	return nil
}

// Raw returns the draft as a submission candidate
func (d *Draft) Raw() RawSubmission {
	subRegion := ""
	if d.selection.HasSubRegion() {
		subRegion = strconv.Itoa(d.selection.SubRegion())
	}
	return RawSubmission{
		Name:      d.name,
		Mobile:    d.mobile,
		Location:  d.selection.Location(),
		SubRegion: subRegion,
		Role:      d.role,
		Items:     d.slots.Commit(),
	}
}

// MarkSubmitted clears the form back to one empty slot and starts the
// confirmation window.
func (d *Draft) MarkSubmitted(now time.Time) {
	d.name = ""
	d.mobile = ""
	d.role = ""
	d.selection.Clear()
	d.slots.Reset()
	d.confirmedUntil = now.Add(ConfirmationWindow)
	d.updatedAt = now
}

func (d *Draft) touch() {
	d.updatedAt = time.Now()
}
