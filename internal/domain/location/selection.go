package location

// Selection is the location / sub-region pair chosen on a form. A sub-region
// only has meaning relative to the location it was picked for.
type Selection struct {
	location  string
	subRegion int
}

// RestoreSelection rebuilds a selection from stored state
func RestoreSelection(location string, subRegion int) Selection {
	if location == "" {
		subRegion = 0
	}
	return Selection{location: location, subRegion: subRegion}
}

// Location returns the chosen location, or "" when none
func (s Selection) Location() string {
	return s.location
}

// SubRegion returns the chosen sub-region, or 0 when none
func (s Selection) SubRegion() int {
	return s.subRegion
}

// HasSubRegion reports whether a sub-region has been chosen
func (s Selection) HasSubRegion() bool {
	return s.subRegion > 0
}

// SelectLocation chooses a location. Switching to a different location clears
// the sub-region; re-selecting the current one keeps it.
func (s *Selection) SelectLocation(name string) {
	if s.location != name {
		s.subRegion = 0
	}
	s.location = name
}

// SelectSubRegion chooses a sub-region for the current location, checked
// against the directory.
func (s *Selection) SelectSubRegion(dir *Directory, n int) error {
	count, ok := dir.SubRegionCountFor(s.location)
	if !ok {
		return ErrUnknownLocation
	}
	if n < 1 || n > count {
		return ErrSubRegionOutOfRange
	}
	s.subRegion = n
	return nil
}

// Clear resets both location and sub-region
func (s *Selection) Clear() {
	s.location = ""
	s.subRegion = 0
}
