package location

import "sort"

// Directory is an immutable snapshot of the catalog, sorted by name.
type Directory struct {
	entries []*Location
	byName  map[string]*Location
}

// NewDirectory builds a snapshot from the given entries. The input slice is
// not retained.
func NewDirectory(entries []*Location) *Directory {
	sorted := make([]*Location, 0, len(entries))
	byName := make(map[string]*Location, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		sorted = append(sorted, e)
		byName[e.Name()] = e
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name() < sorted[j].Name()
	})
	return &Directory{entries: sorted, byName: byName}
}

// List returns the entries sorted by name
func (d *Directory) List() []*Location {
	out := make([]*Location, len(d.entries))
	copy(out, d.entries)
	return out
}

// Names returns the location names in sorted order
func (d *Directory) Names() []string {
	names := make([]string, len(d.entries))
	for i, e := range d.entries {
		names[i] = e.Name()
	}
	return names
}

// SubRegionCountFor returns the sub-region count for name, or false when the
// name is unknown. Matching is exact and case-sensitive.
func (d *Directory) SubRegionCountFor(name string) (int, bool) {
	e, ok := d.byName[name]
	if !ok {
		return 0, false
	}
	return e.SubRegionCount(), true
}

// Len returns the number of entries
func (d *Directory) Len() int {
	return len(d.entries)
}
