package mapper

import "fmt"

// MapSlice converts each element with fn. A nil input stays nil.
func MapSlice[T any, R any](items []T, fn func(T) R) []R {
	if items == nil {
		return nil
	}
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// MapSliceOrEmpty is MapSlice for API payloads, where a list is never null.
func MapSliceOrEmpty[T any, R any](items []T, fn func(T) R) []R {
	if out := MapSlice(items, fn); out != nil {
		return out
	}
	return []R{}
}

// ReconstructAll rebuilds domain entities from persistence rows. Nil rows are
// skipped; the first failure names the row id it came from.
func ReconstructAll[M any, E any, ID comparable](
	rows []*M,
	fn func(*M) (*E, error),
	idOf func(*M) ID,
) ([]*E, error) {
	out := make([]*E, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		entity, err := fn(row)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct row %v: %w", idOf(row), err)
		}
		out = append(out, entity)
	}
	return out, nil
}
