// Package demand ranks item mentions into a demand report.
package demand

import "sort"

// TopN is the number of entries kept in a demand report
const TopN = 10

// Entry is one ranked item and how many times it was mentioned
type Entry struct {
	ItemName string
	Count    int
}

// Aggregate groups names by exact value, counts each group and orders the
// groups by count descending. Ties keep first-seen order. The result is
// truncated to limit entries; limit <= 0 keeps every group.
func Aggregate(names []string, limit int) []Entry {
	index := make(map[string]int, len(names))
	entries := make([]Entry, 0)
	for _, name := range names {
		if i, ok := index[name]; ok {
			entries[i].Count++
			continue
		}
		index[name] = len(entries)
		entries = append(entries, Entry{ItemName: name, Count: 1})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// UniqueCount returns the number of distinct names
func UniqueCount(names []string) int {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		seen[name] = struct{}{}
	}
	return len(seen)
}
