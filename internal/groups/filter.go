// Package groups filters user group exports down to production entries.
package groups

import "strings"

// DefaultMarkers are the environment indicators that mark a group as
// non-production. Matching is case-sensitive substring matching.
var DefaultMarkers = []string{
	"DV", "DEV", "UAT", "SB", "DIT", "PT", "SIT",
	"Dev", "UA", "QA", "Test", "Sandbox", "SANDBOX", "SandBox",
}

// Filter decides which rows carry an environment marker in their name.
type Filter struct {
	markers []string
}

// NewFilter creates a Filter from the provided marker list. An empty list
// falls back to DefaultMarkers.
func NewFilter(markers []string) *Filter {
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	return &Filter{markers: markers}
}

// Excludes returns true if the BOM-stripped name contains any marker.
// An empty name contains no marker and is never excluded.
func (f *Filter) Excludes(name string) bool {
	name = strings.TrimPrefix(name, "\ufeff")
	for _, m := range f.markers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// Split partitions rows into kept and excluded, preserving order.
func (f *Filter) Split(rows []Row) (kept, excluded []Row) {
	for _, r := range rows {
		if f.Excludes(r.Name) {
			excluded = append(excluded, r)
		} else {
			kept = append(kept, r)
		}
	}
	return kept, excluded
}
