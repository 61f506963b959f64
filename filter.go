package gallery

import (
	"strings"
)

// Filter selects drawings from a gallery listing.
type Filter func(d *Drawing) bool

// Filtered returns the drawings that match all of the given filters,
// in gallery order.
// Without filters, all drawings are returned.
func (g *Gallery) Filtered(filters ...Filter) []*Drawing {
	l := make([]*Drawing, 0, len(g.drawings))
	for _, d := range g.drawings {
		if matchAll(d, filters) {
			l = append(l, d)
		}
	}
	return l
}

func matchAll(d *Drawing, filters []Filter) bool {
	for _, f := range filters {
		if !f(d) {
			return false
		}
	}
	return true
}

// MatchTitle creates a filter for drawings whose title contains s,
// case-insensitive.
func MatchTitle(s string) Filter {
	s = strings.ToLower(s)
	return func(d *Drawing) bool {
		return strings.Contains(strings.ToLower(d.Title()), s)
	}
}

// IsComplete matches drawings that were marked as complete.
func IsComplete(d *Drawing) bool {
	return d.IsComplete()
}

// InProgress matches drawings that are not complete.
func InProgress(d *Drawing) bool {
	return !d.IsComplete()
}
