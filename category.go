package tracker

import (
	"iter"
	"slices"
	"strings"
)

// AddCategory appends a category name to the registry. Blank names and
// duplicates are silently ignored, not errors. Insertion order is preserved
// and is the display order.
func (l *Ledger) AddCategory(name string) {
	name = strings.TrimSpace(name)
	if name == "" || slices.Contains(l.categories, name) {
		return
	}
	l.categories = append(l.categories, name)
}

// RemoveCategory removes a category name from the registry, a no-op if
// absent. Existing records keep the removed name as a dangling soft
// reference; they are not rewritten or cascaded.
func (l *Ledger) RemoveCategory(name string) {
	i := slices.Index(l.categories, name)
	if i < 0 {
		return
	}
	l.categories = append(l.categories[:i], l.categories[i+1:]...)
}

// HasCategory reports whether the exact name is registered.
func (l *Ledger) HasCategory(name string) bool {
	return slices.Contains(l.categories, name)
}

// Categories iterates over category names in insertion order.
func (l *Ledger) Categories() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, c := range l.categories {
			if !yield(c) {
				return
			}
		}
	}
}
