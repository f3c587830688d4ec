package models

import "sort"

// FilterState is the visitor's current search text and tag selection.
type FilterState struct {
	// Search is the raw text typed into the search box
	Search string

	// active is a set; insertion order is irrelevant
	active map[string]struct{}
}

// NewFilterState creates an empty filter state (matches everything).
func NewFilterState() FilterState {
	return FilterState{active: make(map[string]struct{})}
}

// IsActive reports whether tag is part of the active set.
func (f FilterState) IsActive(tag string) bool {
	_, ok := f.active[tag]
	return ok
}

// ToggleTag flips the membership of tag and reports whether it is now active.
func (f *FilterState) ToggleTag(tag string) bool {
	if f.active == nil {
		f.active = make(map[string]struct{})
	}
	if _, ok := f.active[tag]; ok {
		delete(f.active, tag)
		return false
	}
	f.active[tag] = struct{}{}
	return true
}

// ActiveTags returns a copy of the active set.
func (f FilterState) ActiveTags() map[string]struct{} {
	out := make(map[string]struct{}, len(f.active))
	for tag := range f.active {
		out[tag] = struct{}{}
	}
	return out
}

// SortedActiveTags returns the active tags sorted alphabetically.
func (f FilterState) SortedActiveTags() []string {
	tags := make([]string, 0, len(f.active))
	for tag := range f.active {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// ActiveCount returns the number of selected tags
func (f FilterState) ActiveCount() int {
	return len(f.active)
}

// Clear resets search text and tag selection.
func (f *FilterState) Clear() {
	f.Search = ""
	f.active = make(map[string]struct{})
}
