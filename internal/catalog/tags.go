package catalog

import (
	"fmt"
	"sort"

	"github.com/jakoblorz/go-gallery/internal/models"
)

// TagOrder controls how the catalog orders its tags.
type TagOrder string

const (
	// OrderFirstSeen keeps tags in order of first appearance across the
	// projects, in project order.
	OrderFirstSeen TagOrder = "first-seen"

	// OrderAlpha sorts tags alphabetically.
	OrderAlpha TagOrder = "alpha"
)

// IsValid checks if the order is known
func (o TagOrder) IsValid() bool {
	switch o {
	case OrderFirstSeen, OrderAlpha:
		return true
	default:
		return false
	}
}

// ParseTagOrder parses a string into a TagOrder; empty means OrderFirstSeen.
func ParseTagOrder(s string) (TagOrder, error) {
	if s == "" {
		return OrderFirstSeen, nil
	}
	o := TagOrder(s)
	if !o.IsValid() {
		return "", fmt.Errorf("invalid tag order: %s (must be first-seen or alpha)", s)
	}
	return o, nil
}

// TagCatalog is the ordered set of distinct tags used by a project list.
type TagCatalog struct {
	tags  []string
	index map[string]int
}

// BuildTagCatalog collects every distinct tag across projects.
func BuildTagCatalog(projects []models.Project, order TagOrder) TagCatalog {
	c := TagCatalog{index: make(map[string]int)}
	for _, p := range projects {
		for _, tag := range p.Tags {
			if _, seen := c.index[tag]; seen {
				continue
			}
			c.index[tag] = len(c.tags)
			c.tags = append(c.tags, tag)
		}
	}

	if order == OrderAlpha {
		sort.Strings(c.tags)
		for i, tag := range c.tags {
			c.index[tag] = i
		}
	}

	return c
}

// Tags returns the tags in catalog order.
func (c TagCatalog) Tags() []string {
	out := make([]string, len(c.tags))
	copy(out, c.tags)
	return out
}

// Contains reports whether tag is in the catalog.
func (c TagCatalog) Contains(tag string) bool {
	_, ok := c.index[tag]
	return ok
}

// Len returns the number of distinct tags
func (c TagCatalog) Len() int {
	return len(c.tags)
}

// At returns the tag at position i.
func (c TagCatalog) At(i int) string {
	return c.tags[i]
}
