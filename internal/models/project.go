package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ImagePlaceholder is shown on a card when a project has no image.
const ImagePlaceholder = "🎨"

// Project represents a single portfolio entry.
//
// Projects are created by a source and never mutated afterwards.
type Project struct {
	// ID is the unique identifier of the entry
	ID string `json:"id" yaml:"id" validate:"required"`

	// Title is the display name of the entry
	Title string `json:"title" yaml:"title" validate:"required"`

	// Description is the free-text summary shown on the card
	Description string `json:"description" yaml:"description"`

	// Image is an optional URL or path; empty means "use the placeholder"
	Image string `json:"image,omitempty" yaml:"image,omitempty"`

	// Link points at the full design
	Link string `json:"link" yaml:"link" validate:"required"`

	// Tags categorize the entry, in the order the author wrote them
	Tags []string `json:"tags" yaml:"tags" validate:"dive,required"`
}

// HasImage reports whether the project carries its own image.
func (p Project) HasImage() bool {
	return strings.TrimSpace(p.Image) != ""
}

// HasTag reports whether the project is labelled with tag.
func (p Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Validate checks the required fields of a single project.
func (p Project) Validate() error {
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			name := p.ID
			if name == "" {
				name = p.Title
			}
			return fmt.Errorf("invalid project %q: field %s failed %q", name, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid project: %w", err)
	}
	return nil
}

// ValidateProjects validates every project and checks that IDs are unique.
func ValidateProjects(projects []Project) error {
	seen := make(map[string]struct{}, len(projects))
	for i, p := range projects {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("entry %d: duplicate project id %q", i, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
