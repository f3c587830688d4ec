package source

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/jakoblorz/go-gallery/internal/models"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a project data file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromName picks the format from a file name or URL path; anything
// that is not .yaml/.yml is treated as JSON.
func FormatFromName(name string) Format {
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses and validates a project list.
func Decode(data []byte, format Format) ([]models.Project, error) {
	var projects []models.Project

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &projects); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &projects); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
	}

	if projects == nil {
		return nil, fmt.Errorf("project list is empty or null")
	}

	for i := range projects {
		if projects[i].Tags == nil {
			projects[i].Tags = []string{}
		}
	}

	if err := models.ValidateProjects(projects); err != nil {
		return nil, err
	}

	return projects, nil
}
