// Package entry reads and writes project entries stored as markdown files
// with YAML frontmatter, one file per project.
package entry

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	gitignore "github.com/denormal/go-gitignore"
	"github.com/jakoblorz/go-gallery/internal/filesystem"
	"github.com/jakoblorz/go-gallery/internal/models"
	"gopkg.in/yaml.v3"
)

// IgnoreFileName holds gitignore-style rules for entries to skip
const IgnoreFileName = ".galleryignore"

const entryExt = ".md"

// matter is the frontmatter block of an entry file
type matter struct {
	ID          string   `yaml:"id,omitempty"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Image       string   `yaml:"image,omitempty"`
	Link        string   `yaml:"link"`
	Tags        []string `yaml:"tags"`
}

// Manager handles entry files in a single directory
type Manager struct {
	fs  filesystem.FileSystem
	dir string
}

// NewManager creates a new entry manager rooted at dir
func NewManager(fs filesystem.FileSystem, dir string) *Manager {
	return &Manager{
		fs:  fs,
		dir: dir,
	}
}

// Dir returns the entries directory
func (m *Manager) Dir() string {
	return m.dir
}

// GenerateID generates a unique, human-friendly ID for a new entry
func (m *Manager) GenerateID(title string) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		id, err := generateID(title)
		if err != nil {
			return "", fmt.Errorf("failed to generate ID: %w", err)
		}
		if !m.fs.Exists(m.pathFor(id)) {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to generate an unused ID for %q", title)
}

// ReadAll reads every entry in the directory, in file name order.
// Files matched by the ignore file are skipped.
func (m *Manager) ReadAll() ([]models.Project, error) {
	entries, err := m.fs.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries directory: %w", err)
	}

	ignore, err := m.loadIgnore()
	if err != nil {
		return nil, err
	}

	projects := make([]models.Project, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), entryExt) {
			continue
		}
		if ignore != nil {
			if match := ignore.Relative(e.Name(), false); match != nil && match.Ignore() {
				continue
			}
		}

		project, err := m.Read(filepath.Join(m.dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read entry %s: %w", e.Name(), err)
		}
		projects = append(projects, *project)
	}

	return projects, nil
}

// Read reads a single entry file
func (m *Manager) Read(filePath string) (*models.Project, error) {
	data, err := m.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return Parse(filePath, data)
}

// Parse parses an entry file. The ID defaults to the file name and the
// description to the markdown body.
func Parse(filePath string, data []byte) (*models.Project, error) {
	var fm matter
	rest, err := frontmatter.Parse(bytes.NewReader(data), &fm)
	if err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	project := &models.Project{
		ID:          strings.TrimSpace(fm.ID),
		Title:       strings.TrimSpace(fm.Title),
		Description: strings.TrimSpace(fm.Description),
		Image:       strings.TrimSpace(fm.Image),
		Link:        strings.TrimSpace(fm.Link),
		Tags:        fm.Tags,
	}
	if project.ID == "" {
		project.ID = strings.TrimSuffix(filepath.Base(filePath), entryExt)
	}
	if project.Description == "" {
		project.Description = strings.TrimSpace(string(rest))
	}
	if project.Tags == nil {
		project.Tags = []string{}
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}

	return project, nil
}

// Write creates a new entry file and returns its path. The description is
// stored as the markdown body.
func (m *Manager) Write(project models.Project) (string, error) {
	if err := project.Validate(); err != nil {
		return "", err
	}

	if !m.fs.Exists(m.dir) {
		if err := m.fs.MkdirAll(m.dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create entries directory: %w", err)
		}
	}

	filePath := m.pathFor(project.ID)
	if m.fs.Exists(filePath) {
		return "", fmt.Errorf("entry %s already exists", filePath)
	}

	head, err := yaml.Marshal(matter{
		Title: project.Title,
		Image: project.Image,
		Link:  project.Link,
		Tags:  project.Tags,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(head)
	buf.WriteString("---\n\n")
	buf.WriteString(strings.TrimSpace(project.Description))
	buf.WriteString("\n")

	if err := m.fs.WriteFile(filePath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write entry file: %w", err)
	}

	return filePath, nil
}

func (m *Manager) pathFor(id string) string {
	return filepath.Join(m.dir, id+entryExt)
}

func (m *Manager) loadIgnore() (gitignore.GitIgnore, error) {
	ignorePath := filepath.Join(m.dir, IgnoreFileName)
	if !m.fs.Exists(ignorePath) {
		return nil, nil
	}

	data, err := m.fs.ReadFile(ignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", IgnoreFileName, err)
	}

	return gitignore.New(bytes.NewReader(data), m.dir, nil), nil
}
