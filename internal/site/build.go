package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-gallery/internal/catalog"
	"github.com/jakoblorz/go-gallery/internal/entry"
	"github.com/jakoblorz/go-gallery/internal/filesystem"
	"github.com/jakoblorz/go-gallery/internal/gallery"
	"github.com/jakoblorz/go-gallery/internal/models"
	"github.com/jakoblorz/go-gallery/internal/preferences"
	"go.uber.org/zap"
)

// BuildOptions configures a static build
type BuildOptions struct {
	Title    string
	Theme    models.Theme
	TagOrder catalog.TagOrder
	Logger   *zap.Logger
}

// Build writes index.html, projects.json and one page per tag to outDir
// and returns the written paths. When loadErr is set only index.html is
// written, carrying the load error message.
func Build(fs filesystem.FileSystem, outDir string, projects []models.Project, loadErr error, opts BuildOptions) ([]string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := fs.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	newSession := func() *gallery.Session {
		prefs := preferences.NewMemoryStore()
		_ = preferences.SaveTheme(prefs, models.ThemeOrDefault(string(opts.Theme)))
		s := gallery.NewSession(prefs, gallery.WithLogger(logger), gallery.WithTagOrder(opts.TagOrder))
		s.InitTheme()
		return s
	}

	var written []string
	writePage := func(path string, s *gallery.Session, links Links) error {
		var buf bytes.Buffer
		if err := Render(&buf, NewPage(opts.Title, s, links)); err != nil {
			return err
		}
		if err := fs.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
		return nil
	}

	if loadErr != nil {
		s := newSession()
		s.Fail(loadErr)
		if err := writePage(filepath.Join(outDir, "index.html"), s, staticLinks{}); err != nil {
			return nil, err
		}
		return written, nil
	}

	index := newSession()
	index.Bind(projects)
	slugs := TagSlugs(index.Catalog().Tags())

	if err := writePage(filepath.Join(outDir, "index.html"), index, staticLinks{slugs: slugs}); err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode projects: %w", err)
	}
	jsonPath := filepath.Join(outDir, "projects.json")
	if err := fs.WriteFile(jsonPath, append(data, '\n'), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", jsonPath, err)
	}
	written = append(written, jsonPath)

	tagDir := filepath.Join(outDir, "tags")
	if index.Catalog().Len() > 0 {
		if err := fs.MkdirAll(tagDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create tag directory: %w", err)
		}
	}
	for _, tag := range index.Catalog().Tags() {
		s := newSession()
		s.Bind(projects)
		if err := s.Dispatch(gallery.ToggleTag(tag)); err != nil {
			return nil, err
		}
		links := staticLinks{slugs: slugs, prefix: "../"}
		if err := writePage(filepath.Join(tagDir, slugs[tag]+".html"), s, links); err != nil {
			return nil, err
		}
	}

	logger.Info("Built site",
		zap.String("dir", outDir),
		zap.Int("projects", len(projects)),
		zap.Int("pages", len(written)-1))

	return written, nil
}

// TagSlugs assigns each tag a unique file-safe name
func TagSlugs(tags []string) map[string]string {
	slugs := make(map[string]string, len(tags))
	used := make(map[string]bool, len(tags))
	for i, tag := range tags {
		slug := entry.Slugify(tag)
		if slug == "" {
			slug = fmt.Sprintf("tag-%d", i+1)
		}
		base := slug
		for n := 2; used[slug]; n++ {
			slug = fmt.Sprintf("%s-%d", base, n)
		}
		used[slug] = true
		slugs[tag] = slug
	}
	return slugs
}
