package entry

import (
	"strings"
	"testing"

	"github.com/jakoblorz/go-gallery/internal/filesystem"
	"github.com/jakoblorz/go-gallery/internal/models"
	"github.com/stretchr/testify/require"
)

const testDir = "/site/entries"

func TestManager_ReadAll(t *testing.T) {
	fs := NewDirBuilder(testDir).
		AddEntry("b-dog", "Dog Logo", "https://example.com/dog", "Vector mark for a kennel.", "digital", "branding").
		AddEntry("a-cat", "Cat Poster", "https://example.com/cat", "Screen printed.", "print").
		AddRaw("README.txt", "not an entry").
		Build()
	fs.AddDir(testDir + "/drafts")

	projects, err := NewManager(fs, testDir).ReadAll()
	require.NoError(t, err)
	require.Len(t, projects, 2)

	require.Equal(t, models.Project{
		ID:          "a-cat",
		Title:       "Cat Poster",
		Description: "Screen printed.",
		Link:        "https://example.com/cat",
		Tags:        []string{"print"},
	}, projects[0])
	require.Equal(t, "b-dog", projects[1].ID)
	require.Equal(t, []string{"digital", "branding"}, projects[1].Tags)
}

func TestManager_ReadAll_HonorsIgnoreFile(t *testing.T) {
	fs := NewDirBuilder(testDir).
		AddEntry("cat", "Cat Poster", "#", "", "print").
		AddEntry("wip-dog", "Dog Logo", "#", "", "digital").
		Ignore("wip-*.md").
		Build()

	projects, err := NewManager(fs, testDir).ReadAll()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, "cat", projects[0].ID)
}

func TestManager_ReadAll_InvalidEntryFails(t *testing.T) {
	fs := NewDirBuilder(testDir).
		AddEntry("cat", "Cat Poster", "#", "", "print").
		AddRaw("broken.md", "---\ntitle: \"\"\nlink: \"#\"\n---\n").
		Build()

	_, err := NewManager(fs, testDir).ReadAll()
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken.md")
}

func TestManager_ReadAll_MissingDir(t *testing.T) {
	_, err := NewManager(filesystem.NewMockFileSystem(), "/nowhere").ReadAll()
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read entries directory")
}

func TestParse_FrontmatterOverridesDefaults(t *testing.T) {
	content := `---
id: custom-id
title: Mural
description: Wall piece
image: /img/mural.png
link: https://example.com/mural
tags: [paint, public]
---

Body text that is ignored because description is set.
`
	project, err := Parse("/site/entries/file-name.md", []byte(content))
	require.NoError(t, err)
	require.Equal(t, "custom-id", project.ID)
	require.Equal(t, "Wall piece", project.Description)
	require.Equal(t, "/img/mural.png", project.Image)
	require.Equal(t, []string{"paint", "public"}, project.Tags)
}

func TestParse_MissingTagsBecomesEmpty(t *testing.T) {
	project, err := Parse("/e/zine.md", []byte("---\ntitle: Zine\nlink: \"#\"\n---\nA zine.\n"))
	require.NoError(t, err)
	require.Equal(t, "zine", project.ID)
	require.Equal(t, "A zine.", project.Description)
	require.NotNil(t, project.Tags)
	require.Empty(t, project.Tags)
}

func TestManager_WriteThenRead(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	m := NewManager(fs, testDir)

	project := models.Project{
		ID:          "cat-poster_abc12345",
		Title:       "Cat Poster",
		Description: "Screen printed in two colors.",
		Link:        "https://example.com/cat",
		Tags:        []string{"print", "poster"},
	}

	path, err := m.Write(project)
	require.NoError(t, err)
	require.Equal(t, testDir+"/cat-poster_abc12345.md", path)

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "---\n"))
	require.Contains(t, string(data), "\nScreen printed in two colors.\n")

	read, err := m.Read(path)
	require.NoError(t, err)
	require.Equal(t, project, *read)

	_, err = m.Write(project)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
}

func TestManager_WriteRejectsInvalid(t *testing.T) {
	m := NewManager(filesystem.NewMockFileSystem(), testDir)
	_, err := m.Write(models.Project{ID: "x", Link: "#"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Title")
}

func TestManager_GenerateID(t *testing.T) {
	m := NewManager(filesystem.NewMockFileSystem(), testDir)

	id, err := m.GenerateID("Cat Poster!")
	require.NoError(t, err)
	parts := strings.Split(id, "_")
	require.Len(t, parts, 2, "expected slug_nanoid format: %s", id)
	require.Equal(t, "cat-poster", parts[0])
	require.Len(t, parts[1], 8)

	id, err = m.GenerateID("✨✨")
	require.NoError(t, err)
	parts = strings.Split(id, "_")
	require.Len(t, parts, 3, "expected color_medium_nanoid format: %s", id)
	require.Contains(t, colors, parts[0])
	require.Contains(t, mediums, parts[1])
}
