package entry

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/go-gallery/internal/filesystem"
)

// DirBuilder helps create entry directories in tests
type DirBuilder struct {
	fs  *filesystem.MockFileSystem
	dir string
}

// NewDirBuilder creates a DirBuilder with an empty entries directory
func NewDirBuilder(dir string) *DirBuilder {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(dir)

	return &DirBuilder{
		fs:  fs,
		dir: dir,
	}
}

// AddEntry writes an entry file named after id
func (b *DirBuilder) AddEntry(id, title, link, body string, tags ...string) *DirBuilder {
	var head strings.Builder
	head.WriteString("---\n")
	head.WriteString(fmt.Sprintf("title: %q\n", title))
	head.WriteString(fmt.Sprintf("link: %q\n", link))
	if len(tags) == 0 {
		head.WriteString("tags: []\n")
	} else {
		head.WriteString("tags:\n")
		for _, tag := range tags {
			head.WriteString(fmt.Sprintf("  - %q\n", tag))
		}
	}
	head.WriteString("---\n\n")
	head.WriteString(body)
	head.WriteString("\n")

	b.fs.AddFile(filepath.Join(b.dir, id+entryExt), []byte(head.String()))
	return b
}

// AddRaw writes a file with arbitrary content into the directory
func (b *DirBuilder) AddRaw(name, content string) *DirBuilder {
	b.fs.AddFile(filepath.Join(b.dir, name), []byte(content))
	return b
}

// Ignore writes the ignore file
func (b *DirBuilder) Ignore(patterns ...string) *DirBuilder {
	return b.AddRaw(IgnoreFileName, strings.Join(patterns, "\n")+"\n")
}

// Build returns the filesystem
func (b *DirBuilder) Build() *filesystem.MockFileSystem {
	return b.fs
}
