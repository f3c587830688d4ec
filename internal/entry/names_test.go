package entry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Cat Poster":          "cat-poster",
		"  Dog -- Logo  ":     "dog-logo",
		"3D Render #2":        "3d-render-2",
		"Café Menu":           "caf-menu",
		"":                    "",
		"!!!":                 "",
		"already-slugged-123": "already-slugged-123",
	}

	for in, want := range tests {
		require.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestGenerateID_Unique(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 10; i++ {
		id, err := generateID("Poster")
		require.NoError(t, err)
		require.Falsef(t, ids[id], "duplicate ID generated: %s", id)
		ids[id] = true
	}
}
