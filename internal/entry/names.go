package entry

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// colors and mediums are used when a title yields no usable slug
var colors = []string{
	"amber", "azure", "beige", "cerulean", "charcoal", "cobalt", "coral", "crimson",
	"cyan", "ebony", "emerald", "fuchsia", "gold", "graphite", "indigo", "ivory",
	"jade", "lavender", "lilac", "magenta", "maroon", "mint", "navy", "ochre",
	"olive", "onyx", "peach", "pearl", "plum", "rose", "ruby", "rust", "saffron",
	"sage", "sapphire", "scarlet", "sepia", "sienna", "silver", "slate", "tangerine",
	"teal", "topaz", "umber", "vermilion", "violet",
}

var mediums = []string{
	"banner", "booklet", "brochure", "collage", "cover", "emblem", "flyer", "glyph",
	"icon", "illustration", "label", "layout", "letterform", "logo", "mockup", "monogram",
	"mural", "pattern", "photo", "portrait", "postcard", "poster", "print", "render",
	"sculpture", "sketch", "sticker", "storyboard", "typeface", "wireframe", "woodcut", "zine",
}

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// generateID builds an ID like "cat-poster_V1StGXR8" from a title, or
// "amber_poster_V1StGXR8" when the title has no usable characters.
func generateID(title string) (string, error) {
	nanoID, err := gonanoid.Generate(idAlphabet, 8)
	if err != nil {
		return "", fmt.Errorf("failed to generate nanoid: %w", err)
	}

	if slug := Slugify(title); slug != "" {
		return fmt.Sprintf("%s_%s", slug, nanoID), nil
	}

	color := colors[rng.Intn(len(colors))]
	medium := mediums[rng.Intn(len(mediums))]
	return fmt.Sprintf("%s_%s_%s", color, medium, nanoID), nil
}

// Slugify lowercases s, keeps ASCII letters and digits, and joins words
// with single dashes.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
