package add

import (
	"fmt"
	"strings"

	"github.com/jakoblorz/go-gallery/internal/tui"
)

// RenderSuccess renders a summary after a successful flow run.
func RenderSuccess(result *Result) string {
	var b strings.Builder

	b.WriteString(tui.SuccessStyle.Render("✓ Project Added"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Created %s\n", result.Path))
	b.WriteString(tui.SubtleStyle.Render(fmt.Sprintf("  id:    %s", result.Project.ID)))
	b.WriteString("\n")
	b.WriteString(tui.SubtleStyle.Render(fmt.Sprintf("  title: %s", result.Project.Title)))
	b.WriteString("\n")
	if len(result.Project.Tags) > 0 {
		b.WriteString(tui.SubtleStyle.Render(fmt.Sprintf("  tags:  %s", strings.Join(result.Project.Tags, ", "))))
		b.WriteString("\n")
	}

	return b.String()
}
