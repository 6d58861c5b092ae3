// Package headerbar renders the single-line title bar above the list.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/atlas/internal/ui/render"
	"github.com/llehouerou/atlas/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Info is what the header bar shows.
type Info struct {
	Title    string
	Entries  int
	Sections int
	Current  string // key of the section under the handle
	Dragging bool
	Filter   string // active filter pattern
}

// Render returns the header bar string for the given width.
func Render(info Info, width int) string {
	if width <= 0 {
		return ""
	}
	t := styles.T()

	title := styles.ApplyBoldGradient(info.Title, t.Primary, t.Secondary)

	var parts []string
	if info.Filter != "" {
		parts = append(parts, t.S().Warning.Render("/"+render.Sanitize(info.Filter)))
	}
	parts = append(parts,
		t.S().Muted.Render(humanize.Comma(int64(info.Entries)) + " " + english.PluralWord(info.Entries, "country", "countries")),
		t.S().Muted.Render(english.Plural(info.Sections, "section", "")),
	)
	if info.Current != "" {
		current := t.S().Title.Render(render.Sanitize(info.Current))
		if info.Dragging {
			current = t.S().Handle.Bold(true).Render(render.Sanitize(info.Current))
		}
		parts = append(parts, current)
	}
	right := strings.Join(parts, t.S().Subtle.Render(" │ "))

	if lipgloss.Width(title)+lipgloss.Width(right)+1 > width {
		return render.FitStyled(title, width)
	}
	return render.Row(title, right, width)
}
