package countrylist

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/atlas/internal/ui"
	"github.com/llehouerou/atlas/internal/ui/layout"
	"github.com/llehouerou/atlas/internal/ui/render"
	"github.com/llehouerou/atlas/internal/ui/styles"
)

// View renders the list inside a rounded panel.
func (m Model) View() string {
	if !m.IsSized() {
		return ""
	}
	innerWidth := m.InnerWidth(ui.BorderWidth)
	height := m.listHeight()

	lines := make([]string, 0, height)
	start, end := m.cursor.VisibleRange(m.index.Rows(), height)
	for row := start; row < end; row++ {
		lines = append(lines, m.renderRow(row, innerWidth))
	}
	if len(lines) == 0 {
		lines = append(lines, render.FitStyled(styles.T().S().Subtle.Render("No countries"), innerWidth))
	}
	for len(lines) < height {
		lines = append(lines, render.Blank(innerWidth))
	}

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderRow(row, width int) string {
	t := styles.T()
	s, entry := m.index.Locate(row)
	sec := m.sections[s]

	if entry < 0 {
		count := humanize.Comma(int64(sec.Len()))
		return render.Row(t.S().Header.Render(render.Sanitize(sec.Key)), t.S().Subtle.Render(count), width)
	}

	c := sec.Data[entry]
	name := "  " + render.Sanitize(c.Name)
	meta := c.Code
	if c.Region != "" && !layout.IsNarrowMode(width) {
		meta = c.Region + "  " + c.Code
	}

	if row == m.cursor.Pos() {
		line := render.Row(name, meta, width)
		return t.S().Cursor.Render(render.FitStyled(line, width))
	}
	return render.Row(t.S().Base.Render(name), t.S().Subtle.Render(meta), width)
}
