package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/atlas/internal/keymap"
	"github.com/llehouerou/atlas/internal/ui/headerbar"
	"github.com/llehouerou/atlas/internal/ui/indexbar"
	"github.com/llehouerou/atlas/internal/ui/layout"
	"github.com/llehouerou/atlas/internal/ui/overlay"
	"github.com/llehouerou/atlas/internal/ui/render"
	"github.com/llehouerou/atlas/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}
	m.layout()

	header := headerbar.Render(headerbar.Info{
		Title:    Title,
		Entries:  m.Shown.Len(),
		Filter:   m.FilterText,
		Sections: m.Mapper.Count(),
		Current:  m.keyAt(m.Tracker.Section()),
		Dragging: m.Tracker.IsActive(),
	}, m.Width)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.List.View(),
		m.Bar.View(indexbar.Scrub{
			Offset:   m.Tracker.Offset(),
			Active:   m.Tracker.IsActive(),
			Emphasis: m.Tracker.Emphasis(),
		}),
	)

	if m.Tracker.IsActive() {
		body = m.withBubble(body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.footerView())
}

// withBubble draws the key of the section under the handle in the middle
// of the list.
func (m Model) withBubble(body string) string {
	key := m.keyAt(m.Tracker.Section())
	if key == "" {
		return body
	}
	box := styles.T().S().Bubble.Render(render.Sanitize(key))
	area := layout.Rect{Width: m.ListRect.Width, Height: m.ListRect.Height}
	x, y := layout.Center(area, lipgloss.Width(box), lipgloss.Height(box))
	return overlay.Place(body, box, x, y)
}

func (m Model) footerView() string {
	t := styles.T()
	switch {
	case m.Filter.Active():
		return m.Filter.View(m.Width)
	case m.StatusMsg != "" && m.StatusIsError:
		return render.FitStyled(t.S().Error.Render(render.Sanitize(m.StatusMsg)), m.Width)
	case m.StatusMsg != "":
		return render.FitStyled(t.S().Warning.Render(render.Sanitize(m.StatusMsg)), m.Width)
	case m.PendingKeys != "":
		return render.FitStyled(t.S().Muted.Render("jump to section: type its letter, esc to cancel"), m.Width)
	}
	return m.Help.View(keymap.NewHelp(keymap.Bindings))
}
