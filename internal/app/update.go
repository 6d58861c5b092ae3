package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/atlas/internal/config"
	"github.com/llehouerou/atlas/internal/errmsg"
	"github.com/llehouerou/atlas/internal/ui/textinput"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case KeyDragTimeoutMsg:
		if msg.Version == m.KeyDragVersion && m.DragByKey && m.Tracker.IsActive() {
			m.endDrag()
		}
		return m, nil

	case config.ReloadedMsg:
		return m.handleReload(msg)

	case textinput.ResultMsg:
		return m.handleFilterResult(msg)
	}
	return m, nil
}

// scrollTo moves the list to section i. Failures are logged and the list
// stays where it was.
func (m *Model) scrollTo(i int) {
	if err := m.List.JumpToSection(i); err != nil {
		m.Logger.Warn().
			Err(err).
			Str("op", string(errmsg.OpScrollToSection)).
			Int("section", i).
			Str("key", m.keyAt(i)).
			Msg("scroll to section failed")
		return
	}
	m.Logger.Debug().Int("section", i).Msg("scrolled to section")
}

// endDrag commits the active drag and scrolls to its section.
func (m *Model) endDrag() {
	jump, ok := m.Tracker.End()
	m.DragByKey = false
	if !ok {
		return
	}
	m.scrollTo(jump.Section)
}

// syncHandle moves the resting handle to the section under the list cursor.
func (m *Model) syncHandle() {
	if s := m.List.CurrentSection(); s >= 0 {
		m.Tracker.SetBase(m.Mapper.OffsetOf(s))
	}
}

// keyAt returns the label of section i, or "" when out of range.
func (m Model) keyAt(i int) string {
	keys := m.Bar.Keys()
	if i < 0 || i >= len(keys) {
		return ""
	}
	return keys[i]
}
