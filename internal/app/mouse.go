package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	row := msg.Y - m.BarRect.Y
	inList := m.ListRect.Contains(msg.X, msg.Y)
	inBar := m.BarRect.Contains(msg.X, msg.Y)

	switch {
	case msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelUp:
		if (inList || inBar) && !m.Tracker.IsActive() {
			m.List.Scroll(msg.Button == tea.MouseButtonWheelDown)
			m.syncHandle()
		}

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if inBar {
			if m.Tracker.IsActive() {
				m.Tracker.Cancel()
			}
			m.Tracker.Begin()
			m.DragByKey = false
			m.dragTo(row)
			return m, nil
		}
		if inList && !m.Tracker.IsActive() && m.List.Click(msg.Y-m.ListRect.Y) {
			m.syncHandle()
		}

	case msg.Action == tea.MouseActionMotion:
		if m.Tracker.IsActive() && !m.DragByKey {
			m.dragTo(row)
		}

	case msg.Action == tea.MouseActionRelease:
		if m.Tracker.IsActive() && !m.DragByKey {
			m.dragTo(row)
			m.endDrag()
		}
	}
	return m, nil
}

// dragTo places the handle under the pointer row of the bar.
func (m *Model) dragTo(row int) {
	offset, ok := m.Bar.OffsetAt(row)
	if !ok {
		return
	}
	m.Tracker.Update(offset - m.Tracker.Base())
}
