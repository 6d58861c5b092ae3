package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/atlas/internal/keymap"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.StatusMsg = ""

	if m.Filter.Active() {
		return m, m.Filter.Update(msg)
	}

	if m.PendingKeys != "" {
		m.PendingKeys = ""
		if key != "esc" {
			m.jumpToKey(key)
		}
		return m, nil
	}

	action := m.Keys.Resolve(key)
	if m.Tracker.IsActive() {
		action = m.Keys.ResolveIn(key, "global", "index")
	}
	switch action { //nolint:exhaustive // list actions handled below
	case keymap.ActionQuit:
		return m, tea.Quit

	case keymap.ActionHelp:
		m.ShowHelp = !m.ShowHelp
		m.Help.ShowAll = m.ShowHelp
		m.layout()
		return m, nil

	case keymap.ActionCancelDrag:
		if m.Tracker.Cancel() {
			m.DragByKey = false
			m.Logger.Debug().Msg("drag cancelled")
		}
		return m, nil

	case keymap.ActionScrubDown:
		return m.scrubStep(1)

	case keymap.ActionScrubUp:
		return m.scrubStep(-1)

	case keymap.ActionJumpPrefix:
		m.PendingKeys = key
		return m, nil

	case keymap.ActionFilter:
		m.Filter.Start("/", m.FilterText)
		return m, nil

	case keymap.ActionNextSection:
		if s := m.List.NextSection(); s >= 0 {
			m.scrollTo(s)
			m.syncHandle()
		}
		return m, nil

	case keymap.ActionPrevSection:
		if s := m.List.PrevSection(); s >= 0 {
			m.scrollTo(s)
			m.syncHandle()
		}
		return m, nil
	}

	if m.List.HandleAction(action) {
		m.syncHandle()
	}
	return m, nil
}

// scrubStep moves the handle one section with the keyboard. The first step
// begins a drag; it ends keyDragTimeout after the last step.
func (m Model) scrubStep(delta int) (tea.Model, tea.Cmd) {
	if m.Tracker.IsActive() && !m.DragByKey {
		return m, nil
	}
	if !m.Tracker.IsActive() {
		m.Tracker.Begin()
		m.DragByKey = true
	}
	target := m.Mapper.OffsetOf(m.Tracker.Section() + delta)
	m.Tracker.Update(target - m.Tracker.Base())

	m.KeyDragVersion++
	return m, keyDragTimeoutCmd(m.KeyDragVersion)
}

// jumpToKey scrolls straight to the section labelled key. Letter keys match
// their upper-case section. A drag in progress is dropped so that its end
// does not move the list back.
func (m *Model) jumpToKey(key string) {
	idx := m.List.Index()
	i, ok := idx.Lookup(key)
	if !ok {
		i, ok = idx.Lookup(strings.ToUpper(key))
	}
	if !ok {
		m.StatusMsg = "No section " + key
		m.StatusIsError = false
		return
	}
	if m.Tracker.Cancel() {
		m.DragByKey = false
	}
	m.Tracker.SetBase(m.Mapper.OffsetOf(i))
	m.scrollTo(i)
}
