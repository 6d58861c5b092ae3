package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/atlas/internal/errmsg"
	"github.com/llehouerou/atlas/internal/ui/textinput"
)

// handleFilterResult applies the pattern typed at the filter prompt. An
// empty pattern clears the filter; a pattern matching nothing is rejected.
func (m Model) handleFilterResult(msg textinput.ResultMsg) (tea.Model, tea.Cmd) {
	if msg.Canceled {
		return m, nil
	}
	pattern := strings.TrimSpace(msg.Text)

	shown := m.Directory
	if pattern != "" {
		filtered, err := m.Directory.Filter(pattern)
		if err != nil {
			m.Logger.Warn().Err(err).Str("pattern", pattern).Msg("filter rejected")
			m.StatusMsg = errmsg.FormatWith(errmsg.OpFilterDirectory, pattern, err)
			m.StatusIsError = true
			return m, nil
		}
		if filtered.Len() == 0 {
			m.StatusMsg = "No countries match " + pattern
			m.StatusIsError = false
			return m, nil
		}
		shown = filtered
	}

	sections, mapper, err := build(m.Config, shown)
	if err != nil {
		m.StatusMsg = errmsg.Format(errmsg.OpFilterDirectory, err)
		m.StatusIsError = true
		return m, nil
	}

	m.Shown = shown
	m.FilterText = pattern
	m.setSections(sections, mapper)

	m.Logger.Debug().
		Str("pattern", pattern).
		Int("countries", shown.Len()).
		Msg("filter applied")
	return m, nil
}
