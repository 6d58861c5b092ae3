package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/atlas/internal/config"
	"github.com/llehouerou/atlas/internal/errmsg"
)

// handleReload applies a reloaded configuration. Invalid configurations are
// reported and the running one is kept.
func (m Model) handleReload(msg config.ReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m.rejectReload(msg.Err)
	}
	sections, mapper, err := build(msg.Config, m.Shown)
	if err != nil {
		return m.rejectReload(err)
	}

	m.Config = msg.Config
	m.List.SetMargin(msg.Config.List.ScrollMargin)
	m.setSections(sections, mapper)

	m.Logger.Info().
		Strs("paths", msg.Config.Paths).
		Int("sections", len(sections)).
		Msg("config reloaded")
	return m, nil
}

func (m Model) rejectReload(err error) (tea.Model, tea.Cmd) {
	m.Logger.Warn().Err(err).Msg("config reload rejected")
	m.StatusMsg = errmsg.Format(errmsg.OpReloadConfig, err)
	m.StatusIsError = true
	return m, nil
}
