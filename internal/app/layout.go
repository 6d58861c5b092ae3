package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/atlas/internal/ui/headerbar"
	"github.com/llehouerou/atlas/internal/ui/indexbar"
	"github.com/llehouerou/atlas/internal/ui/layout"
)

// layout sizes the list and the bar from the window size and the footer.
func (m *Model) layout() {
	m.Help.Width = m.Width
	m.ListRect, m.BarRect = layout.Body(m.Width, m.Height, indexbar.Width(m.Mapper.Config()), layout.ContentOpts{
		HeaderHeight: headerbar.Height,
		FooterHeight: lipgloss.Height(m.footerView()),
	})
	m.List.SetSize(m.ListRect.Width, m.ListRect.Height)
	m.Bar.SetSize(m.BarRect.Width, m.BarRect.Height)
}
