package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Teal - cursor, dragged label, handle
	Secondary lipgloss.Color // Amber - section headers

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Country names
	FgMuted  lipgloss.Color // Resting index labels, codes
	FgSubtle lipgloss.Color // Regions, help text

	// Backgrounds
	BgCursor lipgloss.Color // Cursor/selection highlight

	// Borders
	Border      lipgloss.Color // Unfocused panel borders
	BorderFocus lipgloss.Color // Focused panel borders

	// Status colors
	Error   lipgloss.Color // Red - failed reloads
	Warning lipgloss.Color // Yellow/orange - ignored jumps

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	Title   lipgloss.Style // Bold, bright
	Header  lipgloss.Style // Section header row
	Cursor  lipgloss.Style // Cursor background highlight
	Handle  lipgloss.Style // Scrub handle glyph
	Bubble  lipgloss.Style // Section letter shown over the list while scrubbing
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#2dd4bf"),
	Secondary: lipgloss.Color("#f1a208"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCursor: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#2dd4bf"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Handle:  lipgloss.NewStyle().Foreground(t.Primary),
		Bubble: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 2),
		Success: lipgloss.NewStyle().Foreground(t.Primary),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// Emphasis returns the style for an index label at emphasis weight w.
// Weight 0 is the resting muted label and 1 is the label under the handle.
func (t *Theme) Emphasis(w float64) lipgloss.Style {
	if w <= 0 {
		return t.S().Muted
	}
	style := lipgloss.NewStyle().Foreground(Ramp(t.FgMuted, t.Primary, w))
	if w > 0.5 {
		style = style.Bold(true)
	}
	return style
}
