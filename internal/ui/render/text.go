// Package render provides text rendering utilities for TUI components.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters (tab excepted) so raw data cannot
// break the terminal layout.
func Sanitize(s string) string {
	if strings.IndexFunc(s, isUnsafe) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isUnsafe(r) {
			return -1
		}
		return r
	}, s)
}

func isUnsafe(r rune) bool {
	return r != '\t' && (unicode.IsControl(r) || r == unicode.ReplacementChar)
}

// Truncate shortens plain text to maxWidth cells, ending with "…" when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// TruncateStyled shortens already-styled text without breaking escape codes.
func TruncateStyled(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "")
}

// Pad fills a string with spaces to reach the specified width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Row creates a row with left and right aligned content separated by spaces.
// The right part is dropped when both do not fit.
func Row(left, right string, width int) string {
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	if leftWidth+rightWidth+1 > width {
		return FitStyled(left, width)
	}
	return left + strings.Repeat(" ", width-leftWidth-rightWidth) + right
}

// FitStyled cuts or pads styled text to exactly width cells.
func FitStyled(s string, width int) string {
	s = TruncateStyled(s, width)
	if gap := width - lipgloss.Width(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

// Blank returns width spaces.
func Blank(width int) string {
	return strings.Repeat(" ", max(width, 0))
}
