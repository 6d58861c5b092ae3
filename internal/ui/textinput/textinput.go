// Package textinput provides a single-line text prompt shown in the footer.
package textinput

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/atlas/internal/ui/render"
	"github.com/llehouerou/atlas/internal/ui/styles"
)

const cursor = "█"

func promptStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.T().Primary)
}

func hintStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

// ResultMsg is sent when the prompt is confirmed or cancelled.
type ResultMsg struct {
	Text     string
	Canceled bool // True if user pressed Escape
}

// Model is a single-line text prompt.
type Model struct {
	prompt string
	text   []rune
	active bool
}

// New creates an inactive prompt.
func New() Model {
	return Model{}
}

// Start activates the prompt with optional initial text.
func (m *Model) Start(prompt, initialText string) {
	m.prompt = prompt
	m.text = []rune(initialText)
	m.active = true
}

// Reset clears the prompt state.
func (m *Model) Reset() {
	m.prompt = ""
	m.text = nil
	m.active = false
}

// Active reports whether the prompt is taking input.
func (m Model) Active() bool {
	return m.active
}

// Text returns the current input.
func (m Model) Text() string {
	return string(m.text)
}

// Update handles a key while the prompt is active. Confirming or cancelling
// deactivates the prompt and returns a command producing ResultMsg.
func (m *Model) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.Type { //nolint:exhaustive // other keys are ignored
	case tea.KeyEsc:
		m.active = false
		return func() tea.Msg { return ResultMsg{Canceled: true} }

	case tea.KeyEnter:
		text := string(m.text)
		m.active = false
		return func() tea.Msg { return ResultMsg{Text: text} }

	case tea.KeyBackspace:
		if len(m.text) > 0 {
			m.text = m.text[:len(m.text)-1]
		}

	case tea.KeyCtrlU:
		m.text = nil

	case tea.KeySpace:
		m.text = append(m.text, ' ')

	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if unicode.IsPrint(r) {
				m.text = append(m.text, r)
			}
		}
	}
	return nil
}

// View renders the prompt on one line of the given width.
func (m Model) View(width int) string {
	if !m.active || width <= 0 {
		return ""
	}
	line := promptStyle().Render(m.prompt) + " " +
		styles.T().S().Base.Render(render.Sanitize(string(m.text))) + cursor +
		"  " + hintStyle().Render("enter: apply, esc: cancel")
	return render.FitStyled(line, width)
}
