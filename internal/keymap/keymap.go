// Package keymap defines key bindings and action dispatch for the application.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "list" or "index"
}

// Contexts in help display order.
var Contexts = []string{"global", "list", "index"}

// Bindings contains all key bindings.
var Bindings = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	{ActionMoveDown, []string{"j", "down"}, "Move down", "list"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "list"},
	{ActionJumpStart, []string{"g", "home"}, "First entry", "list"},
	{ActionJumpEnd, []string{"G", "end"}, "Last entry", "list"},
	{ActionPageDown, []string{"ctrl+d", "pgdown"}, "Half page down", "list"},
	{ActionPageUp, []string{"ctrl+u", "pgup"}, "Half page up", "list"},
	{ActionNextSection, []string{"n", "]"}, "Next section", "list"},
	{ActionPrevSection, []string{"p", "["}, "Previous section", "list"},
	{ActionFilter, []string{"/"}, "Filter countries", "list"},

	{ActionScrubDown, []string{"J", "shift+down"}, "Scrub down", "index"},
	{ActionScrubUp, []string{"K", "shift+up"}, "Scrub up", "index"},
	{ActionJumpPrefix, []string{"'"}, "Jump to letter", "index"},
	{ActionCancelDrag, []string{"esc"}, "Cancel drag", "index"},
}

// ByContext returns the bindings of one context.
func ByContext(bindings []Binding, context string) []Binding {
	var result []Binding
	for _, kb := range bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Key converts a binding into a bubbles key binding for help rendering.
func (b Binding) Key() key.Binding {
	label := ""
	if len(b.Keys) > 0 {
		label = b.Keys[0]
	}
	return key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(label, b.Description))
}

// Help adapts the binding table to bubbles/help.
type Help struct {
	bindings []Binding
}

// NewHelp returns a help key map over bindings.
func NewHelp(bindings []Binding) Help {
	return Help{bindings: bindings}
}

// ShortHelp returns the bindings shown in the footer.
func (h Help) ShortHelp() []key.Binding {
	short := []Action{ActionMoveDown, ActionMoveUp, ActionScrubDown, ActionScrubUp, ActionJumpPrefix, ActionFilter, ActionHelp, ActionQuit}
	var out []key.Binding
	for _, a := range short {
		for _, b := range h.bindings {
			if b.Action == a {
				out = append(out, b.Key())
				break
			}
		}
	}
	return out
}

// FullHelp returns all bindings, one column per context.
func (h Help) FullHelp() [][]key.Binding {
	var cols [][]key.Binding
	for _, ctx := range Contexts {
		var col []key.Binding
		for _, b := range ByContext(h.bindings, ctx) {
			col = append(col, b.Key())
		}
		if len(col) > 0 {
			cols = append(cols, col)
		}
	}
	return cols
}
