package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// keyDragTimeout is how long a keyboard scrub stays active after the last
// J/K press before it commits.
const keyDragTimeout = 600 * time.Millisecond

// KeyDragTimeoutMsg ends a keyboard scrub. The Version field is used to
// ignore stale timeouts when keys are pressed in quick succession.
type KeyDragTimeoutMsg struct {
	Version int
}

func keyDragTimeoutCmd(version int) tea.Cmd {
	return tea.Tick(keyDragTimeout, func(time.Time) tea.Msg {
		return KeyDragTimeoutMsg{Version: version}
	})
}
