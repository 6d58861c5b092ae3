package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// List navigation
	ActionMoveUp      Action = "move_up"
	ActionMoveDown    Action = "move_down"
	ActionJumpStart   Action = "jump_start"
	ActionJumpEnd     Action = "jump_end"
	ActionPageUp      Action = "page_up"
	ActionPageDown    Action = "page_down"
	ActionNextSection Action = "next_section"
	ActionPrevSection Action = "prev_section"
	ActionFilter      Action = "filter"

	// Index bar
	ActionScrubUp    Action = "scrub_up"    // nudge the handle one section up
	ActionScrubDown  Action = "scrub_down"  // nudge the handle one section down
	ActionCancelDrag Action = "cancel_drag" // esc during a drag
	ActionJumpPrefix Action = "jump_prefix" // ' then a letter
)
