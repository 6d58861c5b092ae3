package ui

// Base provides common UI component functionality for focus and size management.
// Embed this in component models to get standard methods automatically.
//
// Example:
//
//	type Model struct {
//	    ui.Base
//	    cursor cursor.Cursor
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component is focused.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// IsSized reports whether the component has received a usable size.
func (b Base) IsSized() bool {
	return b.width > 0 && b.height > 0
}

// InnerHeight returns available height for content after subtracting overhead.
func (b Base) InnerHeight(overhead int) int {
	return max(b.height-overhead, 0)
}

// InnerWidth returns available width for content after subtracting overhead.
func (b Base) InnerWidth(overhead int) int {
	return max(b.width-overhead, 0)
}
