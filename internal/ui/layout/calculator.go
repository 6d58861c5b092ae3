// Package layout provides pure functions for UI dimension calculations.
package layout

// NarrowThreshold is the list width below which rows drop the region column.
const NarrowThreshold = 48

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight int
	FooterHeight int // status line or help, which can span several rows
}

// Rect is a screen region in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell at x, y lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// ContentHeight calculates the available height for the list and the index
// bar: the terminal height minus header and footer.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	return max(windowHeight-opts.HeaderHeight-opts.FooterHeight, 0)
}

// IsNarrowMode returns true if the list is too narrow for the region column.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// BarWidth returns the index bar width, never wider than the window.
func BarWidth(windowWidth, preferred int) int {
	return max(min(preferred, windowWidth), 0)
}

// Body splits the content area into the list on the left and the index bar
// on the right.
func Body(windowWidth, windowHeight, barPreferred int, opts ContentOpts) (list, bar Rect) {
	height := ContentHeight(windowHeight, opts)
	barWidth := BarWidth(windowWidth, barPreferred)
	listWidth := max(windowWidth-barWidth, 0)

	list = Rect{X: 0, Y: opts.HeaderHeight, Width: listWidth, Height: height}
	bar = Rect{X: listWidth, Y: opts.HeaderHeight, Width: barWidth, Height: height}
	return list, bar
}

// Center returns the origin that centers a w×h box inside r.
func Center(r Rect, w, h int) (x, y int) {
	return r.X + max(r.Width-w, 0)/2, r.Y + max(r.Height-h, 0)/2
}
