// Package cursor tracks the selected row and scroll offset of a list.
package cursor

// Cursor manages cursor position and scroll offset for a scrollable list.
// The list length and viewport height are passed to methods rather than stored,
// since they can change dynamically.
type Cursor struct {
	pos    int // selected row
	offset int // first visible row
	margin int // rows kept visible above/below the cursor
}

// New creates a new Cursor with the specified scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: max(margin, 0)}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Margin returns the scroll margin.
func (c Cursor) Margin() int {
	return c.margin
}

// SetMargin updates the scroll margin.
func (c *Cursor) SetMargin(margin int) {
	c.margin = max(margin, 0)
}

// Move moves the cursor by delta rows and scrolls to keep it visible.
// If listLen is 0, this is a no-op.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.follow(listLen, height)
}

// Jump sets the cursor to an absolute row and scrolls to keep it visible.
// If listLen is 0, this is a no-op.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.follow(listLen, height)
}

// PinTop scrolls so row is the first visible row, as far as the list
// length allows, then keeps the cursor inside the viewport.
func (c *Cursor) PinTop(row, listLen, height int) {
	if listLen == 0 || height <= 0 {
		return
	}
	c.offset = clamp(row, max(listLen-height, 0))
	if c.pos < c.offset {
		c.pos = c.offset
	}
	if c.pos >= c.offset+height {
		c.pos = c.offset + height - 1
	}
}

// Resize re-applies scrolling after the viewport or list length changed.
func (c *Cursor) Resize(listLen, height int) {
	if listLen == 0 {
		c.pos, c.offset = 0, 0
		return
	}
	c.pos = clamp(c.pos, listLen-1)
	c.follow(listLen, height)
}

func (c *Cursor) follow(listLen, height int) {
	if height <= 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// VisibleRange returns the range of visible rows [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// Reset moves the cursor and offset back to the first row.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
