// Package countrylist renders the sectioned country list: one header row per
// section followed by its countries.
package countrylist

import (
	"errors"
	"fmt"

	"github.com/llehouerou/atlas/internal/directory"
	"github.com/llehouerou/atlas/internal/keymap"
	"github.com/llehouerou/atlas/internal/section"
	"github.com/llehouerou/atlas/internal/ui"
	"github.com/llehouerou/atlas/internal/ui/cursor"
)

var (
	// ErrNotLaidOut is returned when a jump is requested before the list
	// has been given a size.
	ErrNotLaidOut = errors.New("list is not laid out yet")
	// ErrSectionRange is returned for a jump to a section that does not exist.
	ErrSectionRange = errors.New("section index out of range")
)

// wheelStep is the number of rows a mouse wheel notch moves the cursor.
const wheelStep = 3

// Model is the scrollable, sectioned country list.
type Model struct {
	ui.Base
	sections []section.Section[directory.Country]
	index    section.Index
	cursor   cursor.Cursor
}

// New creates an empty list with the given scroll margin.
func New(margin int) Model {
	return Model{cursor: cursor.New(margin)}
}

// SetSections replaces the content and moves the cursor to the first entry.
func (m *Model) SetSections(sections []section.Section[directory.Country]) {
	m.sections = sections
	m.index = section.NewIndex(sections)
	m.cursor.Reset()
	m.cursor.Resize(m.index.Rows(), m.listHeight())
	m.settle(1)
}

// SetMargin updates the scroll margin.
func (m *Model) SetMargin(margin int) {
	m.cursor.SetMargin(margin)
	m.cursor.Resize(m.index.Rows(), m.listHeight())
}

// SetSize sets the panel size, borders included.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.Resize(m.index.Rows(), m.listHeight())
}

// Sections returns the sections currently shown.
func (m Model) Sections() []section.Section[directory.Country] {
	return m.sections
}

// Index returns the row layout of the current sections.
func (m Model) Index() section.Index {
	return m.index
}

// Cursor returns the selected row and the first visible row.
func (m Model) Cursor() (pos, offset int) {
	return m.cursor.Pos(), m.cursor.Offset()
}

// CurrentSection returns the section containing the cursor, or -1 when the
// list is empty.
func (m Model) CurrentSection() int {
	return m.index.SectionAt(m.cursor.Pos())
}

// Selected returns the country under the cursor.
func (m Model) Selected() (directory.Country, bool) {
	s, entry := m.index.Locate(m.cursor.Pos())
	if s < 0 || entry < 0 || entry >= len(m.sections[s].Data) {
		return directory.Country{}, false
	}
	return m.sections[s].Data[entry], true
}

// JumpToSection scrolls section i's header to the top of the viewport and
// selects its first entry.
func (m *Model) JumpToSection(i int) error {
	if !m.IsSized() || m.listHeight() == 0 {
		return ErrNotLaidOut
	}
	row := m.index.StartRow(i)
	if row < 0 {
		return fmt.Errorf("%w: %d of %d", ErrSectionRange, i, m.index.Len())
	}
	rows, height := m.index.Rows(), m.listHeight()
	m.cursor.Jump(row+1, rows, height)
	m.cursor.PinTop(row, rows, height)
	return nil
}

// HandleAction applies a list navigation action and reports whether it was
// one the list handles.
func (m *Model) HandleAction(action keymap.Action) bool {
	rows, height := m.index.Rows(), m.listHeight()
	half := max(height/2, 1)

	switch action { //nolint:exhaustive // only list actions
	case keymap.ActionMoveDown:
		m.move(1)
	case keymap.ActionMoveUp:
		m.move(-1)
	case keymap.ActionPageDown:
		m.move(half)
	case keymap.ActionPageUp:
		m.move(-half)
	case keymap.ActionJumpStart:
		m.cursor.Jump(0, rows, height)
		m.settle(1)
	case keymap.ActionJumpEnd:
		m.cursor.Jump(rows-1, rows, height)
		m.settle(-1)
	default:
		return false
	}
	return true
}

// NextSection returns the section after the cursor's, or -1 on the last one.
func (m Model) NextSection() int {
	s := m.CurrentSection()
	if s < 0 || s+1 >= m.index.Len() {
		return -1
	}
	return s + 1
}

// PrevSection returns the start of the cursor's section, or the section
// before it when the cursor already sits on the first entry. It returns -1
// for an empty list.
func (m Model) PrevSection() int {
	s, entry := m.index.Locate(m.cursor.Pos())
	if s < 0 {
		return -1
	}
	if entry <= 0 && s > 0 {
		s--
	}
	return s
}

// Scroll moves the cursor by one wheel notch.
func (m *Model) Scroll(down bool) {
	if down {
		m.move(wheelStep)
	} else {
		m.move(-wheelStep)
	}
}

// Click selects the row at y, relative to the top of the panel.
// Clicking a header selects its first entry.
func (m *Model) Click(y int) bool {
	line := y - ui.BorderHeight/2
	if line < 0 || line >= m.listHeight() {
		return false
	}
	row := m.cursor.Offset() + line
	if row >= m.index.Rows() {
		return false
	}
	m.cursor.Jump(row, m.index.Rows(), m.listHeight())
	m.settle(1)
	return true
}

func (m *Model) move(delta int) {
	m.cursor.Move(delta, m.index.Rows(), m.listHeight())
	dir := 1
	if delta < 0 {
		dir = -1
	}
	m.settle(dir)
}

// settle moves the cursor off a header row, preferring dir. Every section
// has at least one entry, so the row after a header is always an entry.
func (m *Model) settle(dir int) {
	pos := m.cursor.Pos()
	if !m.index.IsHeader(pos) {
		return
	}
	if dir < 0 && pos > 0 {
		pos--
	} else {
		pos++
	}
	m.cursor.Jump(pos, m.index.Rows(), m.listHeight())
}

func (m Model) listHeight() int {
	return m.InnerHeight(ui.BorderHeight)
}
