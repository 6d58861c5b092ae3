// Package indexbar renders the A–Z section index with its scrub handle and
// maps pointer rows back to scrub offsets.
package indexbar

import (
	"math"
	"strings"

	"github.com/llehouerou/atlas/internal/scrub"
	"github.com/llehouerou/atlas/internal/ui"
	"github.com/llehouerou/atlas/internal/ui/render"
	"github.com/llehouerou/atlas/internal/ui/styles"
)

const (
	pad         = 1 // blank rows above and below the labels
	labelWidth  = 2 // wide enough for a double-width grapheme
	handleWidth = 1

	handleActive = "●"
	handleIdle   = "•"

	// underlineScale is the label scale from which labels are underlined,
	// the closest a terminal cell gets to drawing a bigger glyph.
	underlineScale = 1.5
)

// Scrub is the scrubber state to draw.
type Scrub struct {
	Offset   float64        // live handle offset
	Active   bool           // a drag is in progress
	Emphasis []scrub.Weight // per-section weights, empty at rest
}

// Model is the index bar.
type Model struct {
	ui.Base
	keys   []string
	mapper *scrub.Mapper
}

// New creates an empty index bar.
func New() Model {
	return Model{}
}

// Width returns the number of columns a bar needs for cfg.
func Width(cfg scrub.Config) int {
	return shiftCells(cfg) + labelWidth + handleWidth
}

func shiftCells(cfg scrub.Config) int {
	return int(math.Ceil(math.Max(cfg.MaxShift, 0)))
}

// SetSections sets the labels and the mapper their offsets come from.
// keys must have one entry per mapper section.
func (m *Model) SetSections(keys []string, mapper *scrub.Mapper) {
	m.keys = keys
	m.mapper = mapper
}

// Keys returns the labels.
func (m Model) Keys() []string {
	return m.keys
}

// layout returns the row of offset 0 and the rows-per-offset scale.
// Labels are centred and squeezed to fit between the padding rows.
func (m Model) layout() (top int, scale float64, ok bool) {
	if m.mapper == nil || m.mapper.Count() == 0 || m.Height() <= 0 {
		return 0, 0, false
	}
	avail := max(m.Height()-2*pad, 1)
	span := m.mapper.MaxOffset()

	scale = 1
	if span > float64(avail-1) {
		scale = float64(avail-1) / span
	}
	rows := int(math.Round(span*scale)) + 1
	top = min(pad, m.Height()-1) + max(avail-rows, 0)/2
	return top, scale, true
}

// RowOf returns the bar row an offset is drawn at, or -1 with no sections.
func (m Model) RowOf(offset float64) int {
	top, scale, ok := m.layout()
	if !ok {
		return -1
	}
	return top + int(math.Round(m.mapper.Clamp(offset)*scale))
}

// OffsetAt converts a bar row into an unclamped scrub offset.
func (m Model) OffsetAt(row int) (float64, bool) {
	top, scale, ok := m.layout()
	if !ok {
		return 0, false
	}
	if scale == 0 {
		return 0, true
	}
	return float64(row-top) / scale, true
}

// View renders the bar for the given scrubber state.
func (m Model) View(s Scrub) string {
	if !m.IsSized() {
		return ""
	}
	width := m.Width()
	lines := make([]string, m.Height())

	handleRow := m.RowOf(s.Offset)
	resting := -1
	if !s.Active && m.mapper != nil && m.mapper.Count() > 0 {
		resting = m.mapper.Index(s.Offset)
	}
	labels := m.labelRows(s, resting)

	shiftMax := 0
	if m.mapper != nil {
		shiftMax = shiftCells(m.mapper.Config())
	}

	for row := range lines {
		var b strings.Builder
		if l, ok := labels[row]; ok {
			b.WriteString(m.renderLabel(l, shiftMax, l.index == resting))
		} else {
			b.WriteString(render.Blank(shiftMax + labelWidth))
		}
		b.WriteString(renderHandle(row == handleRow, s.Active))
		lines[row] = render.FitStyled(b.String(), width)
	}
	return strings.Join(lines, "\n")
}

type label struct {
	index  int
	weight float64
}

// labelRows assigns labels to rows. When labels share a row the most
// emphasized one is drawn. Ties go to the resting section, then to the
// first label.
func (m Model) labelRows(s Scrub, resting int) map[int]label {
	out := make(map[int]label, len(m.keys))
	if m.mapper == nil {
		return out
	}
	weights := make(map[int]float64, len(s.Emphasis))
	for _, w := range s.Emphasis {
		weights[w.Index] = w.Value
	}
	for i := range min(len(m.keys), m.mapper.Count()) {
		row := m.RowOf(m.mapper.OffsetOf(i))
		l := label{index: i, weight: weights[i]}
		cur, ok := out[row]
		if !ok || l.weight > cur.weight || (l.weight == cur.weight && i == resting) {
			out[row] = l
		}
	}
	return out
}

func (m Model) renderLabel(l label, shiftMax int, current bool) string {
	t := styles.T()
	tr := m.mapper.Transform(l.weight)
	shift := min(int(math.Round(tr.Shift)), shiftMax)

	style := t.Emphasis(l.weight)
	if current && l.weight == 0 {
		style = t.S().Title
	}
	if tr.Scale >= underlineScale {
		style = style.Underline(true)
	}

	text := style.Render(render.Truncate(m.keys[l.index], labelWidth))
	return render.Blank(shiftMax-shift) + render.FitStyled(text, labelWidth) + render.Blank(shift)
}

func renderHandle(here, active bool) string {
	if !here {
		return " "
	}
	if active {
		return styles.T().S().Handle.Render(handleActive)
	}
	return styles.T().S().Muted.Render(handleIdle)
}
