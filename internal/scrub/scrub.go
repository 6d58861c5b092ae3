// Package scrub maps a continuous index-bar drag offset to discrete sections.
//
// A Mapper answers two questions for an offset: which section the handle
// rests on (Index, used once when a drag ends) and how strongly each nearby
// label should be emphasised while the drag is live (Emphasis). Both are
// pure functions of the offset and the configuration.
package scrub

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidRowHeight = errors.New("row height must be a positive number")
	ErrInvalidWindow    = errors.New("emphasis window must be at least 1 row")
	ErrInvalidShift     = errors.New("max shift must not be negative")
	ErrInvalidScale     = errors.New("max scale must be at least 1")
	ErrUnknownCurve     = errors.New("unknown emphasis curve")
)

// Config holds the tuning parameters of a Mapper.
type Config struct {
	RowHeight float64 // distance between two section labels
	Window    int     // rows on each side that receive emphasis
	Curve     Curve
	MaxShift  float64 // label displacement at full emphasis
	MaxScale  float64 // label scale at full emphasis
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		RowHeight: 1,
		Window:    3,
		Curve:     CurveSine,
		MaxShift:  3,
		MaxScale:  2,
	}
}

// Validate reports the first invalid parameter.
func (c Config) Validate() error {
	if math.IsNaN(c.RowHeight) || math.IsInf(c.RowHeight, 0) || c.RowHeight <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRowHeight, c.RowHeight)
	}
	if c.Window < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWindow, c.Window)
	}
	if c.MaxShift < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidShift, c.MaxShift)
	}
	if c.MaxScale < 1 {
		return fmt.Errorf("%w: %v", ErrInvalidScale, c.MaxScale)
	}
	if _, err := ParseCurve(string(c.Curve)); err != nil {
		return err
	}
	return nil
}

// Weight is the emphasis of one section.
type Weight struct {
	Index int
	Value float64 // 0..1
}

// Transform is the visual effect applied to a label.
type Transform struct {
	Shift float64 // displacement towards the content, in cells
	Scale float64 // 1 means no scaling
}

// Mapper converts offsets for a fixed number of sections.
type Mapper struct {
	cfg   Config
	count int
}

// New validates cfg and returns a mapper over count sections.
func New(cfg Config, count int) (*Mapper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Curve, _ = ParseCurve(string(cfg.Curve))
	return &Mapper{cfg: cfg, count: max(count, 0)}, nil
}

// Config returns the mapper configuration.
func (m *Mapper) Config() Config {
	return m.cfg
}

// Count returns the number of sections.
func (m *Mapper) Count() int {
	return m.count
}

// MaxOffset returns the offset of the last section's row.
func (m *Mapper) MaxOffset() float64 {
	if m.count == 0 {
		return 0
	}
	return float64(m.count-1) * m.cfg.RowHeight
}

// Clamp limits offset to [0, MaxOffset]. NaN clamps to 0.
func (m *Mapper) Clamp(offset float64) float64 {
	if math.IsNaN(offset) || offset < 0 {
		return 0
	}
	return math.Min(offset, m.MaxOffset())
}

// OffsetOf returns the offset of section i's row, clamped to valid sections.
func (m *Mapper) OffsetOf(i int) float64 {
	if m.count == 0 {
		return 0
	}
	i = min(max(i, 0), m.count-1)
	return float64(i) * m.cfg.RowHeight
}

// Index returns the section nearest offset, clamped to [0, Count-1].
// With no sections it returns 0.
func (m *Mapper) Index(offset float64) int {
	if m.count == 0 {
		return 0
	}
	return int(math.Round(m.Clamp(offset) / m.cfg.RowHeight))
}

// Weight returns the emphasis of section i for offset.
func (m *Mapper) Weight(offset float64, i int) float64 {
	if i < 0 || i >= m.count {
		return 0
	}
	d := math.Abs(m.position(offset) - float64(i))
	return m.cfg.Curve.falloff(d / float64(m.cfg.Window))
}

// Emphasis returns the non-zero weights around offset in ascending section
// order. Only sections inside the window are visited.
func (m *Mapper) Emphasis(offset float64) []Weight {
	if m.count == 0 {
		return nil
	}
	pos := m.position(offset)
	w := float64(m.cfg.Window)
	lo := max(int(math.Ceil(pos-w)), 0)
	hi := min(int(math.Floor(pos+w)), m.count-1)

	out := make([]Weight, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		v := m.cfg.Curve.falloff(math.Abs(pos-float64(i)) / w)
		if v > 0 {
			out = append(out, Weight{Index: i, Value: v})
		}
	}
	return out
}

// Transform converts an emphasis weight into a label transform.
func (m *Mapper) Transform(weight float64) Transform {
	weight = math.Min(math.Max(weight, 0), 1)
	return Transform{
		Shift: weight * m.cfg.MaxShift,
		Scale: 1 + weight*(m.cfg.MaxScale-1),
	}
}

// position returns the clamped offset in row units.
func (m *Mapper) position(offset float64) float64 {
	return m.Clamp(offset) / m.cfg.RowHeight
}
