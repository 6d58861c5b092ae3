// Package gesture tracks an index-bar drag from start to finish.
//
// A drag accumulates a translation on top of a base offset. Only an active
// drag accepts updates; ending it folds the translation into the base and
// yields a single Jump, cancelling it discards the translation.
package gesture

import (
	"math"

	"github.com/llehouerou/atlas/internal/scrub"
)

// State is the phase of the current drag.
type State int

const (
	Undetermined State = iota
	Active
	Ended
	Cancelled
)

func (s State) String() string {
	switch s {
	case Undetermined:
		return "undetermined"
	case Active:
		return "active"
	case Ended:
		return "ended"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Jump is the command produced when a drag ends.
type Jump struct {
	Section int
	Offset  float64
}

// Tracker owns the accumulated offset of the scrub handle.
type Tracker struct {
	mapper      *scrub.Mapper
	state       State
	base        float64
	translation float64
}

// New returns a tracker resting at offset 0.
func New(mapper *scrub.Mapper) Tracker {
	return Tracker{mapper: mapper}
}

// State returns the current phase.
func (t Tracker) State() State {
	return t.state
}

// IsActive reports whether a drag is in progress.
func (t Tracker) IsActive() bool {
	return t.state == Active
}

// Mapper returns the mapper the tracker clamps against.
func (t Tracker) Mapper() *scrub.Mapper {
	return t.mapper
}

// Begin starts a drag. It returns false if one is already active.
func (t *Tracker) Begin() bool {
	if t.state == Active {
		return false
	}
	t.state = Active
	t.translation = 0
	return true
}

// Update sets the translation of the active drag and returns the live
// offset. Non-finite translations are ignored. Returns false outside an
// active drag.
func (t *Tracker) Update(translation float64) (float64, bool) {
	if t.state != Active {
		return t.Offset(), false
	}
	if math.IsNaN(translation) || math.IsInf(translation, 0) {
		return t.Offset(), false
	}
	t.translation = translation
	return t.Offset(), true
}

// End finishes the active drag, commits the offset and returns the section
// to jump to. Returns false outside an active drag.
func (t *Tracker) End() (Jump, bool) {
	if t.state != Active {
		return Jump{}, false
	}
	t.base = t.mapper.Clamp(t.base + t.translation)
	t.translation = 0
	t.state = Ended
	return Jump{Section: t.mapper.Index(t.base), Offset: t.base}, true
}

// Cancel aborts the active drag, keeping the last committed base.
func (t *Tracker) Cancel() bool {
	if t.state != Active {
		return false
	}
	t.translation = 0
	t.state = Cancelled
	return true
}

// Base returns the last committed offset.
func (t Tracker) Base() float64 {
	return t.base
}

// Offset returns the clamped live offset: base plus any active translation.
func (t Tracker) Offset() float64 {
	if t.mapper == nil {
		return 0
	}
	return t.mapper.Clamp(t.base + t.translation)
}

// Section returns the section under the live offset.
func (t Tracker) Section() int {
	if t.mapper == nil {
		return 0
	}
	return t.mapper.Index(t.Offset())
}

// Emphasis returns per-section weights while a drag is active, nil otherwise.
func (t Tracker) Emphasis() []scrub.Weight {
	if t.state != Active || t.mapper == nil {
		return nil
	}
	return t.mapper.Emphasis(t.Offset())
}

// SetBase moves the resting offset, e.g. when the list scrolls on its own.
// Ignored during an active drag.
func (t *Tracker) SetBase(offset float64) {
	if t.state == Active {
		return
	}
	t.base = t.mapper.Clamp(offset)
}

// SetMapper swaps the mapper, keeping the handle on the same section.
// An active drag is cancelled.
func (t *Tracker) SetMapper(m *scrub.Mapper) {
	section := 0
	if t.mapper != nil {
		section = t.mapper.Index(t.base)
	}
	t.Cancel()
	t.mapper = m
	t.base = m.OffsetOf(section)
}
