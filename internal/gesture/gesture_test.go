package gesture

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/atlas/internal/scrub"
)

func newTracker(t *testing.T, rowHeight float64, count int) Tracker {
	t.Helper()
	cfg := scrub.DefaultConfig()
	cfg.RowHeight = rowHeight
	m, err := scrub.New(cfg, count)
	require.NoError(t, err)
	return New(m)
}

func TestTracker_InitialState(t *testing.T) {
	tr := newTracker(t, 24, 26)

	assert.Equal(t, Undetermined, tr.State())
	assert.False(t, tr.IsActive())
	assert.Zero(t, tr.Offset())
	assert.Nil(t, tr.Emphasis())
}

func TestTracker_DragLifecycle(t *testing.T) {
	tr := newTracker(t, 24, 26)

	require.True(t, tr.Begin())
	assert.Equal(t, Active, tr.State())

	off, ok := tr.Update(30)
	require.True(t, ok)
	assert.InDelta(t, 30.0, off, 1e-9)
	assert.NotEmpty(t, tr.Emphasis())

	off, ok = tr.Update(50)
	require.True(t, ok)
	assert.InDelta(t, 50.0, off, 1e-9)
	assert.Equal(t, 2, tr.Section())

	jump, ok := tr.End()
	require.True(t, ok)
	assert.Equal(t, 2, jump.Section)
	assert.InDelta(t, 50.0, jump.Offset, 1e-9)
	assert.Equal(t, Ended, tr.State())
	assert.InDelta(t, 50.0, tr.Base(), 1e-9)
	assert.Nil(t, tr.Emphasis())
}

func TestTracker_BaseAccumulatesAcrossDrags(t *testing.T) {
	tr := newTracker(t, 10, 26)

	tr.Begin()
	tr.Update(40)
	tr.End()

	tr.Begin()
	off, _ := tr.Update(-15)
	assert.InDelta(t, 25.0, off, 1e-9)

	jump, ok := tr.End()
	require.True(t, ok)
	assert.Equal(t, 3, jump.Section) // round(2.5) = 3
	assert.InDelta(t, 25.0, tr.Base(), 1e-9)
}

func TestTracker_EndClampsBase(t *testing.T) {
	tr := newTracker(t, 10, 5)

	tr.Begin()
	tr.Update(1000)
	jump, _ := tr.End()
	assert.Equal(t, 4, jump.Section)
	assert.InDelta(t, 40.0, tr.Base(), 1e-9)

	tr.Begin()
	tr.Update(-1000)
	jump, _ = tr.End()
	assert.Equal(t, 0, jump.Section)
	assert.Zero(t, tr.Base())
}

func TestTracker_CancelKeepsLastBase(t *testing.T) {
	tr := newTracker(t, 10, 26)

	tr.Begin()
	tr.Update(30)
	tr.End()

	tr.Begin()
	tr.Update(100)
	assert.InDelta(t, 130.0, tr.Offset(), 1e-9)

	require.True(t, tr.Cancel())
	assert.Equal(t, Cancelled, tr.State())
	assert.InDelta(t, 30.0, tr.Base(), 1e-9)
	assert.InDelta(t, 30.0, tr.Offset(), 1e-9)

	_, ok := tr.End()
	assert.False(t, ok, "no jump after cancel")
}

func TestTracker_UpdatesOutsideActiveIgnored(t *testing.T) {
	tr := newTracker(t, 10, 26)

	_, ok := tr.Update(50)
	assert.False(t, ok)
	assert.Zero(t, tr.Offset())

	_, ok = tr.End()
	assert.False(t, ok)
	assert.False(t, tr.Cancel())
}

func TestTracker_RejectsNonFiniteTranslation(t *testing.T) {
	tr := newTracker(t, 10, 26)
	tr.Begin()
	tr.Update(20)

	off, ok := tr.Update(math.NaN())
	assert.False(t, ok)
	assert.InDelta(t, 20.0, off, 1e-9)

	_, ok = tr.Update(math.Inf(-1))
	assert.False(t, ok)
	assert.InDelta(t, 20.0, tr.Offset(), 1e-9)
}

func TestTracker_BeginTwice(t *testing.T) {
	tr := newTracker(t, 10, 26)
	require.True(t, tr.Begin())
	tr.Update(10)
	assert.False(t, tr.Begin())
	assert.InDelta(t, 10.0, tr.Offset(), 1e-9)
}

func TestTracker_SetBase(t *testing.T) {
	tr := newTracker(t, 10, 5)

	tr.SetBase(25)
	assert.InDelta(t, 25.0, tr.Base(), 1e-9)

	tr.SetBase(500)
	assert.InDelta(t, 40.0, tr.Base(), 1e-9)

	tr.Begin()
	tr.SetBase(0)
	assert.InDelta(t, 40.0, tr.Base(), 1e-9, "ignored while dragging")
}

func TestTracker_SetMapperKeepsSection(t *testing.T) {
	tr := newTracker(t, 10, 26)
	tr.SetBase(70)

	cfg := scrub.DefaultConfig()
	cfg.RowHeight = 2
	m, err := scrub.New(cfg, 26)
	require.NoError(t, err)

	tr.Begin()
	tr.SetMapper(m)
	assert.Equal(t, Cancelled, tr.State())
	assert.Equal(t, 7, tr.Section())
	assert.InDelta(t, 14.0, tr.Base(), 1e-9)
}

func TestTracker_NoSections(t *testing.T) {
	tr := newTracker(t, 10, 0)
	tr.Begin()
	tr.Update(55)
	jump, ok := tr.End()
	require.True(t, ok)
	assert.Equal(t, 0, jump.Section)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "undetermined", Undetermined.String())
	assert.Equal(t, "active", Active.String())
	assert.Equal(t, "ended", Ended.String())
	assert.Equal(t, "cancelled", Cancelled.String())
	assert.Equal(t, "unknown", State(42).String())
}
