package scrub

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMapper(t *testing.T, rowHeight float64, count int) *Mapper {
	t.Helper()
	cfg := DefaultConfig()
	cfg.RowHeight = rowHeight
	m, err := New(cfg, count)
	require.NoError(t, err)
	return m
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero row height", func(c *Config) { c.RowHeight = 0 }, ErrInvalidRowHeight},
		{"negative row height", func(c *Config) { c.RowHeight = -4 }, ErrInvalidRowHeight},
		{"NaN row height", func(c *Config) { c.RowHeight = math.NaN() }, ErrInvalidRowHeight},
		{"infinite row height", func(c *Config) { c.RowHeight = math.Inf(1) }, ErrInvalidRowHeight},
		{"zero window", func(c *Config) { c.Window = 0 }, ErrInvalidWindow},
		{"negative shift", func(c *Config) { c.MaxShift = -1 }, ErrInvalidShift},
		{"scale below one", func(c *Config) { c.MaxScale = 0.5 }, ErrInvalidScale},
		{"unknown curve", func(c *Config) { c.Curve = "bounce" }, ErrUnknownCurve},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			m, err := New(cfg, 10)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, m)
		})
	}
}

func TestIndex_ExactRows(t *testing.T) {
	m := newMapper(t, 24, 26)
	for i := range 26 {
		assert.Equal(t, i, m.Index(float64(i)*24), "row %d", i)
	}
}

func TestIndex_Rounding(t *testing.T) {
	m := newMapper(t, 24, 26)

	assert.Equal(t, 2, m.Index(50))
	assert.Equal(t, 0, m.Index(11.9))
	assert.Equal(t, 1, m.Index(12))
	assert.Equal(t, 1, m.Index(35.9))
}

func TestIndex_Clamp(t *testing.T) {
	m := newMapper(t, 24, 5)

	assert.Equal(t, 0, m.Index(-1))
	assert.Equal(t, 0, m.Index(-1000))
	assert.Equal(t, 4, m.Index(4*24+1))
	assert.Equal(t, 4, m.Index(1e9))
	assert.Equal(t, 0, m.Index(math.NaN()))
}

func TestIndex_ClampsSmallSectionCount(t *testing.T) {
	// round(50/24) = 2 but only two sections exist.
	m := newMapper(t, 24, 2)
	assert.Equal(t, 1, m.Index(50))
}

func TestIndex_NoSections(t *testing.T) {
	m := newMapper(t, 24, 0)

	for _, off := range []float64{-10, 0, 50, 1e6} {
		assert.Equal(t, 0, m.Index(off))
	}
	assert.Empty(t, m.Emphasis(10))
	assert.Zero(t, m.Weight(10, 0))
	assert.Zero(t, m.MaxOffset())
	assert.Zero(t, m.OffsetOf(3))
}

func TestWeight_PeakAndFalloff(t *testing.T) {
	for _, curve := range Curves {
		t.Run(string(curve), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Curve = curve
			cfg.Window = 3
			m, err := New(cfg, 26)
			require.NoError(t, err)

			assert.InDelta(t, 1.0, m.Weight(5, 5), 1e-9)
			assert.Zero(t, m.Weight(5, 8))
			assert.Zero(t, m.Weight(5, 2))
			assert.Zero(t, m.Weight(5, 20))

			prev := 1.0
			for d := 1; d < 3; d++ {
				w := m.Weight(5, 5+d)
				assert.Greater(t, w, 0.0)
				assert.Less(t, w, prev)
				assert.InDelta(t, w, m.Weight(5, 5-d), 1e-9)
				prev = w
			}
		})
	}
}

func TestWeight_SineIsHalfAtMidWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window = 2
	m, err := New(cfg, 10)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, m.Weight(4, 5), 1e-9)
}

func TestEmphasis_OnlyWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window = 2
	m, err := New(cfg, 1000)
	require.NoError(t, err)

	got := m.Emphasis(500)
	require.Len(t, got, 3)
	assert.Equal(t, 499, got[0].Index)
	assert.Equal(t, 500, got[1].Index)
	assert.Equal(t, 501, got[2].Index)
	assert.InDelta(t, 1.0, got[1].Value, 1e-9)

	for _, w := range got {
		assert.InDelta(t, m.Weight(500, w.Index), w.Value, 1e-9)
	}
}

func TestEmphasis_BetweenRows(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window = 2
	cfg.Curve = CurveLinear
	m, err := New(cfg, 10)
	require.NoError(t, err)

	got := m.Emphasis(4.5)
	require.Len(t, got, 4)
	assert.Equal(t, 3, got[0].Index)
	assert.Equal(t, 6, got[3].Index)
	assert.InDelta(t, 0.75, got[1].Value, 1e-9)
	assert.InDelta(t, 0.75, got[2].Value, 1e-9)
}

func TestEmphasis_ClampsAtEdges(t *testing.T) {
	m := newMapper(t, 1, 5)

	low := m.Emphasis(-10)
	require.NotEmpty(t, low)
	assert.Equal(t, 0, low[0].Index)
	assert.InDelta(t, 1.0, low[0].Value, 1e-9)

	high := m.Emphasis(99)
	require.NotEmpty(t, high)
	last := high[len(high)-1]
	assert.Equal(t, 4, last.Index)
	assert.InDelta(t, 1.0, last.Value, 1e-9)
}

func TestTransform(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxShift = 4
	cfg.MaxScale = 3
	m, err := New(cfg, 3)
	require.NoError(t, err)

	assert.Equal(t, Transform{Shift: 0, Scale: 1}, m.Transform(0))
	assert.Equal(t, Transform{Shift: 4, Scale: 3}, m.Transform(1))
	assert.Equal(t, Transform{Shift: 2, Scale: 2}, m.Transform(0.5))
	assert.Equal(t, Transform{Shift: 4, Scale: 3}, m.Transform(7))
	assert.Equal(t, Transform{Shift: 0, Scale: 1}, m.Transform(-1))
}

func TestParseCurve(t *testing.T) {
	c, err := ParseCurve("")
	require.NoError(t, err)
	assert.Equal(t, CurveSine, c)

	c, err = ParseCurve(" Linear ")
	require.NoError(t, err)
	assert.Equal(t, CurveLinear, c)

	_, err = ParseCurve("elastic")
	require.ErrorIs(t, err, ErrUnknownCurve)
}

func TestNew_NormalizesCurve(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Curve = "QUADRATIC"
	m, err := New(cfg, 3)
	require.NoError(t, err)
	assert.Equal(t, CurveQuadratic, m.Config().Curve)
}

func TestClampAndOffsetOf(t *testing.T) {
	m := newMapper(t, 2, 4)

	assert.InDelta(t, 6.0, m.MaxOffset(), 1e-9)
	assert.InDelta(t, 0.0, m.Clamp(-3), 1e-9)
	assert.InDelta(t, 6.0, m.Clamp(9), 1e-9)
	assert.InDelta(t, 3.5, m.Clamp(3.5), 1e-9)
	assert.InDelta(t, 4.0, m.OffsetOf(2), 1e-9)
	assert.InDelta(t, 6.0, m.OffsetOf(9), 1e-9)
	assert.InDelta(t, 0.0, m.OffsetOf(-1), 1e-9)
}
