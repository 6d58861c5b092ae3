package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/atlas/internal/section"
)

func TestLoad_Embedded(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	assert.Greater(t, d.Len(), 190)
	first := d.Countries()[0]
	assert.Equal(t, Country{Name: "Afghanistan", Code: "AF", Region: "Asia"}, first)

	for _, c := range d.Countries() {
		assert.NotEmpty(t, c.Name)
		assert.Len(t, c.Code, 2, c.Name)
		assert.NotEmpty(t, c.Region, c.Name)
	}
}

func TestLoad_SectionsAreAlphabetical(t *testing.T) {
	d := MustLoad()
	keys := section.Keys(d.Sections(nil))

	require.NotEmpty(t, keys)
	assert.Equal(t, "A", keys[0])
	assert.Equal(t, "Z", keys[len(keys)-1])
	assert.IsIncreasing(t, keys)
	assert.NotContains(t, keys, "Å")
}

func TestDecode(t *testing.T) {
	d, err := decode([]byte(`countries = [
  { name = "Peru", code = "PE", region = "Americas" },
  { name = "Chad", code = "TD", region = "Africa" },
]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Peru", "Chad"}, d.Names())
}

func TestDecode_Invalid(t *testing.T) {
	_, err := decode([]byte(`countries = [ { name = `))
	require.Error(t, err)
}

func TestDecode_Empty(t *testing.T) {
	d, err := decode([]byte(``))
	require.NoError(t, err)
	assert.Zero(t, d.Len())
	assert.Empty(t, d.Sections(nil))
}

func TestCountries_ReturnsCopy(t *testing.T) {
	d := New([]Country{{Name: "Fiji", Code: "FJ"}})
	c := d.Countries()
	c[0].Name = "changed"
	assert.Equal(t, "Fiji", d.Countries()[0].Name)
}

func TestFilter(t *testing.T) {
	d := New([]Country{
		{Name: "Iceland"},
		{Name: "Ireland"},
		{Name: "Finland"},
		{Name: "Italy"},
	})

	tests := []struct {
		pattern string
		want    []string
	}{
		{"land", []string{"Iceland", "Ireland", "Finland"}},
		{"I*", []string{"Iceland", "Ireland", "Italy"}},
		{"*LAND", []string{"Iceland", "Ireland", "Finland"}},
		{"?taly", []string{"Italy"}},
		{"zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := d.Filter(tt.pattern)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Zero(t, got.Len())
				return
			}
			assert.Equal(t, tt.want, got.Names())
		})
	}
}

func TestFilter_Errors(t *testing.T) {
	d := MustLoad()

	_, err := d.Filter("  ")
	require.ErrorIs(t, err, ErrEmptyPattern)

	_, err = d.Filter("[a")
	require.Error(t, err)
}
