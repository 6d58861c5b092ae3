// Package directory holds the compiled-in list of countries shown by atlas.
package directory

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/atlas/internal/section"
)

//go:embed countries.toml
var countriesTOML []byte

// ErrEmptyPattern is returned by Filter for a blank pattern.
var ErrEmptyPattern = errors.New("empty filter pattern")

// Country is one directory entry.
type Country struct {
	Name   string `koanf:"name" json:"name" yaml:"name"`
	Code   string `koanf:"code" json:"code" yaml:"code"`
	Region string `koanf:"region" json:"region" yaml:"region"`
}

// Directory is an immutable ordered list of countries.
type Directory struct {
	countries []Country
}

// Load decodes the embedded country list.
func Load() (Directory, error) {
	return decode(countriesTOML)
}

// MustLoad is Load for callers that treat a broken embedded list as fatal.
func MustLoad() Directory {
	d, err := Load()
	if err != nil {
		panic(fmt.Sprintf("directory: embedded list: %v", err))
	}
	return d
}

// New builds a directory from countries. The slice is copied.
func New(countries []Country) Directory {
	c := make([]Country, len(countries))
	copy(c, countries)
	return Directory{countries: c}
}

func decode(data []byte) (Directory, error) {
	k := koanf.New(".")
	if err := k.Load(bytesProvider(data), toml.Parser()); err != nil {
		return Directory{}, fmt.Errorf("parse countries: %w", err)
	}
	var countries []Country
	if err := k.Unmarshal("countries", &countries); err != nil {
		return Directory{}, fmt.Errorf("decode countries: %w", err)
	}
	return Directory{countries: countries}, nil
}

// Len returns the number of countries.
func (d Directory) Len() int {
	return len(d.countries)
}

// Countries returns a copy of the entries in source order.
func (d Directory) Countries() []Country {
	out := make([]Country, len(d.countries))
	copy(out, d.countries)
	return out
}

// Names returns the display names in source order.
func (d Directory) Names() []string {
	names := make([]string, len(d.countries))
	for i, c := range d.countries {
		names[i] = c.Name
	}
	return names
}

// Sections groups the directory by key, in first-appearance order.
func (d Directory) Sections(key section.KeyFunc) []section.Section[Country] {
	return section.Group(d.countries, func(c Country) string { return c.Name }, key)
}

// Filter keeps countries whose name matches the glob pattern,
// case-insensitively. A pattern without wildcards matches as a substring.
func (d Directory) Filter(pattern string) (Directory, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return Directory{}, ErrEmptyPattern
	}
	if !strings.ContainsAny(pattern, "*?[{") {
		pattern = "*" + pattern + "*"
	}
	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return Directory{}, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	var out []Country
	for _, c := range d.countries {
		if g.Match(strings.ToLower(c.Name)) {
			out = append(out, c)
		}
	}
	return Directory{countries: out}, nil
}
