package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/atlas/internal/scrub"
	"github.com/llehouerou/atlas/internal/section"
)

const appName = "atlas"

// Key modes for grouping names into sections.
const (
	KeyModeLetter = "letter" // first letter, diacritics folded, upper-cased
	KeyModeExact  = "exact"  // first character as written
)

var ErrInvalidKeyMode = errors.New("invalid list key_mode")

type Config struct {
	Scrub ScrubConfig `koanf:"scrub"`
	List  ListConfig  `koanf:"list"`
	Log   LogConfig   `koanf:"log"`

	// Paths holds the files that were actually read, in load order.
	Paths []string `koanf:"-"`
}

// ScrubConfig tunes the index bar. Distances are in terminal rows.
type ScrubConfig struct {
	RowHeight float64 `koanf:"row_height"` // rows between two index labels
	Window    int     `koanf:"window"`     // labels on each side that react to the handle
	Curve     string  `koanf:"curve"`      // "sine", "linear" or "quadratic"
	MaxShift  float64 `koanf:"max_shift"`  // cells a label moves at full emphasis
	MaxScale  float64 `koanf:"max_scale"`  // scale at full emphasis (1 = none)
}

type ListConfig struct {
	ScrollMargin int    `koanf:"scroll_margin"`
	KeyMode      string `koanf:"key_mode"` // "letter" or "exact"
}

type LogConfig struct {
	Level string `koanf:"level"` // zerolog level name
	File  string `koanf:"file"`  // empty means the XDG state dir
}

// Default returns the configuration used when no file sets a value.
func Default() *Config {
	sc := scrub.DefaultConfig()
	return &Config{
		Scrub: ScrubConfig{
			RowHeight: sc.RowHeight,
			Window:    sc.Window,
			Curve:     string(sc.Curve),
			MaxShift:  sc.MaxShift,
			MaxScale:  sc.MaxScale,
		},
		List: ListConfig{
			ScrollMargin: 3,
			KeyMode:      KeyModeLetter,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the standard config files and, if explicit is set, that file
// on top. The result is validated; a bad scrub setup is an error.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	var loaded []string
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
			loaded = append(loaded, path)
		}
	}

	if explicit != "" {
		path := expandPath(explicit)
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		loaded = append(loaded, path)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.Paths = loaded

	cfg.List.KeyMode = strings.ToLower(strings.TrimSpace(cfg.List.KeyMode))
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}
	if cfg.List.ScrollMargin < 0 {
		cfg.List.ScrollMargin = 0
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that cannot be silently defaulted.
func (c *Config) Validate() error {
	if _, err := c.ScrubSettings(); err != nil {
		return fmt.Errorf("scrub: %w", err)
	}
	switch c.List.KeyMode {
	case "", KeyModeLetter, KeyModeExact:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidKeyMode, c.List.KeyMode)
	}
	return nil
}

// ScrubSettings converts the scrub section into a validated mapper config.
func (c *Config) ScrubSettings() (scrub.Config, error) {
	curve, err := scrub.ParseCurve(c.Scrub.Curve)
	if err != nil {
		return scrub.Config{}, err
	}
	sc := scrub.Config{
		RowHeight: c.Scrub.RowHeight,
		Window:    c.Scrub.Window,
		Curve:     curve,
		MaxShift:  c.Scrub.MaxShift,
		MaxScale:  c.Scrub.MaxScale,
	}
	if err := sc.Validate(); err != nil {
		return scrub.Config{}, err
	}
	return sc, nil
}

// KeyFunc returns the section key function for the configured key mode.
func (c *Config) KeyFunc() section.KeyFunc {
	if c.List.KeyMode == KeyModeExact {
		return section.Exact
	}
	return section.FirstLetter
}

// LogFile returns the log destination, defaulting to the XDG state dir.
func (c *Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/atlas/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
