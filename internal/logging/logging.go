// Package logging builds the zerolog logger used across atlas.
//
// The interactive UI owns the terminal, so it logs to a file. Commands that
// print to stdout log to stderr through a console writer instead.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Options selects the logger destination and level.
type Options struct {
	Level   string    // zerolog level name; unparsable values fall back to info
	File    string    // append to this file when set
	Console io.Writer // human-readable output when File is empty; defaults to os.Stderr
}

// New returns a logger and a closer for any file it opened.
// The closer is never nil.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	lvl := ParseLevel(opts.Level)

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return zerolog.Nop(), nopCloser{}, err
		}
		f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, err
		}
		logger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
		return logger, f, nil
	}

	out := opts.Console
	if out == nil {
		out = os.Stderr
	}
	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(console).Level(lvl).With().Timestamp().Logger(), nopCloser{}, nil
}

// ParseLevel parses a level name, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
