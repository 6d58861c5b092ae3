package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/llehouerou/atlas/internal/directory"
	"github.com/llehouerou/atlas/internal/errmsg"
	"github.com/llehouerou/atlas/internal/section"
)

// Output formats for the sections command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

// sectionOut is the serialized form of one section.
type sectionOut struct {
	Key       string              `json:"key"       yaml:"key"`
	Count     int                 `json:"count"     yaml:"count"`
	Countries []directory.Country `json:"countries" yaml:"countries"`
}

func newSectionsCmd(opts *options) *cobra.Command {
	var match, format string

	cmd := &cobra.Command{
		Use:   "sections",
		Short: "Print the directory grouped into sections",
		Example: `  atlas sections
  atlas sections --match 'gu*' --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSections(cmd, opts, match, format)
		},
	}

	cmd.Flags().StringVarP(&match, "match", "m", "", "glob on country names (substring without wildcards)")
	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "output format: text, json or yaml")
	return cmd
}

func runSections(cmd *cobra.Command, opts *options, match, format string) error {
	format = strings.ToLower(format)
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	logger := opts.consoleLogger(cmd, cfg)

	dir, err := directory.Load()
	if err != nil {
		return errmsg.Wrap(errmsg.OpLoadDirectory, err)
	}
	if match != "" {
		if dir, err = dir.Filter(match); err != nil {
			return errmsg.WrapWith(errmsg.OpFilterDirectory, match, err)
		}
	}

	sections := dir.Sections(cfg.KeyFunc())
	logger.Debug().
		Str("match", match).
		Int("countries", dir.Len()).
		Int("sections", len(sections)).
		Msg("grouped directory")

	out := cmd.OutOrStdout()
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(toOutput(sections))
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(toOutput(sections)); err != nil {
			return err
		}
		return enc.Close()
	}
	return writeText(out, sections)
}

func toOutput(sections []section.Section[directory.Country]) []sectionOut {
	out := make([]sectionOut, len(sections))
	for i, s := range sections {
		out[i] = sectionOut{Key: s.Key, Count: s.Len(), Countries: s.Data}
	}
	return out
}

func writeText(w io.Writer, sections []section.Section[directory.Country]) error {
	if len(sections) == 0 {
		_, err := fmt.Fprintln(w, "No countries match.")
		return err
	}
	total := 0
	for _, s := range sections {
		total += s.Len()
		if _, err := fmt.Fprintf(w, "%s (%s)\n", s.Key, humanize.Comma(int64(s.Len()))); err != nil {
			return err
		}
		for _, c := range s.Data {
			if _, err := fmt.Fprintf(w, "  %-3s %s\n", c.Code, c.Name); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "\n%s in %s\n",
		english.Plural(total, "country", "countries"),
		english.Plural(len(sections), "section", ""))
	return err
}
