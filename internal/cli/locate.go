package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/llehouerou/atlas/internal/directory"
	"github.com/llehouerou/atlas/internal/errmsg"
	"github.com/llehouerou/atlas/internal/scrub"
	"github.com/llehouerou/atlas/internal/section"
)

// ErrInvalidOffset is returned when the locate argument is not a finite number.
var ErrInvalidOffset = errors.New("offset must be a finite number")

func newLocateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "locate <offset>",
		Short: "Show which section a scrub offset selects",
		Long: `Maps a scrub offset, in rows along the index bar, to the section it selects
under the configured row height, and lists the emphasis of nearby labels.`,
		Example: `  atlas locate 3
  atlas locate 50 --config tall-rows.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate(cmd, opts, args[0])
		},
	}
}

func runLocate(cmd *cobra.Command, opts *options, arg string) error {
	offset, err := strconv.ParseFloat(arg, 64)
	if err != nil || math.IsNaN(offset) || math.IsInf(offset, 0) {
		return fmt.Errorf("%w: %q", ErrInvalidOffset, arg)
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
	keys := section.Keys(dir.Sections(cfg.KeyFunc()))

	sc, err := cfg.ScrubSettings()
	if err != nil {
		return errmsg.Wrap(errmsg.OpLoadConfig, err)
	}
	mapper, err := scrub.New(sc, len(keys))
	if err != nil {
		return errmsg.Wrap(errmsg.OpLoadConfig, err)
	}

	i := mapper.Index(offset)
	logger.Debug().Float64("offset", offset).Int("section", i).Msg("located")

	out := cmd.OutOrStdout()
	if len(keys) == 0 {
		_, err := fmt.Fprintln(out, "No sections.")
		return err
	}
	if _, err := fmt.Fprintf(out, "offset %g -> section %d (%s)\n", offset, i, keys[i]); err != nil {
		return err
	}
	for _, w := range mapper.Emphasis(offset) {
		tr := mapper.Transform(w.Value)
		if _, err := fmt.Fprintf(out, "  %-2s weight %.2f  shift %.1f  scale %.2f\n",
			keys[w.Index], w.Value, tr.Shift, tr.Scale); err != nil {
			return err
		}
	}
	return nil
}
