// Package cli wires the atlas commands: the interactive directory and the
// scripting helpers around the section index.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/llehouerou/atlas/internal/app"
	"github.com/llehouerou/atlas/internal/config"
	"github.com/llehouerou/atlas/internal/directory"
	"github.com/llehouerou/atlas/internal/errmsg"
	"github.com/llehouerou/atlas/internal/logging"
)

// ErrNotTerminal is returned when the interactive UI is started without a
// terminal on stdout.
var ErrNotTerminal = errors.New("stdout is not a terminal")

// options holds the persistent flags shared by every command.
type options struct {
	configPath string
	logLevel   string
	logFile    string
	debug      bool
}

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root command. Run without a subcommand it starts
// the interactive directory.
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "atlas",
		Short:         "Browse the country directory with an A–Z scrubber",
		Long:          "atlas lists the world's countries in alphabetical sections and lets you scrub the index bar to jump between them.",
		Version:       version,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file read after the default locations")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "log file for the interactive UI (default: XDG state dir)")

	cmd.AddCommand(newSectionsCmd(opts), newLocateCmd(opts))
	return cmd
}

const rootCmdExample = `  # Browse the directory
  atlas

  # Print the sections as YAML
  atlas sections --format yaml

  # Only countries whose name starts with "Sa"
  atlas sections --match 'sa*'

  # Which section does offset 50 land on?
  atlas locate 50`

// level resolves the log level: --debug, then --log-level, then the config.
func (o *options) level(cfg *config.Config) string {
	switch {
	case o.debug:
		return "debug"
	case o.logLevel != "":
		return o.logLevel
	}
	return cfg.Log.Level
}

// loadConfig reads the configuration, wrapping failures for the user.
func (o *options) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, errmsg.Wrap(errmsg.OpLoadConfig, err)
	}
	return cfg, nil
}

// consoleLogger builds the stderr logger used by non-interactive commands.
func (o *options) consoleLogger(cmd *cobra.Command, cfg *config.Config) zerolog.Logger {
	// Console loggers open no file, so the closer is a no-op.
	logger, _, err := logging.New(logging.Options{
		Level:   o.level(cfg),
		Console: cmd.ErrOrStderr(),
	})
	if err != nil {
		logger = zerolog.New(cmd.ErrOrStderr()).Level(logging.ParseLevel(o.level(cfg)))
	}
	return logger.With().Str("command", cmd.Name()).Logger()
}

func runTUI(cmd *cobra.Command, opts *options) error {
	if !isTerminal(os.Stdout) {
		return ErrNotTerminal
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	logPath := opts.logFile
	if logPath == "" {
		if logPath, err = cfg.LogFile(); err != nil {
			return errmsg.Wrap(errmsg.OpStartLogging, err)
		}
	}
	logger, closer, err := logging.New(logging.Options{Level: opts.level(cfg), File: logPath})
	if err != nil {
		return errmsg.WrapWith(errmsg.OpStartLogging, logPath, err)
	}
	defer closer.Close()

	dir, err := directory.Load()
	if err != nil {
		return errmsg.Wrap(errmsg.OpLoadDirectory, err)
	}

	m, err := app.New(cfg, dir, logger)
	if err != nil {
		return errmsg.Wrap(errmsg.OpLoadConfig, err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	watcher, err := config.NewWatcher(opts.configPath, func(msg config.ReloadedMsg) {
		p.Send(msg)
	})
	if err != nil {
		logger.Warn().Err(err).Str("op", string(errmsg.OpWatchConfig)).Msg("config reload disabled")
	} else {
		defer watcher.Close()
	}

	logger.Info().Strs("config", cfg.Paths).Msg("starting")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute(version string, stderr io.Writer) int {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}
