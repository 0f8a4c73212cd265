// Package cli implements the randomize and interleave command-line tools.
//
// Each tool is a single cobra command built by [CLI.RandomizeCommand] or
// [CLI.InterleaveCommand]. Both share logging (charmbracelet/log, carried in
// the command context), config file loading, pipeline hooks and the styled
// terminal output in ui.go.
//
// # Logging
//
// Info level by default; --verbose (-v) switches to debug, which also logs
// every pipeline stage through the observability hooks.
//
// # Configuration
//
// Defaults come from, in increasing priority: built-in values, the TOML
// config file (--config, or ~/.config/pixelgrid/config.toml), and explicit
// flags.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pixelgrid/pkg/buildinfo"
	"github.com/matzehuels/pixelgrid/pkg/config"
	"github.com/matzehuels/pixelgrid/pkg/observability"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for both commands.
type CLI struct {
	Logger *log.Logger

	// Out receives result summaries; Status receives the spinner.
	Out    io.Writer
	Status io.Writer
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		Status: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// commonOpts holds flags shared by both commands.
type commonOpts struct {
	verbose bool
	config  string
}

// newCommand applies the settings both tools share: version output, quiet
// cobra errors (main prints them), the --verbose and --config flags, and a
// pre-run hook that attaches the logger and pipeline hooks.
func (c *CLI) newCommand(cmd *cobra.Command, common *commonOpts) *cobra.Command {
	cmd.Version = buildinfo.Version
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetVersionTemplate(buildinfo.Template())

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if common.verbose {
			c.SetLogLevel(LogDebug)
		}
		observability.SetPipelineHooks(newLogHooks(c.Logger))
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	}

	cmd.Flags().BoolVarP(&common.verbose, "verbose", "v", false, "enable verbose logging")
	cmd.Flags().StringVar(&common.config, "config", "", "config file (default ~/.config/pixelgrid/config.toml)")
	return cmd
}

// loadConfig reads the explicit config file, or the default one if present.
func (c *CLI) loadConfig(path string, logger *log.Logger) (config.Config, error) {
	if path != "" {
		logger.Debug("loading config", "path", path)
		return config.Load(path)
	}
	cfg, found, err := config.LoadDefault()
	if found != "" {
		logger.Debug("loaded config", "path", found)
	}
	return cfg, err
}
