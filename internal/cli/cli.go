// Package cli implements the blocklink command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/openblocks/blocklink/pkg/block"
	"github.com/openblocks/blocklink/pkg/buildinfo"
	"github.com/openblocks/blocklink/pkg/config"
	"github.com/openblocks/blocklink/pkg/errors"
	"github.com/openblocks/blocklink/pkg/link"
	"github.com/openblocks/blocklink/pkg/observability"
	"github.com/openblocks/blocklink/pkg/scene"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "blocklink"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	threshold  float64
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Blocklink checks which block connectors may be joined",
		Long:         `Blocklink loads a scene of visual programming blocks and reports which connectors may link under a configurable rule set, and which link a drag would snap to.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetLinkHooks(logHooks{c.Logger})
			observability.SetLoadHooks(logHooks{c.Logger})
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "rule configuration file (TOML)")
	flags.Float64Var(&c.threshold, "threshold", 0, "snap distance in canvas units (overrides config)")

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.matchCommand())
	root.AddCommand(c.rulesCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Loading
// =============================================================================

// loadConfig reads the --config file, or the defaults when none is given,
// and applies the --threshold override.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if c.configPath != "" {
		var err error
		if cfg, err = config.Load(c.configPath); err != nil {
			return nil, err
		}
	}
	if cfg.Threshold == 0 {
		cfg.Threshold = link.DefaultThreshold
	}
	if c.threshold != 0 {
		cfg.Threshold = c.threshold
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// session is a loaded scene with a checker bound to its workspace.
type session struct {
	scene   *scene.Scene
	checker *link.Checker
}

// open loads the scene at path and builds a checker from the configuration.
func (c *CLI) open(path string) (*session, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	s, err := scene.ImportJSON(path)
	if err != nil {
		return nil, err
	}
	set, err := cfg.RuleSet(s.Workspace().Blocks())
	if err != nil {
		return nil, err
	}
	checker := link.NewChecker(s.Workspace(), link.Options{
		Threshold: cfg.Threshold,
		Rules:     set,
		Logger:    c.Logger,
	})
	return &session{scene: s, checker: checker}, nil
}

// view returns the block and view named id.
func (s *session) view(id string) (*scene.View, error) {
	if err := errors.ValidateBlockID(id); err != nil {
		return nil, err
	}
	v, ok := s.scene.View(block.ID(id))
	if !ok {
		return nil, errors.New(errors.ErrCodeBlockNotFound, "no block %q in scene", id)
	}
	return v, nil
}
