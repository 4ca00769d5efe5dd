// Package cli provides the Cobra command structure for jsplex.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/db47h/jsp/internal/config"
	"github.com/db47h/jsp/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app holds the settings shared by subcommands once flags are parsed.
type app struct {
	debug      bool
	configPath string
	color      string
	cfg        *config.Config
}

// NewRootCommand creates the root jsplex command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "jsplex",
		Short: "Tokenize JSP templates",
		Long: `jsplex tokenizes JSP templates the way a parser sees them: tag names,
implicit end tags, raw script and style content, JSP constructs, expressions
and text.

It is mostly useful to debug grammars built on the jsp scanner.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&a.color, "color", config.ColorAuto,
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newTokensCommand(a))
	rootCmd.AddCommand(newTagsCommand(a))
	rootCmd.AddCommand(newStateCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// load reads the configuration and applies the global flags.
func (a *app) load(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, path, err := config.Load(ctx, a.configPath, "")
	if err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = a.color
	}
	if a.debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	logging.SetLevel(cfg.LogLevel)
	logger := logging.NewWriter(cmd.ErrOrStderr(), cfg.LogLevel)
	if path != "" {
		logger.Debug("loaded config", logging.FieldConfig, path)
	}
	cmd.SetContext(logging.WithLogger(ctx, logger))
	a.cfg = cfg
	return nil
}

// ConfigError reports an invalid configuration.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
