// ABOUTME: Root command with shared flags, config loading and input handling.
// ABOUTME: Flags override the config file, which overrides built-in defaults.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fiffu/sd-promptkit/internal/config"
	"github.com/fiffu/sd-promptkit/internal/lint"
	"github.com/fiffu/sd-promptkit/internal/logging"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	configPath string
	appConfig  *config.Config
	logger     *log.Logger
)

// skipConfigAnnotation marks commands that must run even when the config
// file is broken. They start from the defaults instead.
const skipConfigAnnotation = "taglint/skip-config"

// errNoInput is returned when there are no args and stdin is a terminal.
var errNoInput = errors.New("no tags given: pass them as arguments or pipe them on stdin")

var rootCmd = &cobra.Command{
	Use:   "taglint",
	Short: "Lint and deduplicate image-generation prompt tags",
	Long: `taglint normalizes comma-separated prompt tags into a canonical form,
reports which ones were corrected, and removes duplicates.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := resolvedConfigPath()
		cfg, err := loadConfig(cmd, path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := applyFlags(cmd, cfg); err != nil {
			return err
		}
		appConfig = cfg

		logger, err = logging.New(logging.Config{
			Level:  cfg.LogLevel,
			JSON:   cfg.LogJSON,
			Output: cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		logger.Debug("loaded config", "path", path, "exists", config.Exists(path))
		return nil
	},
}

func loadConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	if cmd.Annotations[skipConfigAnnotation] == "true" {
		return config.DefaultConfig(), nil
	}
	return config.LoadFile(path)
}

// applyFlags overlays explicitly set persistent flags onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("preserve-case") {
		cfg.Options.PreserveCase, _ = flags.GetBool("preserve-case")
	}
	if flags.Changed("preserve-underscore") {
		cfg.Options.PreserveUnderscore, _ = flags.GetBool("preserve-underscore")
	}
	if flags.Changed("preserve-newlines") {
		cfg.Options.PreserveNewlines, _ = flags.GetBool("preserve-newlines")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	return cfg.Validate()
}

func newLinter() *lint.Linter {
	return lint.New(appConfig.Options, lint.WithLogger(logger))
}

// readInput joins positional args as separate tags, or reads stdin when it
// is piped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, ", "), nil
	}

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return "", errNoInput
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/taglint/config.yaml)")
	rootCmd.PersistentFlags().Bool("preserve-case", false, "keep letter case instead of lowercasing")
	rootCmd.PersistentFlags().Bool("preserve-underscore", false, "keep underscores instead of turning them into spaces")
	rootCmd.PersistentFlags().Bool("preserve-newlines", false, "do not treat newlines as tag delimiters")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
}
