// ABOUTME: Config command for inspecting and creating the config file.
// ABOUTME: Provides path, show and init subcommands.

package main

import (
	"fmt"

	"github.com/fiffu/sd-promptkit/internal/config"
	"github.com/fiffu/sd-promptkit/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print the config file path",
	Annotations: map[string]string{skipConfigAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), resolvedConfigPath())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.Marshal(appConfig)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write the default config file",
	Annotations: map[string]string{skipConfigAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path := resolvedConfigPath()

		if config.Exists(path) && !force {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
		}
		if err := config.Save(config.DefaultConfig(), path); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success("Wrote "+path))
		return nil
	},
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.Path()
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing config file")
	configCmd.AddCommand(configPathCmd, configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}
