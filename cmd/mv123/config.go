package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/michaelscutari/mv123/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the mv123 configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitPath string

func init() {
	configInitCmd.Flags().StringVar(&configInitPath, "path", "", "Where to write the sample (default ~/.config/mv123/config.toml)")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configInitPath
	if path == "" {
		defaultPath, err := config.DefaultConfigPath()
		if err != nil {
			return err
		}
		path = defaultPath
	} else {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return err
		}
		path = expanded
	}

	if err := config.CreateSample(path); err != nil {
		return err
	}
	fmt.Printf("Wrote sample config to %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	source := resolved
	if !exists {
		source = resolved + " (not found, using defaults)"
	}
	fmt.Printf("# %s\n", source)

	out, err := cfg.Encode()
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
