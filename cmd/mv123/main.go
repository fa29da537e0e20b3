package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mv123 [flags] DIR",
	Short: "Rename files in a directory to sequential numbers",
	Long: `mv123 renames the files of a directory that match a filter to
zero-padded sequential numbers, keeping their extensions.

   1.mp3   -->  01.mp3
   a4.mp3  -->  04.mp3
   a10.mp3 -->  10.mp3

Without --apply only the plan is printed. Hidden files in DIR are
removed at the end of every run.`,
	Args:          cobra.ExactArgs(1),
	RunE:          runRename,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.config/mv123/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
