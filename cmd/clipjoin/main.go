package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/michaelscutari/mv123/internal/clipboard"
	"github.com/michaelscutari/mv123/internal/config"
	"github.com/michaelscutari/mv123/internal/logging"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clipjoin",
	Short: "Join multi-line clipboard text into one line",
	Long: `clipjoin watches the clipboard and, whenever it changes, replaces
its content with the trimmed lines joined by a separator:

   a        -->  a,b,c
    b
   c

Stop it with Ctrl+C.`,
	Args:          cobra.NoArgs,
	RunE:          runClipjoin,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath string
	interval   time.Duration
	separator  string
	verbose    bool
)

func init() {
	rootCmd.Version = version
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default ~/.config/mv123/config.toml)")
	rootCmd.Flags().DurationVar(&interval, "interval", 100*time.Millisecond, "Clipboard poll interval")
	rootCmd.Flags().StringVar(&separator, "separator", clipboard.DefaultSeparator, "Separator placed between lines")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func runClipjoin(cmd *cobra.Command, args []string) error {
	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{Level: level, Format: cfg.Logging.Format})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	if !clipboard.Supported() {
		return errors.New("no clipboard backend available (install xclip, xsel or wl-clipboard)")
	}

	opts := clipboard.DefaultOptions().
		WithInterval(cfg.ClipboardInterval()).
		WithSeparator(cfg.Clipboard.Separator).
		WithLogger(logger)
	if cmd.Flags().Changed("interval") {
		if interval <= 0 {
			return fmt.Errorf("invalid interval %s", interval)
		}
		opts.WithInterval(interval)
	}
	if cmd.Flags().Changed("separator") {
		opts.WithSeparator(separator)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("watching clipboard", slog.Duration("interval", opts.Interval), slog.String("separator", opts.Separator))
	return clipboard.NewWatcher(clipboard.System{}, opts).Run(ctx)
}
