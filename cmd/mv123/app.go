package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/michaelscutari/mv123/internal/config"
	"github.com/michaelscutari/mv123/internal/journal"
	"github.com/michaelscutari/mv123/internal/logging"
	"github.com/michaelscutari/mv123/internal/pathutil"
	"github.com/michaelscutari/mv123/internal/rename"
	"github.com/michaelscutari/mv123/internal/report"
	"github.com/michaelscutari/mv123/internal/scan"
)

// loadConfig reads the config file and builds the logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{Level: level, Format: cfg.Logging.Format})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logger, nil
}

// listOptions compiles the filter. A --filter flag wins over the config.
func listOptions(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (*scan.Options, error) {
	expr := cfg.Rename.Filter
	if f := cmd.Flags().Lookup("filter"); f != nil && f.Changed {
		expr = f.Value.String()
	}

	opts := scan.DefaultOptions().WithLogger(logger)
	if err := opts.SetFilter(expr); err != nil {
		return nil, err
	}
	return opts, nil
}

// signalContext is cancelled on the first interrupt; a second one exits.
func signalContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		if _, ok := <-sigCh; !ok {
			return
		}
		fmt.Fprintln(os.Stderr, "\nCanceling... (press Ctrl+C again to force)")
		cancel()
		if _, ok := <-sigCh; ok {
			os.Exit(130)
		}
	}()
	return ctx, func() {
		signal.Stop(sigCh)
		close(sigCh)
		cancel()
	}
}

// applyPlan renames the plan, records the run and prints the result.
func applyPlan(ctx context.Context, plan *rename.Plan, obs rename.Observer, cfg *config.Config, logger *slog.Logger, useJournal bool) error {
	started := time.Now()
	applied, applyErr := rename.Apply(ctx, plan, obs)
	finished := time.Now()

	if useJournal && cfg.Journal.Enabled {
		mgr := journal.NewManager(cfg.Journal.Path, cfg.Journal.Retention)
		mgr.SetLogger(logger)
		run, renames := journal.FromPlan(plan, applied, started, finished, applyErr)
		if abs, err := pathutil.Absolute(run.Directory); err == nil {
			run.Directory = abs
		}
		// Recording must not be skipped because the rename was interrupted.
		id, err := mgr.Record(context.WithoutCancel(ctx), run, renames)
		if err != nil {
			logger.Warn("failed to record journal", slog.String("path", mgr.Path()), slog.Any("error", err))
		} else {
			logger.Debug("journal recorded", slog.String("run", id))
		}
	}

	if applyErr != nil {
		return applyErr
	}
	fmt.Println(report.Applied(applied))
	return nil
}

func purgeHidden(dir string, logger *slog.Logger) error {
	removed, err := rename.PurgeHidden(dir)
	for _, p := range removed {
		logger.Info("removed hidden file", slog.String("path", p))
	}
	if err != nil {
		return fmt.Errorf("failed to purge hidden files: %w", err)
	}
	return nil
}
