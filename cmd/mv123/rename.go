package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/michaelscutari/mv123/internal/progress"
	"github.com/michaelscutari/mv123/internal/rename"
	"github.com/michaelscutari/mv123/internal/report"
	"github.com/michaelscutari/mv123/internal/term"
)

var (
	renameFilter    string
	renameApply     bool
	renameNoJournal bool
	renameProgress  time.Duration
)

func init() {
	rootCmd.Flags().StringVar(&renameFilter, "filter", "^[^.].*", "Regex selecting the names to rename")
	rootCmd.Flags().BoolVar(&renameApply, "apply", false, "Perform the renames (default is a dry run)")
	rootCmd.Flags().BoolVar(&renameNoJournal, "no-journal", false, "Do not record this run in the journal")
	rootCmd.Flags().DurationVar(&renameProgress, "progress-interval", 5*time.Second, "Emit progress lines to stderr at this interval when not a TTY (0 to disable)")
}

func runRename(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	dir := args[0]
	opts, err := listOptions(cmd, cfg, logger)
	if err != nil {
		return err
	}

	plan, err := rename.BuildPlan(dir, opts)
	if err != nil {
		return fmt.Errorf("failed to build plan: %w", err)
	}
	logger.Debug("plan built",
		slog.String("directory", dir),
		slog.String("filter", plan.Filter),
		slog.Int("files", plan.Len()),
		slog.Int("changed", plan.ChangedCount()),
	)

	if err := report.WritePlan(os.Stdout, plan, report.Options{Color: term.ShouldColorize(os.Stdout)}); err != nil {
		return fmt.Errorf("failed to print plan: %w", err)
	}
	fmt.Println(report.Summary(plan))

	if renameApply {
		ctx, stop := signalContext()
		defer stop()
		obs := progress.New(os.Stderr, renameProgress)
		if err := applyPlan(ctx, plan, obs, cfg, logger, !renameNoJournal); err != nil {
			return err
		}
	}

	return purgeHidden(dir, logger)
}
