package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/michaelscutari/mv123/internal/db"
	"github.com/michaelscutari/mv123/internal/journal"
	"github.com/michaelscutari/mv123/internal/report"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List runs recorded in the rename journal",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var (
	historyLimit int
	historyRun   string
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of runs to show (0 = all)")
	historyCmd.Flags().StringVar(&historyRun, "run", "", "Show the renames of one run")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	database, err := journal.Open(cfg.Journal.Path)
	if errors.Is(err, journal.ErrNoJournal) {
		fmt.Println("No runs recorded yet.")
		return nil
	}
	if err != nil {
		return err
	}
	defer database.Close()

	ctx := context.Background()

	if historyRun != "" {
		run, err := db.GetRun(ctx, database, historyRun)
		if err != nil {
			return fmt.Errorf("failed to load run: %w", err)
		}
		renames, err := db.LoadRenames(ctx, database, run.ID)
		if err != nil {
			return fmt.Errorf("failed to load renames: %w", err)
		}
		fmt.Println(report.RenderRenames(run, renames))
		return nil
	}

	runs, err := db.ListRuns(ctx, database, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}
	fmt.Println(report.RenderRuns(runs, time.Now()))
	return nil
}
