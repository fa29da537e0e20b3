package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/michaelscutari/mv123/internal/progress"
	"github.com/michaelscutari/mv123/internal/rename"
	"github.com/michaelscutari/mv123/internal/tui"
)

var reviewCmd = &cobra.Command{
	Use:   "review [flags] DIR",
	Short: "Review a rename plan interactively before applying it",
	Long: `Open an interactive view of the rename plan for DIR. Press a to
apply it or q to leave without renaming.`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

var (
	reviewFilter    string
	reviewNoJournal bool
)

func init() {
	reviewCmd.Flags().StringVar(&reviewFilter, "filter", "^[^.].*", "Regex selecting the names to rename")
	reviewCmd.Flags().BoolVar(&reviewNoJournal, "no-journal", false, "Do not record this run in the journal")
}

func runReview(cmd *cobra.Command, args []string) error {
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

	model := tui.NewModel(plan)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if model.Confirmed() {
		ctx, stop := signalContext()
		defer stop()
		if err := applyPlan(ctx, plan, progress.New(os.Stderr, 0), cfg, logger, !reviewNoJournal); err != nil {
			return err
		}
	} else {
		fmt.Println("No files renamed.")
	}

	return purgeHidden(dir, logger)
}
