package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/michaelscutari/mv123/internal/rename"
)

// Column headers of the plan table.
const (
	HeaderInput   = "INPUT"
	HeaderOutput  = "OUTPUT"
	HeaderChanged = "CHANGED"
)

// Options controls table rendering.
type Options struct {
	// Color highlights pending renames.
	Color bool
}

// ChangedLabel returns the CHANGED column value for a pair.
func ChangedLabel(p rename.Pair) string {
	if p.Changed() {
		return "yes"
	}
	return "no"
}

// RenderPlan returns the dry-run table for plan: one row per listed file
// with its current path, computed path and whether it changes.
func RenderPlan(plan *rename.Plan, opts Options) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{HeaderInput, HeaderOutput, HeaderChanged})

	for _, pair := range plan.Pairs {
		tw.AppendRow(table.Row{pair.Old, pair.New, ChangedLabel(pair)})
	}

	changedCol := table.ColumnConfig{
		Name:        HeaderChanged,
		Align:       text.AlignCenter,
		AlignHeader: text.AlignCenter,
	}
	if opts.Color {
		changedCol.Transformer = func(val interface{}) string {
			s := fmt.Sprint(val)
			if s == "yes" {
				return text.Colors{text.FgGreen, text.Bold}.Sprint(s)
			}
			return text.Colors{text.FgHiBlack}.Sprint(s)
		}
	}
	tw.SetColumnConfigs([]table.ColumnConfig{changedCol})

	return tw.Render()
}

// WritePlan writes the plan table followed by a newline.
func WritePlan(w io.Writer, plan *rename.Plan, opts Options) error {
	_, err := fmt.Fprintln(w, RenderPlan(plan, opts))
	return err
}

// Summary describes the plan in one line.
func Summary(plan *rename.Plan) string {
	return fmt.Sprintf("%s %s matched, %s to rename",
		humanize.Comma(int64(plan.Len())),
		plural(plan.Len(), "file", "files"),
		humanize.Comma(int64(plan.ChangedCount())),
	)
}

// Applied describes the outcome of an apply step.
func Applied(changed int) string {
	return fmt.Sprintf("Renamed %s %s", humanize.Comma(int64(changed)), plural(changed, "file", "files"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
