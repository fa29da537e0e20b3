package report

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/michaelscutari/mv123/internal/entry"
)

// RenderRuns lists journal runs, newest first as given. Times are shown
// relative to now.
func RenderRuns(runs []entry.Run, now time.Time) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"RUN", "WHEN", "DIRECTORY", "FILES", "RENAMED", "STATUS"})

	for _, r := range runs {
		tw.AppendRow(table.Row{
			shortID(r.ID),
			humanize.RelTime(r.StartedAt, now, "ago", "from now"),
			r.Directory,
			humanize.Comma(r.Total),
			humanize.Comma(r.Changed),
			runStatus(r),
		})
	}

	return tw.Render()
}

// RenderRenames lists the renames recorded for one run.
func RenderRenames(run *entry.Run, renames []entry.JournalRename) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(fmt.Sprintf("%s  %s  filter %s  %s", run.ID, run.Directory, run.Filter, run.StartedAt.Format(time.DateTime)))
	tw.AppendHeader(table.Row{"#", HeaderInput, HeaderOutput})

	for _, r := range renames {
		tw.AppendRow(table.Row{r.Seq, r.OldPath, r.NewPath})
	}
	if run.Error != "" {
		tw.AppendFooter(table.Row{"", "error", run.Error})
	}

	return tw.Render()
}

func runStatus(r entry.Run) string {
	if r.Error != "" {
		return "failed"
	}
	return "ok"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
