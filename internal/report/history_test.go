package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/michaelscutari/mv123/internal/entry"
)

func TestRenderRunsHumanizes(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	runs := []entry.Run{
		{ID: "0123456789abcdef", Directory: "/music", StartedAt: now.Add(-2 * time.Hour), Total: 1500, Changed: 1200},
		{ID: "failed-run", Directory: "/photos", StartedAt: now.Add(-48 * time.Hour), Total: 3, Changed: 1, Error: "boom"},
	}

	out := RenderRuns(runs, now)

	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789abcdef")
	assert.Contains(t, out, "2 hours ago")
	assert.Contains(t, out, "1,500")
	assert.Contains(t, out, "1,200")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "/photos")
}

func TestRenderRenamesShowsError(t *testing.T) {
	run := &entry.Run{ID: "r1", Directory: "/music", Filter: "mp3$", StartedAt: time.Unix(0, 0), Error: "destination exists"}
	renames := []entry.JournalRename{
		{RunID: "r1", Seq: 1, OldPath: "/music/a4.mp3", NewPath: "/music/4.mp3"},
	}

	out := RenderRenames(run, renames)

	assert.Contains(t, out, "/music/a4.mp3")
	assert.Contains(t, out, "/music/4.mp3")
	assert.Contains(t, strings.ToLower(out), "destination exists")
	assert.Contains(t, strings.ToLower(out), "mp3$")
}
