package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/michaelscutari/mv123/internal/rename"
)

func samplePlan() *rename.Plan {
	return &rename.Plan{
		Directory: "/music",
		Pairs: []rename.Pair{
			{Old: "/music/1.mp3", New: "/music/1.mp3"},
			{Old: "/music/a4.mp3", New: "/music/2.mp3"},
		},
	}
}

func TestRenderPlanHasHeadersAndRows(t *testing.T) {
	out := RenderPlan(samplePlan(), Options{})

	for _, want := range []string{HeaderInput, HeaderOutput, HeaderChanged, "/music/a4.mp3", "/music/2.mp3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}

	lines := strings.Split(out, "\n")
	var yesRow, noRow string
	for _, line := range lines {
		if strings.Contains(line, "a4.mp3") {
			yesRow = line
		}
		if strings.Contains(line, "/music/1.mp3") {
			noRow = line
		}
	}
	if !strings.Contains(yesRow, "yes") {
		t.Fatalf("expected changed row marked yes: %q", yesRow)
	}
	if !strings.Contains(noRow, "no") {
		t.Fatalf("expected unchanged row marked no: %q", noRow)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no color codes without Color option")
	}
}

func TestRenderPlanColor(t *testing.T) {
	text.EnableColors()
	out := RenderPlan(samplePlan(), Options{Color: true})
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected color codes:\n%s", out)
	}
}

func TestWritePlanAndSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePlan(&buf, samplePlan(), Options{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Fatalf("expected trailing newline")
	}

	if got := Summary(samplePlan()); got != "2 files matched, 1 to rename" {
		t.Fatalf("unexpected summary %q", got)
	}
	if got := Applied(1); got != "Renamed 1 file" {
		t.Fatalf("unexpected applied line %q", got)
	}
	if got := Applied(1500); got != "Renamed 1,500 files" {
		t.Fatalf("unexpected applied line %q", got)
	}
}
