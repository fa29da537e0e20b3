package term

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestIsTerminalRejectsNonFiles(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Fatalf("buffer must not be a terminal")
	}
}

func TestIsTerminalRejectsRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Fatalf("regular file must not be a terminal")
	}
	if ShouldColorize(f) {
		t.Fatalf("regular file must not be colorized")
	}
}

func TestShouldColorizeHonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if ShouldColorize(os.Stdout) {
		t.Fatalf("NO_COLOR must disable color")
	}
}
