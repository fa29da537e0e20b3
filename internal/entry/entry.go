package entry

import (
	"os"
	"time"
)

// Kind represents the type of filesystem entry.
type Kind uint8

const (
	KindFile    Kind = 0
	KindDir     Kind = 1
	KindSymlink Kind = 2
	KindOther   Kind = 3
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "other"
	}
}

// KindFromMode derives the Kind from an os.FileMode.
func KindFromMode(mode os.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDir
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	default:
		return KindOther
	}
}

// FileEntry is a listed path decomposed into its directory, base name and
// extension. It is derived on every run and never stored.
type FileEntry struct {
	Path string
	Dir  string
	Base string
	Ext  string
}

// Name returns the final path element (base name plus extension).
func (e FileEntry) Name() string {
	return e.Base + e.Ext
}

// Run is a journal row describing one renamer invocation.
type Run struct {
	ID         string
	Directory  string
	Filter     string
	Applied    bool
	StartedAt  time.Time
	FinishedAt time.Time
	Total      int64 // Files matched by the filter
	Changed    int64 // Renames actually performed
	Error      string
}

// JournalRename is a single applied rename recorded for a run.
type JournalRename struct {
	RunID   string
	Seq     int64
	OldPath string
	NewPath string
}
