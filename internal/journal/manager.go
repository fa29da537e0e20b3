// Package journal records applied rename runs in a SQLite database.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/michaelscutari/mv123/internal/db"
	"github.com/michaelscutari/mv123/internal/entry"
	"github.com/michaelscutari/mv123/internal/rename"

	_ "modernc.org/sqlite"
)

// ErrNoJournal is returned by Open when the journal file does not exist yet.
var ErrNoJournal = errors.New("journal does not exist")

const lockRetryDelay = 50 * time.Millisecond

// DefaultLockTimeout bounds how long Record waits for another writer.
const DefaultLockTimeout = 5 * time.Second

// Manager handles the journal lifecycle including locking and retention.
type Manager struct {
	path        string
	retention   int
	lockTimeout time.Duration
	logger      *slog.Logger
}

// NewManager creates a journal manager for the database at path. A retention
// of zero keeps every run.
func NewManager(path string, retention int) *Manager {
	return &Manager{
		path:        path,
		retention:   retention,
		lockTimeout: DefaultLockTimeout,
		logger:      slog.New(slog.DiscardHandler),
	}
}

// SetLogger sets the logger used for prune warnings.
func (m *Manager) SetLogger(logger *slog.Logger) {
	if logger != nil {
		m.logger = logger
	}
}

// SetLockTimeout overrides DefaultLockTimeout.
func (m *Manager) SetLockTimeout(d time.Duration) {
	m.lockTimeout = d
}

// Path returns the database path.
func (m *Manager) Path() string {
	return m.path
}

// Record stores run and its renames. A missing run id is filled with a new
// UUID, which is returned.
func (m *Manager) Record(ctx context.Context, run entry.Run, renames []entry.JournalRename) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create journal directory: %w", err)
	}

	lock := flock.New(m.path + ".lock")
	lockCtx, cancel := context.WithTimeout(ctx, m.lockTimeout)
	defer cancel()
	ok, err := lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil || !ok {
		if err == nil {
			err = errors.New("another writer holds the lock")
		}
		return "", fmt.Errorf("failed to acquire journal lock: %w", err)
	}
	defer lock.Unlock()

	database, err := sql.Open("sqlite", m.path)
	if err != nil {
		return "", fmt.Errorf("failed to open journal: %w", err)
	}
	defer database.Close()

	if err := db.ApplyWritePragmas(database); err != nil {
		return "", fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if err := db.InitSchema(database); err != nil {
		return "", fmt.Errorf("failed to initialize schema: %w", err)
	}

	for i := range renames {
		renames[i].RunID = run.ID
	}
	if err := db.WriteRun(ctx, database, run, renames); err != nil {
		return "", err
	}

	if removed, err := db.PruneRuns(ctx, database, m.retention); err != nil {
		m.logger.Warn("failed to prune journal", slog.String("path", m.path), slog.Any("error", err))
	} else if removed > 0 {
		m.logger.Debug("pruned journal runs", slog.Int64("removed", removed))
	}

	return run.ID, nil
}

// Open opens the journal read-only for history queries.
func Open(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoJournal, path)
		}
		return nil, fmt.Errorf("failed to stat journal: %w", err)
	}

	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	if err := db.ApplyReadPragmas(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	return database, nil
}

// FromPlan builds the journal rows for a plan of which the first applied
// changed pairs were renamed. applyErr, if any, is kept on the run.
func FromPlan(plan *rename.Plan, applied int, started, finished time.Time, applyErr error) (entry.Run, []entry.JournalRename) {
	run := entry.Run{
		Directory:  plan.Directory,
		Filter:     plan.Filter,
		Applied:    true,
		StartedAt:  started,
		FinishedAt: finished,
		Total:      int64(plan.Len()),
		Changed:    int64(applied),
	}
	if applyErr != nil {
		run.Error = applyErr.Error()
	}

	renames := make([]entry.JournalRename, 0, applied)
	for _, p := range plan.Pairs {
		if len(renames) == applied {
			break
		}
		if !p.Changed() {
			continue
		}
		renames = append(renames, entry.JournalRename{
			Seq:     int64(len(renames) + 1),
			OldPath: p.Old,
			NewPath: p.New,
		})
	}
	return run, renames
}
