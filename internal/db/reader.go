package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/michaelscutari/mv123/internal/entry"
)

// ErrRunNotFound is returned when a run id is not in the journal.
var ErrRunNotFound = errors.New("run not found")

const selectRunColumns = `id, directory, filter, applied, started_at, finished_at, total, changed, error`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (entry.Run, error) {
	var r entry.Run
	var applied int
	var started, finished int64
	if err := row.Scan(&r.ID, &r.Directory, &r.Filter, &applied, &started, &finished, &r.Total, &r.Changed, &r.Error); err != nil {
		return r, err
	}
	r.Applied = applied != 0
	r.StartedAt = time.UnixMilli(started)
	r.FinishedAt = time.UnixMilli(finished)
	return r, nil
}

// ListRuns returns the newest runs first, at most limit of them.
func ListRuns(ctx context.Context, db *sql.DB, limit int) ([]entry.Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.QueryContext(ctx,
		`SELECT `+selectRunColumns+` FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var runs []entry.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// GetRun loads a single run by id.
func GetRun(ctx context.Context, db *sql.DB, id string) (*entry.Run, error) {
	r, err := scanRun(db.QueryRowContext(ctx, `SELECT `+selectRunColumns+` FROM runs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// LoadRenames returns the renames of a run in the order they were applied.
func LoadRenames(ctx context.Context, db *sql.DB, runID string) ([]entry.JournalRename, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT run_id, seq, old_path, new_path FROM renames WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var renames []entry.JournalRename
	for rows.Next() {
		var r entry.JournalRename
		if err := rows.Scan(&r.RunID, &r.Seq, &r.OldPath, &r.NewPath); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		renames = append(renames, r)
	}

	return renames, rows.Err()
}
