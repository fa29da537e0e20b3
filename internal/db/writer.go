package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/michaelscutari/mv123/internal/entry"
)

const insertRunSQL = `INSERT INTO runs (id, directory, filter, applied, started_at, finished_at, total, changed, error) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
const insertRenameSQL = `INSERT INTO renames (run_id, seq, old_path, new_path) VALUES (?, ?, ?, ?)`

// WriteRun stores a run and its renames in a single transaction.
func WriteRun(ctx context.Context, db *sql.DB, run entry.Run, renames []entry.JournalRename) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	_, err = tx.ExecContext(ctx, insertRunSQL,
		run.ID, run.Directory, run.Filter, boolToInt(run.Applied),
		run.StartedAt.UnixMilli(), run.FinishedAt.UnixMilli(),
		run.Total, run.Changed, run.Error,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert run %s: %w", run.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertRenameSQL)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare rename statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range renames {
		if _, err := stmt.ExecContext(ctx, run.ID, r.Seq, r.OldPath, r.NewPath); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert rename %q: %w", r.OldPath, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// PruneRuns deletes all but the newest keep runs and returns how many were
// removed. keep <= 0 keeps everything.
func PruneRuns(ctx context.Context, db *sql.DB, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin prune transaction: %w", err)
	}
	defer tx.Rollback()

	const stale = `SELECT id FROM runs ORDER BY started_at DESC, id DESC LIMIT -1 OFFSET ?`
	if _, err := tx.ExecContext(ctx, `DELETE FROM renames WHERE run_id IN (`+stale+`)`, keep); err != nil {
		return 0, fmt.Errorf("failed to prune renames: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE id IN (`+stale+`)`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune runs: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit prune: %w", err)
	}
	return removed, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
