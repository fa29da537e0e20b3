package rename

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrDestinationExists is returned when a rename target is already present.
var ErrDestinationExists = errors.New("destination already exists")

// Observer is notified while a plan is applied.
type Observer interface {
	// Start is called once with the number of pairs in the plan.
	Start(total int)
	// Step is called after each pair is handled. changed is the running
	// count of renames performed so far.
	Step(pair Pair, changed int)
	// Done is called once when applying stops, successfully or not.
	Done(changed int)
}

type nopObserver struct{}

func (nopObserver) Start(int) {}
func (nopObserver) Step(Pair, int) {}
func (nopObserver) Done(int) {}

// NopObserver returns an Observer that ignores all notifications.
func NopObserver() Observer {
	return nopObserver{}
}

// renameFile is swapped in tests to simulate failures.
var renameFile = renameNoReplace

// Apply renames every changed pair of plan in order and returns the number
// of files renamed. It stops at the first failure; renames already done stay
// done. ctx is checked between renames.
func Apply(ctx context.Context, plan *Plan, obs Observer) (int, error) {
	if obs == nil {
		obs = NopObserver()
	}

	changed := 0
	obs.Start(plan.Len())
	defer func() {
		obs.Done(changed)
	}()

	for _, pair := range plan.Pairs {
		if err := ctx.Err(); err != nil {
			return changed, err
		}
		if pair.Changed() {
			if err := renameFile(pair.Old, pair.New); err != nil {
				return changed, fmt.Errorf("failed to rename %q to %q after %d renames: %w", pair.Old, pair.New, changed, err)
			}
			changed++
		}
		obs.Step(pair, changed)
	}

	return changed, nil
}

// renameChecked refuses to overwrite newpath, then renames. The check and
// the rename are not atomic.
func renameChecked(oldpath, newpath string) error {
	if _, err := os.Lstat(newpath); err == nil {
		return fmt.Errorf("%w: %s", ErrDestinationExists, newpath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.Rename(oldpath, newpath)
}
