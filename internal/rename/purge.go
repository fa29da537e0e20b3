package rename

import (
	"fmt"
	"os"

	"github.com/michaelscutari/mv123/internal/scan"
)

var hiddenPattern = scan.MustPattern(scan.HiddenFilter)

// PurgeHidden deletes the dot-prefixed files directly inside directory and
// returns the removed paths. Hidden subdirectories are left alone.
func PurgeHidden(directory string) ([]string, error) {
	paths, err := scan.ListMatching(directory, hiddenPattern)
	if err != nil {
		return nil, err
	}

	removed := make([]string, 0, len(paths))
	for _, p := range paths {
		if err := os.Remove(p); err != nil {
			return removed, fmt.Errorf("failed to remove hidden file: %w", err)
		}
		removed = append(removed, p)
	}
	return removed, nil
}
