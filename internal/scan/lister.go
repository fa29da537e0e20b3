package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/michaelscutari/mv123/internal/entry"
)

// List returns the files directly inside dir whose names match
// opts.Pattern, sorted by full path. Subdirectories and their contents are
// never included; a symlink is treated as whatever it points to.
func List(dir string, opts *Options) ([]string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Pattern == nil {
		opts.Pattern = MustPattern(DefaultFilter)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidDirectory, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w %q: not a directory", ErrInvalidDirectory, dir)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidDirectory, dir, err)
	}

	var paths []string
	for _, de := range dirEntries {
		name := de.Name()
		if !opts.Pattern.Match(name) {
			continue
		}

		childPath := filepath.Join(dir, name)
		kind := entry.KindFromMode(de.Type())
		if kind == entry.KindSymlink {
			// Broken links still count as files, matching a plain listing.
			if target, err := os.Stat(childPath); err == nil {
				kind = entry.KindFromMode(target.Mode())
			}
		}
		if kind == entry.KindDir {
			if opts.Logger != nil {
				opts.Logger.Debug("skipping directory", "path", childPath)
			}
			continue
		}

		paths = append(paths, childPath)
	}

	sort.Strings(paths)
	return paths, nil
}

// ListMatching lists the files directly inside dir whose names match pattern.
func ListMatching(dir string, pattern *Pattern) ([]string, error) {
	return List(dir, DefaultOptions().WithPattern(pattern))
}
