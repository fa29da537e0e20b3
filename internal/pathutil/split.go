package pathutil

import (
	"os"
	"strings"
)

// SplitPath splits path into its directory, base name and extension.
//
// The extension runs from the last "." of the final element to its end;
// leading dots of the final element never start an extension, so ".env"
// has no extension. The directory has trailing separators removed unless it
// consists only of separators. A path without a directory component yields
// an empty directory.
func SplitPath(path string) (dir, base, ext string) {
	const sep = string(os.PathSeparator)

	name := path
	if i := strings.LastIndex(path, sep); i >= 0 {
		dir = path[:i+1]
		name = path[i+1:]
		if trimmed := strings.TrimRight(dir, sep); trimmed != "" {
			dir = trimmed
		}
	}

	stem := strings.TrimLeft(name, ".")
	lead := len(name) - len(stem)
	if dot := strings.LastIndex(stem, "."); dot >= 0 {
		return dir, name[:lead+dot], name[lead+dot:]
	}
	return dir, name, ""
}
