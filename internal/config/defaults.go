package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/michaelscutari/mv123/internal/scan"
)

const (
	defaultConfigPath        = "~/.config/mv123/config.toml"
	defaultJournalRetention  = 100
	defaultClipboardInterval = 100
	defaultClipboardSep      = ","
	defaultLogLevel          = "info"
	defaultLogFormat         = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Rename: Rename{
			Filter: scan.DefaultFilter,
		},
		Journal: Journal{
			Enabled:   true,
			Path:      defaultJournalPath(),
			Retention: defaultJournalRetention,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Clipboard: Clipboard{
			IntervalMS: defaultClipboardInterval,
			Separator:  defaultClipboardSep,
		},
	}
}

func defaultJournalPath() string {
	if base, ok := os.LookupEnv("XDG_DATA_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "mv123", "journal.db")
	}
	return "~/.local/share/mv123/journal.db"
}
