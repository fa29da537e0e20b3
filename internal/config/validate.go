package config

import (
	"errors"
	"fmt"

	"github.com/michaelscutari/mv123/internal/scan"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRename(); err != nil {
		return err
	}
	if err := c.validateJournal(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateClipboard()
}

func (c *Config) validateRename() error {
	if _, err := scan.NewPattern(c.Rename.Filter); err != nil {
		return fmt.Errorf("rename.filter: %w", err)
	}
	return nil
}

func (c *Config) validateJournal() error {
	if c.Journal.Retention < 0 {
		return errors.New("journal.retention must be >= 0")
	}
	if c.Journal.Enabled && c.Journal.Path == "" {
		return errors.New("journal.path must be set when the journal is enabled")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateClipboard() error {
	if c.Clipboard.IntervalMS <= 0 {
		return errors.New("clipboard.interval_ms must be positive")
	}
	return nil
}
