// Package config loads, normalizes, and validates mv123 configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts) and
// reads TOML files from ~/.config/mv123/config.toml or an explicit path. A
// missing file is not an error: the defaults apply.
package config
