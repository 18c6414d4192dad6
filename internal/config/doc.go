// Package config handles loading and validation of tuikit configuration.
//
// Configuration is read from ~/.config/tuikit/config.toml. The
// TUIKIT_CONFIG environment variable points at a different file.
//
// # Configuration Sources (highest priority first)
//
//   - CLI flags on the widget commands (--duration, --position, ...)
//   - Config file settings
//   - Default values
//
// # Sections
//
//	[theme]  name, mode, nerdfont, per-color overrides
//	[field]  size, char_limit, clearable
//	[menu]   title, position, width, reset_on_open, show_overlay
//	[toast]  duration_ms, position, show_close
//
// Keys missing from the file keep their defaults, so a file that only sets
// [toast] duration_ms = 0 is valid.
//
// # Validation
//
// Enum values are checked against the Valid* lists and numeric values
// against their ranges. An invalid file makes Load return Default() with an
// error naming the key and its allowed values; the CLI prints it as a
// warning and continues with defaults.
package config
