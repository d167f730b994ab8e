// Package config loads and validates presetid configuration data.
//
// Configuration is a small TOML file holding default output preferences
// (color mode, diagnostic verbosity) and the log level. Defaults are
// applied first, then the file at ~/.config/presetid/config.toml (or an
// explicit path) is layered on top, then values are normalized and
// validated so the CLI always receives canonical enum values.
package config
