package config

const (
	defaultConfigPath = "~/.config/presetid/config.toml"
	defaultColorMode  = "auto"
	defaultVerbosity  = 0
	defaultLogLevel   = "info"
)

// ColorModes lists the recognized color mode values.
var ColorModes = []string{"auto", "always", "never"}

// LogLevels lists the recognized log level values.
var LogLevels = []string{"debug", "info", "warn", "error"}
