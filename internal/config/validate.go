package config

import (
	"fmt"
	"slices"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateOutput() error {
	if !slices.Contains(ColorModes, c.Output.Color) {
		return fmt.Errorf("output.color: unsupported value %q (expected auto, always, or never)", c.Output.Color)
	}
	if c.Output.Verbosity < 0 {
		return fmt.Errorf("output.verbosity: must not be negative, got %d", c.Output.Verbosity)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !slices.Contains(LogLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level: unsupported value %q (expected debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}
