package main

import (
	"strings"
	"sync"

	"presetid/internal/config"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		c.config, _, _, c.configErr = c.load()
	})
	return c.config, c.configErr
}

// load reads the configuration fresh, bypassing the cache; config
// subcommands use it to report the resolved path and file presence.
func (c *commandContext) load() (*config.Config, string, bool, error) {
	var path string
	if c.configFlag != nil {
		path = strings.TrimSpace(*c.configFlag)
	}
	return config.Load(path)
}
