package main

import (
	"log/slog"
	"strings"
	"sync"

	"photokeep/internal/config"
	"photokeep/internal/logging"
)

type commandContext struct {
	configFlag *string
	liveFlag   *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, liveFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		liveFlag:   liveFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// dryRun resolves the effective mode: the config default, overridden by the
// --live flag.
func (c *commandContext) dryRun(cfg *config.Config) bool {
	if c.liveFlag != nil && *c.liveFlag {
		return false
	}
	return cfg.Settings.DryRun
}
