package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateExtensions(); err != nil {
		return err
	}
	if err := c.validateSettings(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.SourceDir == "" {
		return errors.New("paths.source_dir must be set")
	}
	if c.Paths.TargetDir == "" {
		return errors.New("paths.target_dir must be set")
	}
	if c.Paths.SourceDir == c.Paths.TargetDir {
		return errors.New("paths.source_dir and paths.target_dir must differ")
	}
	return nil
}

func (c *Config) validateExtensions() error {
	if len(c.Extensions.Image) == 0 && len(c.Extensions.Video) == 0 {
		return errors.New("extensions: at least one image or video extension must be configured")
	}
	return nil
}

func (c *Config) validateSettings() error {
	if c.Settings.SizeThresholdMB <= 0 {
		return fmt.Errorf("settings.size_threshold_mb must be positive, got %v", c.Settings.SizeThresholdMB)
	}
	return nil
}
