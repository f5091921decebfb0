package testsupport

import (
	"path/filepath"
	"testing"

	"photokeep/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// Every directory a flow scans is created up front; dry-run is off because
// tests that want it ask for it explicitly.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.SourceDir = filepath.Join(base, "incoming")
	cfg.Paths.TargetDir = filepath.Join(base, "library")
	cfg.Paths.FixDir = filepath.Join(base, "scans")
	cfg.Paths.RootDir = filepath.Join(base, "library")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Settings.DryRun = false

	for _, opt := range opts {
		opt(&cfg)
	}

	for _, dir := range []string{
		cfg.Paths.SourceDir,
		cfg.Paths.TargetDir,
		cfg.Paths.FixDir,
		cfg.Paths.RootDir,
	} {
		MkdirAll(t, dir)
	}

	return &cfg
}

// WithSizeThreshold overrides the junk-cleanup size cutoff.
func WithSizeThreshold(mb float64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Settings.SizeThresholdMB = mb
	}
}

// WithImageExtensions replaces the recognized image extension list.
func WithImageExtensions(exts ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Extensions.Image = exts
	}
}
