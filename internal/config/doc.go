// Package config loads, normalizes, and validates photokeep configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// prefixes), fills missing values, and rejects unusable combinations before
// any flow runs. Directory existence is deliberately not checked here: each
// flow validates only the root it actually scans.
package config
