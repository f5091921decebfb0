package organize

import (
	"fmt"
	"path/filepath"
	"strconv"

	"photokeep/internal/capture"
	"photokeep/internal/location"
)

// Bucket maps a year onto its decade folder. Everything up to and including
// 1979 shares a single catch-all; later years group by decade start.
func Bucket(year int) string {
	if year <= 1979 {
		return "1979-"
	}
	return fmt.Sprintf("%d+", year/10*10)
}

// Plan describes one file's computed destination before any collision
// resolution.
type Plan struct {
	Source   string
	Target   string
	Date     capture.Resolved
	Location string
}

// planFor derives the bucketed destination for the file at path. The location
// hint comes from the immediate parent folder name, falling back to the
// grandparent.
func planFor(targetRoot, path string, date capture.Resolved) Plan {
	parent := filepath.Base(filepath.Dir(path))
	grandparent := filepath.Base(filepath.Dir(filepath.Dir(path)))
	hint := location.FromAncestors(parent, grandparent)

	year := date.Time.Year()
	yearStr := strconv.Itoa(year)
	monthDir := yearStr + "-" + strconv.Itoa(int(date.Time.Month()))
	if hint != "" {
		monthDir += " " + hint
	}

	target := filepath.Join(targetRoot, Bucket(year), yearStr, monthDir, filepath.Base(path))
	return Plan{Source: path, Target: target, Date: date, Location: hint}
}
