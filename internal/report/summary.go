package report

import (
	"fmt"

	"github.com/google/uuid"
)

// Summary accumulates per-run counters. A flow builds it incrementally during
// the scan and returns it to the CLI, which owns user-facing formatting and
// exit codes. Callers must treat a returned Summary as read-only.
type Summary struct {
	RunID   string
	Success int
	Skipped int
	Errors  []string
}

// NewSummary returns an empty summary tagged with a fresh run ID.
func NewSummary() *Summary {
	return &Summary{RunID: uuid.NewString()}
}

// RecordSuccess counts one successfully processed file.
func (s *Summary) RecordSuccess() {
	s.Success++
}

// RecordSkip counts one skipped file (no-op, unsupported, or unresolved).
func (s *Summary) RecordSkip() {
	s.Skipped++
}

// RecordError captures a per-file failure. The file is also counted as
// skipped so Success+Skipped always equals the number of visited files.
func (s *Summary) RecordError(path string, err error) {
	s.Skipped++
	s.Errors = append(s.Errors, fmt.Sprintf("%s: %v", path, err))
}

// Failed reports the number of per-file errors recorded.
func (s *Summary) Failed() int {
	return len(s.Errors)
}
