package report

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingRoot aborts a whole run: the configured root directory does
	// not exist. Flows return a zero-progress summary alongside it.
	ErrMissingRoot = errors.New("root directory missing")

	// ErrUnresolvedDate marks a file whose date could not be determined by
	// any strategy. Per-file, never fatal.
	ErrUnresolvedDate = errors.New("unresolved date")

	// ErrUnsupported marks a file whose extension is outside the configured
	// sets. Reported so configuration gaps stay visible.
	ErrUnsupported = errors.New("unsupported format")

	// ErrFilesystem marks a failed move, rename, or metadata write.
	ErrFilesystem = errors.New("filesystem operation failed")

	// ErrConfiguration marks unusable configuration discovered at run time.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes flow context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, flow, operation, message string, err error) error {
	detail := buildDetail(flow, operation, message)
	if marker == nil {
		marker = ErrFilesystem
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(flow, operation, message string) string {
	parts := make([]string, 0, 3)
	if flow = strings.TrimSpace(flow); flow != "" {
		parts = append(parts, flow)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "flow failure"
	}
	return strings.Join(parts, ": ")
}
