// Package scan provides the sequential directory walk shared by every flow.
package scan

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"photokeep/internal/report"
)

// CheckRoot verifies the directory a flow is about to scan. A missing root is
// fatal for that run and maps onto report.ErrMissingRoot.
func CheckRoot(flow, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return report.Wrap(report.ErrMissingRoot, flow, "check root", root, nil)
		}
		return report.Wrap(report.ErrConfiguration, flow, "check root", root, err)
	}
	if !info.IsDir() {
		return report.Wrap(report.ErrConfiguration, flow, "check root", root+" is not a directory", nil)
	}
	return nil
}

// Walk visits every regular file under root in lexical order. Hidden entries
// (dot-prefixed, including .DS_Store) are skipped, as is everything under the
// paths in skipDirs. Unreadable entries are skipped rather than aborting the
// walk; per-file handling errors are the visitor's business.
func Walk(root string, skipDirs []string, visit func(path string, entry fs.DirEntry) error) error {
	skip := make(map[string]struct{}, len(skipDirs))
	for _, dir := range skipDirs {
		skip[filepath.Clean(dir)] = struct{}{}
	}

	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directory or racing deletion: move on.
			return nil
		}
		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if _, excluded := skip[filepath.Clean(path)]; excluded {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		return visit(path, entry)
	})
}
