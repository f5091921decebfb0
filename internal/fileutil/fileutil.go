// Package fileutil provides collision-safe destination naming and the move
// primitives shared by all flows.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"
)

// UniquePath returns candidate unchanged when nothing exists there, otherwise
// the first "<stem>_<n><ext>" variant (n starting at 1) that does not exist.
// Bounded only by filesystem capacity; callers re-check immediately before
// each mutating operation.
func UniquePath(candidate string) (string, error) {
	exists, err := Exists(candidate)
	if err != nil {
		return "", err
	}
	if !exists {
		return candidate, nil
	}

	ext := filepath.Ext(candidate)
	stem := strings.TrimSuffix(candidate, ext)
	for counter := 1; ; counter++ {
		variant := fmt.Sprintf("%s_%d%s", stem, counter, ext)
		exists, err := Exists(variant)
		if err != nil {
			return "", err
		}
		if !exists {
			return variant, nil
		}
	}
}

// UniquePathTimestamp disambiguates with a wall-clock suffix instead of a
// counter, for flows where concurrent runs are a concern. The timestamped
// candidate is still existence-checked; on the (unlikely) second collision it
// falls back to the counter scheme.
func UniquePathTimestamp(candidate string, now time.Time) (string, error) {
	exists, err := Exists(candidate)
	if err != nil {
		return "", err
	}
	if !exists {
		return candidate, nil
	}

	ext := filepath.Ext(candidate)
	stem := strings.TrimSuffix(candidate, ext)
	stamped := fmt.Sprintf("%s_%s%s", stem, now.Format("20060102_150405"), ext)
	exists, err = Exists(stamped)
	if err != nil {
		return "", err
	}
	if !exists {
		return stamped, nil
	}
	return UniquePath(stamped)
}

// Exists reports whether anything exists at path.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// SamePath reports whether a and b resolve to the same file after symlink
// evaluation. Falls back to cleaned-path comparison when either side cannot
// be resolved.
func SamePath(a, b string) bool {
	resolvedA, errA := filepath.EvalSymlinks(a)
	resolvedB, errB := filepath.EvalSymlinks(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return resolvedA == resolvedB
}

// MoveFile relocates src to dst, creating parent directories as needed.
// Rename is attempted first; cross-device moves fall back to copy-then-remove.
func MoveFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}

	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		if copyErr := CopyFile(src, dst); copyErr != nil {
			return copyErr
		}
		if removeErr := os.Remove(src); removeErr != nil {
			return fmt.Errorf("remove source after copy: %w", removeErr)
		}
		return nil
	}
	return err
}

// CopyFile streams src to dst with default permissions (0o644).
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
