// Package testsupport holds shared helpers for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// MkdirAll creates the directory and parents, failing the test on error.
func MkdirAll(t testing.TB, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

// WriteFile creates path (and parents) with small placeholder content.
func WriteFile(t testing.TB, path string) {
	t.Helper()
	MkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteFileSized fills path with the requested number of bytes.
func WriteFileSized(t testing.TB, path string, size int64) {
	t.Helper()
	MkdirAll(t, filepath.Dir(path))
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = 0x42
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteFileAt creates path and pins its modification time.
func WriteFileAt(t testing.TB, path string, mtime time.Time) {
	t.Helper()
	WriteFile(t, path)
	Touch(t, path, mtime)
}

// Touch sets the access and modification times of an existing file.
func Touch(t testing.TB, path string, mtime time.Time) {
	t.Helper()
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}
