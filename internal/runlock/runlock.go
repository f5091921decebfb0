// Package runlock serializes live runs against the same directory root.
// Concurrent instances are not a supported configuration; the lock makes a
// second instance fail fast instead of racing the first one's moves.
package runlock

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrHeld indicates another live run already holds the lock for this root.
var ErrHeld = errors.New("another photokeep run is already processing this directory")

// Lock is a per-root advisory file lock.
type Lock struct {
	path string
	lock *flock.Flock
}

// ForRoot returns the lock guarding the given directory root. The lock file
// lives under the system temp directory so it never pollutes the photo tree.
func ForRoot(root string) *Lock {
	digest := sha256.Sum256([]byte(filepath.Clean(root)))
	path := filepath.Join(os.TempDir(), fmt.Sprintf("photokeep-%x.lock", digest[:8]))
	return &Lock{path: path, lock: flock.New(path)}
}

// Acquire takes the lock without blocking. Returns ErrHeld when another
// process owns it.
func (l *Lock) Acquire() error {
	ok, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return ErrHeld
	}
	return nil
}

// Release drops the lock. Safe to call when the lock was never acquired.
func (l *Lock) Release() error {
	return l.lock.Unlock()
}

// Path reports the lock file location, for logging.
func (l *Lock) Path() string {
	return l.path
}
