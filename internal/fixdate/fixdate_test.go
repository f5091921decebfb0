package fixdate_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"photokeep/internal/fixdate"
	"photokeep/internal/logging"
	"photokeep/internal/report"
	"photokeep/internal/testsupport"
)

type fakeWriter struct {
	stamped map[string]time.Time
	err     error
}

func newFakeWriter() *fakeWriter {
	return &fakeWriter{stamped: make(map[string]time.Time)}
}

func (w *fakeWriter) WriteCaptureDate(path string, at time.Time) error {
	if w.err != nil {
		return w.err
	}
	w.stamped[path] = at
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestInferredDate(t *testing.T) {
	got := fixdate.InferredDate(2008, 7)
	want := time.Date(2008, time.July, 26, 12, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("InferredDate = %v, want %v", got, want)
	}
}

func TestRunStampsDatedFolders(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	path := filepath.Join(cfg.Paths.FixDir, "2008-7 北京", "scan_001.jpg")
	testsupport.WriteFile(t, path)

	writer := newFakeWriter()
	fixer := fixdate.New(cfg, logging.NewNop(), writer)
	summary, err := fixer.Run(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Success != 1 {
		t.Fatalf("success = %d, want 1", summary.Success)
	}

	want := time.Date(2008, time.July, 26, 12, 0, 0, 0, time.Local)
	if got := writer.stamped[path]; !got.Equal(want) {
		t.Fatalf("stamped %v, want %v", got, want)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(want) {
		t.Fatalf("mtime = %v, want %v", info.ModTime(), want)
	}
}

func TestRunSkipsUndatedAndImplausibleFolders(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteFile(t, filepath.Join(cfg.Paths.FixDir, "holiday", "scan_001.jpg"))
	testsupport.WriteFile(t, filepath.Join(cfg.Paths.FixDir, "2077-5", "scan_002.jpg"))
	testsupport.WriteFile(t, filepath.Join(cfg.Paths.FixDir, "2008-13", "scan_003.jpg"))

	writer := newFakeWriter()
	fixer := fixdate.New(cfg, logging.NewNop(), writer)
	summary, err := fixer.Run(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Success != 0 || summary.Skipped != 3 {
		t.Fatalf("summary = %d success %d skipped, want 0/3", summary.Success, summary.Skipped)
	}
	if len(writer.stamped) != 0 {
		t.Fatalf("nothing should be stamped, got %v", writer.stamped)
	}
}

func TestRunSkipsNonJPEG(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteFile(t, filepath.Join(cfg.Paths.FixDir, "2008-7", "scan.png"))

	writer := newFakeWriter()
	fixer := fixdate.New(cfg, logging.NewNop(), writer)
	summary, err := fixer.Run(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Success != 0 || summary.Skipped != 1 {
		t.Fatalf("summary = %d success %d skipped, want 0/1", summary.Success, summary.Skipped)
	}
}

func TestRunIsolatesWriterFailures(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteFile(t, filepath.Join(cfg.Paths.FixDir, "2008-7", "bad.jpg"))
	testsupport.WriteFile(t, filepath.Join(cfg.Paths.FixDir, "2009", "good.jpg"))

	writer := newFakeWriter()
	writer.err = errors.New("exiftool unavailable")
	fixer := fixdate.New(cfg, logging.NewNop(), writer)
	summary, err := fixer.Run(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Failed() != 2 {
		t.Fatalf("failed = %d, want 2", summary.Failed())
	}
}

func TestRunDryRunWritesNothing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	path := filepath.Join(cfg.Paths.FixDir, "2008-7", "scan.jpg")
	testsupport.WriteFile(t, path)

	writer := newFakeWriter()
	fixer := fixdate.New(cfg, logging.NewNop(), writer)
	summary, err := fixer.Run(context.Background(), true)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Success != 1 {
		t.Fatalf("success = %d, want 1", summary.Success)
	}
	if len(writer.stamped) != 0 {
		t.Fatalf("dry run must not write metadata, got %v", writer.stamped)
	}
}

func TestRunMissingRoot(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Paths.FixDir = filepath.Join(cfg.Paths.FixDir, "missing")

	fixer := fixdate.New(cfg, logging.NewNop(), newFakeWriter())
	if _, err := fixer.Run(context.Background(), false); !errors.Is(err, report.ErrMissingRoot) {
		t.Fatalf("expected ErrMissingRoot, got %v", err)
	}
}
