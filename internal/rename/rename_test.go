package rename_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"photokeep/internal/capture"
	"photokeep/internal/logging"
	"photokeep/internal/rename"
	"photokeep/internal/report"
	"photokeep/internal/testsupport"
)

func TestStamped(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"20230520_100000_img.jpg", true},
		{"20230520_sys_img.jpg", true},
		{"2023052_img.jpg", false},
		{"img_20230520.jpg", false},
		{"abcdefgh_img.jpg", false},
		{"20230520.jpg", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := rename.Stamped(tc.name); got != tc.want {
			t.Errorf("Stamped(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestNewName(t *testing.T) {
	at := time.Date(2023, time.May, 20, 10, 0, 0, 0, time.Local)

	exif := capture.Resolved{Time: at, Provenance: capture.ProvenanceEXIF}
	if got := rename.NewName("img.jpg", exif); got != "20230520_100000_img.jpg" {
		t.Errorf("NewName exif = %q", got)
	}

	sys := capture.Resolved{Time: at, Provenance: capture.ProvenanceSystem}
	if got := rename.NewName("img.jpg", sys); got != "20230520_100000_sys_img.jpg" {
		t.Errorf("NewName sys = %q", got)
	}
}

func sysResolver() *capture.Resolver {
	return capture.NewResolverWithReader(func(string) (time.Time, error) {
		return time.Time{}, capture.ErrNoDateField
	})
}

func TestRunStampsByModTime(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	mtime := time.Date(2023, time.May, 20, 10, 0, 0, 0, time.Local)
	testsupport.WriteFileAt(t, filepath.Join(cfg.Paths.TargetDir, "rename_me.jpg"), mtime)

	ren := rename.NewWithResolver(cfg, logging.NewNop(), sysResolver())
	summary, err := ren.Run(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Success != 1 {
		t.Fatalf("success = %d, want 1", summary.Success)
	}

	want := filepath.Join(cfg.Paths.TargetDir, "20230520_100000_sys_rename_me.jpg")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected %s: %v", want, err)
	}
}

func TestRunLeavesStampedFilesAlone(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	stamped := filepath.Join(cfg.Paths.TargetDir, "20230520_100000_img.jpg")
	testsupport.WriteFile(t, stamped)

	ren := rename.NewWithResolver(cfg, logging.NewNop(), sysResolver())
	summary, err := ren.Run(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Success != 0 || summary.Skipped != 1 {
		t.Fatalf("summary = %d success %d skipped, want 0/1", summary.Success, summary.Skipped)
	}
	if _, err := os.Stat(stamped); err != nil {
		t.Fatalf("stamped file must remain: %v", err)
	}
}

func TestRunResolvesCollisions(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	mtime := time.Date(2023, time.May, 20, 10, 0, 0, 0, time.Local)
	testsupport.WriteFileAt(t, filepath.Join(cfg.Paths.TargetDir, "img.jpg"), mtime)
	testsupport.WriteFile(t, filepath.Join(cfg.Paths.TargetDir, "20230520_100000_sys_img.jpg"))

	ren := rename.NewWithResolver(cfg, logging.NewNop(), sysResolver())
	summary, err := ren.Run(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	// The pre-existing stamped file is skipped; the fresh one gets a variant.
	if summary.Success != 1 || summary.Skipped != 1 {
		t.Fatalf("summary = %d success %d skipped, want 1/1", summary.Success, summary.Skipped)
	}

	variant := filepath.Join(cfg.Paths.TargetDir, "20230520_100000_sys_img_1.jpg")
	if _, err := os.Stat(variant); err != nil {
		t.Fatalf("expected collision variant at %s: %v", variant, err)
	}
}

func TestRunDryRunLeavesNamesAlone(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	mtime := time.Date(2023, time.May, 20, 10, 0, 0, 0, time.Local)
	original := filepath.Join(cfg.Paths.TargetDir, "img.jpg")
	testsupport.WriteFileAt(t, original, mtime)

	ren := rename.NewWithResolver(cfg, logging.NewNop(), sysResolver())
	summary, err := ren.Run(context.Background(), true)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Success != 1 {
		t.Fatalf("success = %d, want 1", summary.Success)
	}
	if _, err := os.Stat(original); err != nil {
		t.Fatalf("dry run must not rename: %v", err)
	}
}

func TestRunMissingRoot(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Paths.TargetDir = filepath.Join(cfg.Paths.TargetDir, "missing")

	ren := rename.NewWithResolver(cfg, logging.NewNop(), sysResolver())
	if _, err := ren.Run(context.Background(), false); !errors.Is(err, report.ErrMissingRoot) {
		t.Fatalf("expected ErrMissingRoot, got %v", err)
	}
}
