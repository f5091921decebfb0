package capture

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"photokeep/internal/media"
)

// Provenance identifies which strategy produced a resolved date.
type Provenance int

const (
	// ProvenanceEXIF means the date came from embedded capture metadata and
	// is considered authoritative.
	ProvenanceEXIF Provenance = iota
	// ProvenanceSystem means the date is the file's modification time, a
	// fallback guess.
	ProvenanceSystem
	// ProvenancePath means the date was inferred from ancestor folder names
	// by the legacy fix flow.
	ProvenancePath
)

// Tag returns the filename prefix that preserves provenance through renames.
// Authoritative dates carry no marker.
func (p Provenance) Tag() string {
	switch p {
	case ProvenanceSystem:
		return "sys_"
	default:
		return ""
	}
}

func (p Provenance) String() string {
	switch p {
	case ProvenanceEXIF:
		return "exif"
	case ProvenanceSystem:
		return "sys"
	case ProvenancePath:
		return "path"
	default:
		return "unknown"
	}
}

// Resolved pairs a capture date with its provenance.
type Resolved struct {
	Time       time.Time
	Provenance Provenance
}

// ErrNoDateField marks metadata that decoded fine but carries no usable
// capture-time field. Distinguished from I/O and decode errors so callers
// and tests can tell the failure modes apart.
var ErrNoDateField = errors.New("no capture date field in metadata")

// exifTimeLayout is the fixed timestamp format EXIF date fields use.
const exifTimeLayout = "2006:01:02 15:04:05"

// Resolver runs the date strategy cascade. The metadata reader is injectable
// for tests.
type Resolver struct {
	readMetadata func(path string) (time.Time, error)
}

// NewResolver returns a resolver backed by real EXIF decoding.
func NewResolver() *Resolver {
	return &Resolver{readMetadata: MetadataDate}
}

// NewResolverWithReader allows injecting the metadata strategy (used in tests).
func NewResolverWithReader(read func(path string) (time.Time, error)) *Resolver {
	return &Resolver{readMetadata: read}
}

// Resolve produces the best available capture date for the file at path.
// Strategy order, first success wins:
//
//  1. EXIF capture metadata, image extensions only.
//  2. Filesystem modification time.
//
// Any metadata failure (unreadable file, undecodable container, missing
// field, malformed timestamp) falls through to the next strategy. The
// returned error is non-nil only when the modification time is also
// unreadable; callers skip such files and keep scanning.
func (r *Resolver) Resolve(path string, images media.Set) (Resolved, error) {
	if images.Contains(filepath.Ext(path)) {
		if captured, err := r.readMetadata(path); err == nil {
			return Resolved{Time: captured, Provenance: ProvenanceEXIF}, nil
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return Resolved{}, fmt.Errorf("read modification time: %w", err)
	}
	return Resolved{Time: info.ModTime(), Provenance: ProvenanceSystem}, nil
}

// MetadataDate reads the embedded capture time from the image at path. The
// original-capture field is preferred; the generic date field is the
// fallback. Timestamps are interpreted in local time, matching how cameras
// record them without zone information.
func MetadataDate(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode metadata: %w", err)
	}

	for _, field := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTime} {
		tag, err := x.Get(field)
		if err != nil {
			continue
		}
		value, err := tag.StringVal()
		if err != nil {
			continue
		}
		captured, err := time.ParseInLocation(exifTimeLayout, value, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse capture time %q: %w", value, err)
		}
		return captured, nil
	}

	return time.Time{}, ErrNoDateField
}
