package fixdate

import (
	"fmt"
	"time"

	"github.com/barasher/go-exiftool"
)

// exifTimeLayout is the fixed timestamp format EXIF date fields use.
const exifTimeLayout = "2006:01:02 15:04:05"

// dateFields are the metadata fields rewritten on every fix so that any
// downstream reader sees the same capture date regardless of which field it
// prefers.
var dateFields = []string{"DateTimeOriginal", "DateTimeDigitized", "DateTime"}

// MetadataWriter stamps a capture date into a file's embedded metadata.
type MetadataWriter interface {
	WriteCaptureDate(path string, at time.Time) error
	Close() error
}

// ExiftoolWriter writes metadata through a long-lived exiftool process.
type ExiftoolWriter struct {
	et *exiftool.Exiftool
}

// NewExiftoolWriter spawns the exiftool sidecar. Fails when the binary is not
// installed.
func NewExiftoolWriter() (*ExiftoolWriter, error) {
	et, err := exiftool.NewExiftool()
	if err != nil {
		return nil, fmt.Errorf("start exiftool: %w", err)
	}
	return &ExiftoolWriter{et: et}, nil
}

// WriteCaptureDate rewrites every date field in the file's metadata to at.
func (w *ExiftoolWriter) WriteCaptureDate(path string, at time.Time) error {
	fm := exiftool.EmptyFileMetadata()
	fm.File = path
	value := at.Format(exifTimeLayout)
	for _, field := range dateFields {
		fm.SetString(field, value)
	}

	batch := []exiftool.FileMetadata{fm}
	w.et.WriteMetadata(batch)
	if err := batch[0].Err; err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}

// Close terminates the exiftool process.
func (w *ExiftoolWriter) Close() error {
	return w.et.Close()
}
