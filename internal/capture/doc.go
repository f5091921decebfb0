// Package capture resolves a best-effort capture date for a media file.
//
// Resolution is an ordered strategy cascade: embedded EXIF capture time for
// image files, then the filesystem modification time for everything else or
// when metadata is unreadable. Each resolved date carries a provenance marker
// so downstream naming can distinguish authoritative dates from guesses.
package capture
