// Package pathdate infers a year and month for files inside legacy scanned
// archives whose only dating signal is the folder layout. Metadata is not
// expected to exist for these files; the folder names were assigned by hand
// when the originals were digitized.
package pathdate

import (
	"path/filepath"
	"regexp"
	"strconv"
)

// yearMonthPattern matches a 4-digit year followed by a 1-2 digit month
// separated by '-', '.', or whitespace, e.g. "2023-5" or "2023 05".
var yearMonthPattern = regexp.MustCompile(`(\d{4})[-.\s]+(\d{1,2})`)

var (
	yearOnlyPattern = regexp.MustCompile(`^\d{4}$`)
	monthPattern    = regexp.MustCompile(`^\d{1,2}$`)
)

// Year/month bounds accepted by Valid. Scans of pre-1901 material do not
// exist in these archives, so anything outside the window is a mis-parse.
const (
	minYear = 1900
	maxYear = 2030
)

// Parse infers (year, month) for the file at path from its ancestor folder
// names. Strategies, first match wins:
//
//  1. Parent folder contains "YYYY-M" (also "." or space separated).
//  2. Parent folder is exactly "YYYY": January is assumed.
//  3. Parent folder is a bare 1-2 digit month under a "YYYY" grandparent.
//
// Returns ok=false when no strategy matches. Callers must still range-check
// the result with Valid before acting on it.
func Parse(path string) (year, month int, ok bool) {
	parent := filepath.Base(filepath.Dir(path))
	grandparent := filepath.Base(filepath.Dir(filepath.Dir(path)))
	return parseFolders(parent, grandparent)
}

func parseFolders(parent, grandparent string) (int, int, bool) {
	if m := yearMonthPattern.FindStringSubmatch(parent); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return year, month, true
	}

	if yearOnlyPattern.MatchString(parent) {
		year, _ := strconv.Atoi(parent)
		return year, 1, true
	}

	if monthPattern.MatchString(parent) && yearOnlyPattern.MatchString(grandparent) {
		year, _ := strconv.Atoi(grandparent)
		month, _ := strconv.Atoi(parent)
		return year, month, true
	}

	return 0, 0, false
}

// Valid reports whether a parsed (year, month) pair is plausible. Out-of-range
// pairs are discarded by callers, never clamped.
func Valid(year, month int) bool {
	return year > minYear && year < maxYear && month >= 1 && month <= 12
}
