// Package location pulls human-location hints out of folder names. Legacy
// archives in scope name their folders like "2008-7 北京" where the CJK run is
// the place the photos were taken.
package location

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Extract returns all maximal runs of Han characters in folderName
// concatenated without separators, or "" when the name carries none.
// Names are NFC-normalized first so decomposed forms produced by some
// filesystems compare the same as composed input.
func Extract(folderName string) string {
	normalized := norm.NFC.String(folderName)

	var hint strings.Builder
	for _, r := range normalized {
		if unicode.Is(unicode.Han, r) {
			hint.WriteRune(r)
		}
	}
	return hint.String()
}

// FromAncestors tries the immediate parent folder name first and falls back
// to the grandparent, matching how scanned archives nest location folders.
func FromAncestors(parent, grandparent string) string {
	if hint := Extract(parent); hint != "" {
		return hint
	}
	return Extract(grandparent)
}
