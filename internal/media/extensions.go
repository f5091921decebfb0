// Package media classifies files by extension into the configured image and
// video sets.
package media

import (
	"path/filepath"
	"strings"
)

// Set is a lookup of lowercase extensions including the leading dot.
type Set map[string]struct{}

// NewSet normalizes the given extensions (lowercased, dot-prefixed) into a Set.
func NewSet(extensions []string) Set {
	set := make(Set, len(extensions))
	for _, ext := range extensions {
		normalized := strings.ToLower(strings.TrimSpace(ext))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		set[normalized] = struct{}{}
	}
	return set
}

// Contains reports whether ext (any case, with or without dot) is in the set.
func (s Set) Contains(ext string) bool {
	normalized := strings.ToLower(strings.TrimSpace(ext))
	if normalized != "" && !strings.HasPrefix(normalized, ".") {
		normalized = "." + normalized
	}
	_, ok := s[normalized]
	return ok
}

// Classifier partitions configured extensions into image, video, and combined
// sets.
type Classifier struct {
	Image Set
	Video Set
}

// NewClassifier builds a classifier from the configured extension lists.
func NewClassifier(imageExtensions, videoExtensions []string) Classifier {
	return Classifier{
		Image: NewSet(imageExtensions),
		Video: NewSet(videoExtensions),
	}
}

// IsImage reports whether the file at path has a configured image extension.
func (c Classifier) IsImage(path string) bool {
	return c.Image.Contains(filepath.Ext(path))
}

// IsVideo reports whether the file at path has a configured video extension.
func (c Classifier) IsVideo(path string) bool {
	return c.Video.Contains(filepath.Ext(path))
}

// IsMedia reports whether the file at path is in either configured set.
func (c Classifier) IsMedia(path string) bool {
	return c.IsImage(path) || c.IsVideo(path)
}
