package media

import "testing"

func TestNewSetNormalizes(t *testing.T) {
	set := NewSet([]string{".JPG", "png", "  .heic ", ""})

	for _, ext := range []string{".jpg", ".png", ".heic", "JPG", "png"} {
		if !set.Contains(ext) {
			t.Fatalf("expected set to contain %q", ext)
		}
	}
	if set.Contains(".gif") {
		t.Fatal("did not expect .gif")
	}
	if set.Contains("") {
		t.Fatal("empty extension should never match")
	}
}

func TestClassifier(t *testing.T) {
	c := NewClassifier([]string{".jpg", ".heic"}, []string{".mp4", ".mov"})

	cases := []struct {
		path    string
		isImage bool
		isVideo bool
	}{
		{"/photos/IMG_0001.JPG", true, false},
		{"/photos/clip.mp4", false, true},
		{"/photos/notes.txt", false, false},
		{"/photos/archive", false, false},
	}
	for _, tc := range cases {
		if got := c.IsImage(tc.path); got != tc.isImage {
			t.Errorf("IsImage(%q) = %v, want %v", tc.path, got, tc.isImage)
		}
		if got := c.IsVideo(tc.path); got != tc.isVideo {
			t.Errorf("IsVideo(%q) = %v, want %v", tc.path, got, tc.isVideo)
		}
		if got := c.IsMedia(tc.path); got != (tc.isImage || tc.isVideo) {
			t.Errorf("IsMedia(%q) = %v", tc.path, got)
		}
	}
}
