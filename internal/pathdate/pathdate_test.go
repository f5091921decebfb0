package pathdate

import (
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name  string
		path  string
		year  int
		month int
		ok    bool
	}{
		{"year dash month", filepath.Join("archive", "2023-5", "photo.jpg"), 2023, 5, true},
		{"year space month", filepath.Join("archive", "2023 05", "photo.jpg"), 2023, 5, true},
		{"year dot month", filepath.Join("archive", "1998.12", "photo.jpg"), 1998, 12, true},
		{"year only defaults to january", filepath.Join("archive", "2023", "photo.jpg"), 2023, 1, true},
		{"month under year", filepath.Join("2000", "2", "photo.jpg"), 2000, 2, true},
		{"embedded year month", filepath.Join("archive", "2008-7 北京", "photo.jpg"), 2008, 7, true},
		{"no pattern", filepath.Join("archive", "vacation", "photo.jpg"), 0, 0, false},
		{"month without year grandparent", filepath.Join("misc", "7", "photo.jpg"), 0, 0, false},
		{"long number is not a year", filepath.Join("archive", "20230501", "photo.jpg"), 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			year, month, ok := Parse(tc.path)
			if ok != tc.ok || year != tc.year || month != tc.month {
				t.Fatalf("Parse(%q) = (%d, %d, %v), want (%d, %d, %v)",
					tc.path, year, month, ok, tc.year, tc.month, tc.ok)
			}
		})
	}
}

func TestValid(t *testing.T) {
	cases := []struct {
		year, month int
		want        bool
	}{
		{2023, 5, true},
		{1901, 1, true},
		{2029, 12, true},
		{1900, 6, false},
		{2030, 6, false},
		{1850, 3, false},
		{2023, 0, false},
		{2023, 13, false},
	}
	for _, tc := range cases {
		if got := Valid(tc.year, tc.month); got != tc.want {
			t.Errorf("Valid(%d, %d) = %v, want %v", tc.year, tc.month, got, tc.want)
		}
	}
}
