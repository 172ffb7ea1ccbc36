package buildinfo

import "testing"

func TestShortLong(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)

	tests := []struct {
		version, commit, date string
		short, long           string
	}{
		{"dev", "unknown", "unknown", "dev", "dev"},
		{"dev", "abc123", "unknown", "abc123", "abc123"},
		{"v1.0.0", "abc123", "2026-10-18", "v1.0.0", "v1.0.0 (abc123) built 2026-10-18"},
		{"", "", "", "dev", "dev"},
	}
	for _, tt := range tests {
		Version, Commit, Date = tt.version, tt.commit, tt.date
		if got := Short(); got != tt.short {
			t.Fatalf("Short() with %q/%q = %q; want %q", tt.version, tt.commit, got, tt.short)
		}
		if got := Long(); got != tt.long {
			t.Fatalf("Long() with %q/%q/%q = %q; want %q", tt.version, tt.commit, tt.date, got, tt.long)
		}
	}
}
