//go:build !tinygo

package main

import (
	"path/filepath"
	"strings"
	"testing"

	"logic/hal"
)

func TestParseSetting(t *testing.T) {
	tests := []struct {
		in      string
		want    setting
		wantErr bool
	}{
		{in: "intensity=64", want: setting{"intensity", 64}},
		{in: "scene= -1", want: setting{"scene", -1}},
		{in: "=3", wantErr: true},
		{in: "scene", wantErr: true},
		{in: "scene=x", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseSetting(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("parseSetting(%q) err = %v; wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Fatalf("parseSetting(%q) = %+v; want %+v", tt.in, got, tt.want)
		}
	}
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logic.flash")
	var sb strings.Builder

	sets := settings{{"intensity", 64}, {"scene", 1}}
	if err := run(&sb, path, hal.HostFlashSizeBytes, false, sets, false); err != nil {
		t.Fatalf("run set: %v", err)
	}
	if err := run(&sb, path, hal.HostFlashSizeBytes, false, settings{{"scene", 2}}, true); err != nil {
		t.Fatalf("run list: %v", err)
	}
	if got, want := sb.String(), "intensity=64\nscene=2\n"; got != want {
		t.Fatalf("list = %q; want %q", got, want)
	}

	sb.Reset()
	if err := run(&sb, path, hal.HostFlashSizeBytes, true, nil, true); err != nil {
		t.Fatalf("run fresh: %v", err)
	}
	if sb.Len() != 0 {
		t.Fatalf("list after -fresh = %q; want empty", sb.String())
	}
}
