package utils

import (
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Add.asm", "Add.hack"},
		{"prog/Max.asm", "prog/Max.hack"},
		{"Pong.ASM", "Pong.hack"},
		{"noext", "noext.hack"},
		{"weird.txt", "weird.hack"},
		{"dir.v2/Rect.asm", "dir.v2/Rect.hack"},
	}
	for _, tc := range tests {
		if got := OutputPath(tc.in); got != tc.want {
			t.Errorf("OutputPath(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestGetPathInfo(t *testing.T) {
	full, dir, err := GetPathInfo("some/rel/file.asm")
	if err != nil {
		t.Fatalf("GetPathInfo returned %v", err)
	}
	if !filepath.IsAbs(full) {
		t.Errorf("full path %q is not absolute", full)
	}
	if dir != filepath.Dir(full) {
		t.Errorf("parent dir %q does not match %q", dir, filepath.Dir(full))
	}
}
