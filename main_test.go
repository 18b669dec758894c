package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunAssemblesFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "add.asm")
	if err := os.WriteFile(src, []byte("@2\nD=A\n"), 0644); err != nil {
		t.Fatal(err)
	}

	outPath = ""
	dumpSymbols = false
	if err := run([]string{src}); err != nil {
		t.Fatalf("run returned %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "add.hack"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if got, want := string(data), "0000000000000010\n1110110000010000\n"; got != want {
		t.Errorf("output file holds %q; want %q", got, want)
	}
}

// A relative input path is resolved against the working directory, and
// the default output lands next to the resolved source.
func TestRunResolvesRelativePath(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "loop.asm"), []byte("(LOOP)\n@LOOP\n0;JMP\n"), 0644); err != nil {
		t.Fatal(err)
	}
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldwd) })

	outPath = ""
	dumpSymbols = false
	if err := run([]string{"loop.asm"}); err != nil {
		t.Fatalf("run returned %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "loop.hack"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if got, want := string(data), "0000000000000000\n1110101010000111\n"; got != want {
		t.Errorf("output file holds %q; want %q", got, want)
	}
}

func TestRunMissingInput(t *testing.T) {
	outPath = ""
	dumpSymbols = false
	if err := run([]string{filepath.Join(t.TempDir(), "nope.asm")}); err == nil {
		t.Errorf("run with a missing input file returned nil error")
	}
}

func TestRunReportsDroppedInstructions(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.asm")
	if err := os.WriteFile(src, []byte("@1\nD=X\n"), 0644); err != nil {
		t.Fatal(err)
	}

	outPath = ""
	dumpSymbols = false
	if err := run([]string{src}); err == nil {
		t.Errorf("run returned nil error for a source with a dropped instruction")
	}

	// The valid line still made it out.
	data, err := os.ReadFile(filepath.Join(dir, "bad.hack"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if got, want := string(data), "0000000000000001\n"; got != want {
		t.Errorf("output file holds %q; want %q", got, want)
	}
}
