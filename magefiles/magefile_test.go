//go:build mage

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCountGoLines(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.go", "package main\n\nfunc main() {}\n")
	writeFile(t, dir, "a_test.go", "package main\n\nfunc TestA(t *testing.T) {}\n")
	writeFile(t, dir, "notes.txt", "not go\n")

	prod, err := countGoLines(dir, false)
	if err != nil {
		t.Fatalf("countGoLines: %v", err)
	}
	if prod != 2 {
		t.Errorf("production lines = %d, want 2", prod)
	}

	tests, err := countGoLines(dir, true)
	if err != nil {
		t.Fatalf("countGoLines: %v", err)
	}
	if tests != 2 {
		t.Errorf("test lines = %d, want 2", tests)
	}
}

func TestCountDocWordsFindsRootMarkdown(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "one two three\n")
	writeFile(t, dir, "notes.yaml", "four five\n")
	writeFile(t, dir, "code.go", "package main\n")

	got, err := countDocWords(dir)
	if err != nil {
		t.Fatalf("countDocWords: %v", err)
	}
	if got != 5 {
		t.Errorf("doc words = %d, want 5", got)
	}
}

func TestCountDocWordsMissingDir(t *testing.T) {
	got, err := countDocWords(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("countDocWords: %v", err)
	}
	if got != 0 {
		t.Errorf("doc words = %d, want 0", got)
	}
}
