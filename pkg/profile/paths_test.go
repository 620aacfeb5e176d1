package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathsLayout(t *testing.T) {
	root := t.TempDir()
	p := NewPaths(root)

	if p.Pointer() != filepath.Join(root, "this") {
		t.Errorf("Pointer = %q", p.Pointer())
	}
	if p.Init() != filepath.Join(root, "init") {
		t.Errorf("Init = %q", p.Init())
	}
	if p.BlankIcon() != filepath.Join(root, "blank.raw") {
		t.Errorf("BlankIcon = %q", p.BlankIcon())
	}
	if !p.RootExists() {
		t.Error("RootExists = false for existing root")
	}
	if NewPaths(filepath.Join(root, "missing")).RootExists() {
		t.Error("RootExists = true for missing root")
	}
}

func TestPathsLefthanded(t *testing.T) {
	root := t.TempDir()
	p := NewPaths(root)

	if p.Lefthanded() {
		t.Error("Lefthanded = true without marker")
	}
	if err := os.WriteFile(filepath.Join(root, LefthandedFlag), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if !p.Lefthanded() {
		t.Error("Lefthanded = false with marker present")
	}
}
