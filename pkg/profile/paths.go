package profile

import (
	"os"
	"path/filepath"
)

// Paths manages the well-known locations inside a profile root.
type Paths struct {
	root string
}

// NewPaths creates a new Paths for the given profile root directory.
func NewPaths(root string) *Paths {
	return &Paths{root: root}
}

// Root returns the profile root directory.
func (p *Paths) Root() string {
	return p.root
}

// Pointer returns the current-state symlink path.
func (p *Paths) Pointer() string {
	return filepath.Join(p.root, PointerName)
}

// Init returns the bootstrap state directory path.
func (p *Paths) Init() string {
	return filepath.Join(p.root, InitStateName)
}

// Lefthanded reports whether the lefthanded marker file is present.
func (p *Paths) Lefthanded() bool {
	_, err := os.Stat(filepath.Join(p.root, LefthandedFlag))
	return err == nil
}

// BlankIcon returns the path of the cached default icon.
func (p *Paths) BlankIcon() string {
	return filepath.Join(p.root, BlankIconName)
}

// RootExists checks if the profile root exists
func (p *Paths) RootExists() bool {
	info, err := os.Stat(p.root)
	return err == nil && info.IsDir()
}
