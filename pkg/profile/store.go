package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	pserr "github.com/provide-io/padring/pkg/profile/errors"
)

// Store owns the current-state pointer and path resolution against the
// profile tree. The pointer is the only mutable global of the whole system:
// a single symlink inside the profile root.
type Store struct {
	paths  *Paths
	logger hclog.Logger
}

// NewStore creates a Store over a profile root.
func NewStore(paths *Paths, logger hclog.Logger) *Store {
	return &Store{paths: paths, logger: logger}
}

// Paths returns the profile path layout the store operates on.
func (s *Store) Paths() *Paths {
	return s.paths
}

// Current returns the canonical path of the active state, or "" when the
// pointer does not exist. A pointer that exists but is not a symlink to a
// directory is an integrity error; callers treat it as fatal.
func (s *Store) Current() (string, error) {
	pointer := s.paths.Pointer()

	info, err := os.Lstat(pointer)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", pserr.ErrPointerCorrupt, pointer, err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return "", fmt.Errorf("%w: %s", pserr.ErrPointerCorrupt, pointer)
	}

	target, err := filepath.EvalSymlinks(pointer)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", pserr.ErrPointerCorrupt, pointer, err)
	}
	ti, err := os.Stat(target)
	if err != nil || !ti.IsDir() {
		return "", fmt.Errorf("%w: %s -> %s", pserr.ErrPointerCorrupt, pointer, target)
	}

	return target, nil
}

// SetCurrent repoints the current-state symlink at target. Remove-then-create
// is not crash-atomic, but the pointer is never left as anything other than
// a symlink or absent.
func (s *Store) SetCurrent(target string) error {
	pointer := s.paths.Pointer()

	if err := os.Remove(pointer); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear pointer %s: %w", pointer, err)
	}
	if err := os.Symlink(target, pointer); err != nil {
		return fmt.Errorf("failed to repoint %s at %s: %w", pointer, target, err)
	}

	s.logger.Debug("📌 Repointed current state", "target", target)
	return nil
}

// Resolve maps a state spec to a canonical absolute path. A leading path
// separator roots the spec at the profile root, anything else is relative to
// base. Symlinks are resolved so that re-entering a ring through a symlink
// collapses onto the same canonical node.
func (s *Store) Resolve(base, spec string) string {
	var joined string
	if strings.HasPrefix(spec, string(filepath.Separator)) {
		joined = filepath.Join(s.paths.Root(), spec)
	} else {
		joined = filepath.Join(base, spec)
	}

	canonical, err := filepath.EvalSymlinks(joined)
	if err != nil {
		// Nonexistent targets stay as-is; activation treats them as a no-op.
		return filepath.Clean(joined)
	}
	return canonical
}
