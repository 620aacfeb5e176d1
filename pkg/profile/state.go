package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	pserr "github.com/provide-io/padring/pkg/profile/errors"
)

// Binding is one hotkey entry of a state. The three action facets are not
// mutually exclusive on disk; the router checks each one independently, so
// all of them are captured here.
type Binding struct {
	Button int    // button index 0..8
	Name   string // directory entry name, e.g. "3-next"
	Path   string // absolute path of the entry

	IsDir  bool     // names a sub-state (directly or through a symlink)
	IsExec bool     // executable regular file, run as a subprocess
	Keys   []string // key symbols after the first colon, nil when none
}

// State is the in-memory model of one state directory. The directory tree
// stays the persistence format; this is only a lazily loaded view of it.
type State struct {
	Path     string // canonical path, the state's identity
	Bindings map[int][]Binding
	Status   int    // ring LED selector, StatusOff when no _status file
	InitHook string // path of the executable _init hook, "" when absent
}

// LoadState reads a state directory into its runtime representation.
// Malformed entries are skipped rather than rejected; a profile is never
// pre-validated.
func LoadState(dir string) (*State, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", pserr.ErrNotAState, dir, err)
	}

	st := &State{
		Path:     dir,
		Bindings: make(map[int][]Binding),
		Status:   StatusOff,
	}

	for _, entry := range entries {
		name := entry.Name()
		full := filepath.Join(dir, name)

		switch name {
		case StatusFileName:
			st.Status = readStatus(full)
			continue
		case InitHookName:
			if info, err := os.Stat(full); err == nil && !info.IsDir() && isExecutable(info.Mode()) {
				st.InitHook = full
			}
			continue
		}

		b, ok := parseBinding(name, full)
		if !ok {
			continue
		}
		st.Bindings[b.Button] = append(st.Bindings[b.Button], b)
	}

	return st, nil
}

// parseBinding recognizes entries named "<digit>-<label>" with digit in 0..8.
func parseBinding(name, full string) (Binding, bool) {
	if len(name) < 2 || name[1] != '-' {
		return Binding{}, false
	}
	if name[0] < '0' || name[0] > '8' {
		return Binding{}, false
	}

	b := Binding{
		Button: int(name[0] - '0'),
		Name:   name,
		Path:   full,
	}

	// Stat follows symlinks, which is what makes symlinked ring states work.
	if info, err := os.Stat(full); err == nil {
		b.IsDir = info.IsDir()
		b.IsExec = !info.IsDir() && isExecutable(info.Mode())
	}

	if idx := strings.Index(name, ":"); idx >= 0 {
		if keys := strings.Fields(name[idx+1:]); len(keys) > 0 {
			b.Keys = keys
		}
	}

	return b, true
}

// BindingsFor returns the bindings declared for one button index.
func (s *State) BindingsFor(button int) []Binding {
	return s.Bindings[button]
}

// AllBindings returns every binding ordered by button index, for listing.
func (s *State) AllBindings() []Binding {
	var out []Binding
	for button := RingButton; button <= LastButton; button++ {
		out = append(out, s.Bindings[button]...)
	}
	return out
}

// IconSource returns the path of the source image for a button, present or not.
func (s *State) IconSource(button int) string {
	return filepath.Join(s.Path, strconv.Itoa(button)+IconExt)
}

// IconRaw returns the path of the device-native icon for a button.
func (s *State) IconRaw(button int) string {
	return filepath.Join(s.Path, strconv.Itoa(button)+RawIconExt)
}

// readStatus parses a _status file. Anything non-numeric or outside the
// selector domain counts as off.
func readStatus(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return StatusOff
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || v < StatusMin || v > StatusMax {
		return StatusOff
	}
	return v
}

func isExecutable(mode os.FileMode) bool {
	return mode&0o111 != 0
}
