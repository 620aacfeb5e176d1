// Package device talks to the sysfs-style attribute files of a tablet pad:
// one ring status LED selector and eight raw icon slots per discovered
// handle. Writes are plain blocking file writes with no retry.
package device

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const (
	statusAttrName = "status_led0_select"
	buttonAttrFmt  = "button%d_rawimg"

	// FirstSlot and LastSlot bound the physical icon slot domain.
	FirstSlot = 0
	LastSlot  = 7

	// StatusOffValue is the hardware encoding for "indicator off".
	StatusOffValue = 0
)

var ErrInvalidSlot = errors.New("invalid button slot")

// Pad is one discovered device handle, identified by its attribute directory.
type Pad struct {
	path string
}

// NewPad creates a Pad over an attribute directory.
func NewPad(path string) Pad {
	return Pad{path: path}
}

// Path returns the handle's attribute directory.
func (p Pad) Path() string {
	return p.path
}

func (p Pad) statusAttr() string {
	return filepath.Join(p.path, statusAttrName)
}

func (p Pad) buttonAttr(slot int) string {
	return filepath.Join(p.path, fmt.Sprintf(buttonAttrFmt, slot))
}

// WriteStatus writes the ring status selector. The value is already in
// hardware encoding: 1-3 or StatusOffValue.
func (p Pad) WriteStatus(value int) error {
	attr := p.statusAttr()
	if err := os.WriteFile(attr, []byte(fmt.Sprintf("%d\n", value)), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write status %d to %s", value, attr)
	}
	return nil
}

// WriteIcon writes a raw icon buffer to one physical button slot.
func (p Pad) WriteIcon(slot int, icon []byte) error {
	if slot < FirstSlot || slot > LastSlot {
		return errors.Wrapf(ErrInvalidSlot, "slot %d", slot)
	}
	attr := p.buttonAttr(slot)
	if err := os.WriteFile(attr, icon, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write icon to %s", attr)
	}
	return nil
}

// Discover globs for pad handles. A handle qualifies when its status
// attribute exists and is writable; everything else is skipped. Zero
// handles is a valid result, not an error.
func Discover(glob string, logger hclog.Logger) []Pad {
	matches, err := filepath.Glob(glob)
	if err != nil {
		logger.Warn("⚠️ Bad device glob", "glob", glob, "error", err)
		return nil
	}

	var pads []Pad
	for _, match := range matches {
		pad := NewPad(match)
		if err := unix.Access(pad.statusAttr(), unix.W_OK); err != nil {
			logger.Debug("Skipping handle without writable status attribute",
				"path", match, "error", err)
			continue
		}
		pads = append(pads, pad)
	}

	logger.Debug("🔍 Device discovery complete", "glob", glob, "handles", len(pads))
	return pads
}
