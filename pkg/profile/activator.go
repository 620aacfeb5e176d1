package profile

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/padring/pkg/device"
	"github.com/provide-io/padring/pkg/run"
)

// Activator performs state transitions: it repoints the current-state
// pointer, runs the state's _init hook, and synchronizes the device outputs
// with the new state. It is the only writer of the pointer.
type Activator struct {
	store    *Store
	pads     []device.Pad
	conv     *device.Converter
	selfPath string
	logger   hclog.Logger
}

// NewActivator creates an Activator. selfPath is the program's own
// invocation path, handed to hooks so they can call back in.
func NewActivator(store *Store, pads []device.Pad, conv *device.Converter, selfPath string, logger hclog.Logger) *Activator {
	return &Activator{
		store:    store,
		pads:     pads,
		conv:     conv,
		selfPath: selfPath,
		logger:   logger,
	}
}

// Activate transitions to the state named by target. A target that is not a
// directory is a silent no-op: plain-file bindings act as stay-in-place
// markers. Re-activating the current state runs every step again, since
// hooks and icons may need refreshing.
func (a *Activator) Activate(target string) error {
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		a.logger.Debug("Activation target is not a state directory, ignoring", "target", target)
		return nil
	}

	canonical, err := filepath.EvalSymlinks(target)
	if err != nil {
		canonical = filepath.Clean(target)
	}

	// Repoint before the hook runs: the hook gets the running program as
	// context and may itself query or change state.
	if err := a.store.SetCurrent(canonical); err != nil {
		return err
	}
	a.logger.Info("🔀 Activated state", "state", canonical)

	state, err := LoadState(canonical)
	if err != nil {
		return err
	}

	if state.InitHook != "" {
		if err := run.Spawn(state.InitHook, a.selfPath, a.logger); err != nil {
			a.logger.Warn("⚠️ State init hook failed", "hook", state.InitHook, "error", err)
		}
		// The hook may have rewritten the state's contents.
		if reloaded, err := LoadState(canonical); err == nil {
			state = reloaded
		}
	}

	if len(a.pads) == 0 {
		a.logger.Debug("No device handles configured, skipping device sync")
		return nil
	}

	a.convertIcons(state)
	a.ensureBlankIcon()
	a.syncDevices(state)
	return nil
}

// convertIcons renders every source image lacking a raw counterpart. All
// failures are tolerated; a missing raw file later falls back to the blank
// icon.
func (a *Activator) convertIcons(state *State) {
	if !a.conv.Available() {
		a.logger.Warn("⚠️ Icon converter unavailable, skipping all conversion")
		return
	}

	for button := FirstButton; button <= LastButton; button++ {
		src := state.IconSource(button)
		raw := state.IconRaw(button)

		if _, err := os.Stat(src); err != nil {
			continue
		}
		if _, err := os.Stat(raw); err == nil {
			continue
		}
		if err := a.conv.ConvertIcon(src, raw); err != nil {
			a.logger.Warn("⚠️ Icon conversion failed", "source", src, "error", err)
		}
	}
}

// ensureBlankIcon lazily generates the profile-level default icon. Racing
// invocations may regenerate it redundantly, which is harmless.
func (a *Activator) ensureBlankIcon() {
	blank := a.store.Paths().BlankIcon()
	if _, err := os.Stat(blank); err == nil {
		return
	}
	if !a.conv.Available() {
		return
	}
	if err := a.conv.GenerateBlank(blank); err != nil {
		a.logger.Warn("⚠️ Failed to generate blank icon", "path", blank, "error", err)
	}
}

// syncDevices pushes the state's status selector and icons to every handle.
func (a *Activator) syncDevices(state *State) {
	lefthanded := a.store.Paths().Lefthanded()

	status := state.Status
	if lefthanded && status != StatusOff {
		status = StatusMax - status
	}
	hwStatus := device.StatusOffValue
	if status != StatusOff {
		hwStatus = status
	}

	blank, blankErr := os.ReadFile(a.store.Paths().BlankIcon())

	for _, pad := range a.pads {
		if err := pad.WriteStatus(hwStatus); err != nil {
			a.logger.Warn("⚠️ Status write failed", "pad", pad.Path(), "error", err)
		}

		for button := FirstButton; button <= LastButton; button++ {
			slot := button - 1
			if lefthanded {
				slot = device.LastSlot - (button - 1)
			}

			icon, err := os.ReadFile(state.IconRaw(button))
			if err != nil {
				if blankErr != nil {
					// No icon and no blank: leave the slot untouched.
					continue
				}
				icon = blank
			}

			if err := pad.WriteIcon(slot, icon); err != nil {
				a.logger.Warn("⚠️ Icon write failed", "pad", pad.Path(), "slot", slot, "error", err)
			}
		}
	}
}
