// Package input delivers synthesized key events to whatever window holds
// focus, through an external injector tool. The target window is whatever
// is focused when the injector runs, and no modifier keys are simulated.
package input

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/hashicorp/go-hclog"
)

// ErrToolMissing is returned when the injector binary cannot be found.
var ErrToolMissing = errors.New("❌ key injector tool not found")

// Injector wraps the external key-injection tool.
type Injector struct {
	argv   []string
	logger hclog.Logger
}

// NewInjector creates an Injector from a command argv prefix, e.g.
// ["xdotool", "getactivewindow", "key", "--clearmodifiers"].
func NewInjector(argv []string, logger hclog.Logger) *Injector {
	return &Injector{argv: argv, logger: logger}
}

// Press injects a sequence of key symbols into the focused window.
func (i *Injector) Press(keys []string) error {
	if len(i.argv) == 0 {
		return ErrToolMissing
	}
	if _, err := exec.LookPath(i.argv[0]); err != nil {
		return fmt.Errorf("%w: %s", ErrToolMissing, i.argv[0])
	}

	argv := append(append([]string{}, i.argv...), keys...)
	i.logger.Debug("⌨️ Injecting keys", "argv", argv)

	cmd := exec.Command(argv[0], argv[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("injector %s failed: %s: %w", argv[0], string(out), err)
	}
	return nil
}
