// Package run spawns user-supplied executables: state _init hooks and
// executable hotkey bindings. Each is handed the program's own invocation
// path as its only argument and may call back into padring recursively;
// every such call is a fresh, independent process.
package run

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/hashicorp/go-hclog"
)

// Spawn executes path with selfPath as argv[1], inheriting stdio, and waits
// for completion. There is no timeout; a hung hook blocks the invocation.
func Spawn(path, selfPath string, logger hclog.Logger) error {
	logger.Info("🚀 Executing", "path", path)
	logger.Debug("🚀 Full command with args", "args", []string{selfPath})

	cmd := exec.Command(path, selfPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", path, err)
	}

	if err := cmd.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			logger.Info("⏹️ Process exited", "code", exitErr.ExitCode())
			return fmt.Errorf("%s: exit code %d", path, exitErr.ExitCode())
		}
		return fmt.Errorf("%s: process error: %w", path, err)
	}

	logger.Debug("✅ Process completed successfully", "path", path)
	return nil
}
