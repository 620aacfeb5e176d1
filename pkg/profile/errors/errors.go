package errors

import "errors"

var (
	// Integrity errors 🔗
	ErrRootMissing      = errors.New("❌ profile root does not exist")
	ErrPointerCorrupt   = errors.New("❌ current-state pointer is not a symlink to a directory")
	ErrNoBootstrapState = errors.New("❌ no current state and no init state to bootstrap from")

	// Resolution errors 🧭
	ErrNotAState = errors.New("❌ path does not name a state directory")
)
