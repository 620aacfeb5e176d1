package profile

// =================================
// Profile tree entry names
// =================================
const (
	PointerName    = "this"        // current-state symlink inside the root
	InitStateName  = "init"        // bootstrap state directory
	LefthandedFlag = "_lefthanded" // presence-only marker, mirrors numbering
	BlankIconName  = "blank.raw"   // lazily generated default icon
	InitHookName   = "_init"       // per-state activation hook
	StatusFileName = "_status"     // per-state ring LED selector
)

// =================================
// Button and status domains
// =================================
const (
	RingButton  = 0 // the ring button has no icon slot
	FirstButton = 1
	LastButton  = 8

	StatusMin = 1
	StatusMax = 3

	// StatusOff is the internal sentinel for "no _status file". It is
	// distinct from every valid selector and encoded as 0 at the device
	// boundary.
	StatusOff = -1
)

// =================================
// Icon file extensions
// =================================
const (
	IconExt    = ".png"
	RawIconExt = ".raw"
)
