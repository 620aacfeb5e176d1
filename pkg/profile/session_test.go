package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"

	pserr "github.com/provide-io/padring/pkg/profile/errors"
)

func testOptions(root string) Options {
	return Options{
		Root:           root,
		DeviceGlob:     filepath.Join(root, "no-devices-*"),
		ConvertCommand: missingTool,
		InjectCommand:  missingTool,
		SelfPath:       "/bin/true",
		Logger:         hclog.NewNullLogger(),
	}
}

// TestOpenBootstrapsFromInit tests the first-run scenario: a profile root
// with only an init directory and no pointer
func TestOpenBootstrapsFromInit(t *testing.T) {
	root := t.TempDir()
	initState := mkState(t, root, InitStateName)

	sess, err := Open(testOptions(root))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	current, err := sess.Store().Current()
	if err != nil {
		t.Fatal(err)
	}
	canonical, _ := filepath.EvalSymlinks(initState)
	if current != canonical {
		t.Errorf("Current = %q, want bootstrap state %q", current, canonical)
	}
}

// TestOpenFatalConditions tests the startup failure taxonomy
func TestOpenFatalConditions(t *testing.T) {
	t.Run("root_missing", func(t *testing.T) {
		opts := testOptions(filepath.Join(t.TempDir(), "nope"))
		if _, err := Open(opts); !errors.Is(err, pserr.ErrRootMissing) {
			t.Errorf("Open error = %v, want ErrRootMissing", err)
		}
	})

	t.Run("no_pointer_no_init", func(t *testing.T) {
		root := t.TempDir()
		if _, err := Open(testOptions(root)); !errors.Is(err, pserr.ErrNoBootstrapState) {
			t.Errorf("Open error = %v, want ErrNoBootstrapState", err)
		}
	})

	t.Run("corrupt_pointer", func(t *testing.T) {
		root := t.TempDir()
		mkState(t, root, InitStateName)
		if err := os.WriteFile(filepath.Join(root, PointerName), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Open(testOptions(root)); !errors.Is(err, pserr.ErrPointerCorrupt) {
			t.Errorf("Open error = %v, want ErrPointerCorrupt", err)
		}
	})
}

// TestSessionGo tests rooted and relative transitions plus the silent no-op
func TestSessionGo(t *testing.T) {
	root := t.TempDir()
	mkState(t, root, InitStateName)
	work := mkState(t, root, "work")
	sub := mkState(t, root, filepath.Join("work", "sub"))

	sess, err := Open(testOptions(root))
	if err != nil {
		t.Fatal(err)
	}

	// Rooted spec.
	if err := sess.Go("/work"); err != nil {
		t.Fatalf("Go(/work): %v", err)
	}
	current, _ := sess.Store().Current()
	canonWork, _ := filepath.EvalSymlinks(work)
	if current != canonWork {
		t.Fatalf("Current = %q, want %q", current, canonWork)
	}

	// Relative spec against the new current state.
	if err := sess.Go("sub"); err != nil {
		t.Fatalf("Go(sub): %v", err)
	}
	current, _ = sess.Store().Current()
	canonSub, _ := filepath.EvalSymlinks(sub)
	if current != canonSub {
		t.Fatalf("Current = %q, want %q", current, canonSub)
	}

	// Nonexistent target: silent no-op, pointer stays.
	if err := sess.Go("missing"); err != nil {
		t.Fatalf("Go(missing): %v", err)
	}
	current, _ = sess.Store().Current()
	if current != canonSub {
		t.Errorf("no-op transition moved the pointer to %q", current)
	}
}

// TestSessionRingCycle tests cycling a symlinked ring through presses
func TestSessionRingCycle(t *testing.T) {
	root := t.TempDir()
	mkState(t, root, InitStateName)
	one := mkState(t, root, filepath.Join("ring", "one"))
	two := mkState(t, root, filepath.Join("ring", "two"))
	if err := os.Symlink(two, filepath.Join(one, "1-next")); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(one, filepath.Join(two, "1-next")); err != nil {
		t.Fatal(err)
	}

	sess, err := Open(testOptions(root))
	if err != nil {
		t.Fatal(err)
	}
	if err := sess.Go("/ring/one"); err != nil {
		t.Fatal(err)
	}

	canonOne, _ := filepath.EvalSymlinks(one)
	canonTwo, _ := filepath.EvalSymlinks(two)

	// Two full laps; identity must collapse onto canonical paths each time.
	want := []string{canonTwo, canonOne, canonTwo, canonOne}
	for i, expected := range want {
		if err := sess.Press(1); err != nil {
			t.Fatalf("Press #%d: %v", i+1, err)
		}
		current, err := sess.Store().Current()
		if err != nil {
			t.Fatal(err)
		}
		if current != expected {
			t.Fatalf("after press #%d Current = %q, want %q", i+1, current, expected)
		}
	}
}
