package profile

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/padring/pkg/device"
	"github.com/provide-io/padring/pkg/input"
	pserr "github.com/provide-io/padring/pkg/profile/errors"
)

// Options configures a Session.
type Options struct {
	Root           string   // profile root directory
	DeviceGlob     string   // glob for device attribute directories
	ConvertCommand []string // argv prefix of the icon converter
	InjectCommand  []string // argv prefix of the key injector
	SelfPath       string   // the program's own invocation path
	Logger         hclog.Logger
}

// Session wires the store, activator and router over one profile root and
// performs the first-run bootstrap. Each program invocation opens exactly
// one Session, runs one command against it, and exits.
type Session struct {
	store     *Store
	activator *Activator
	router    *Router
	logger    hclog.Logger
}

// Open validates the profile root, discovers device handles and bootstraps
// the current-state pointer from the init state when it is absent.
func Open(opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	paths := NewPaths(opts.Root)
	if !paths.RootExists() {
		return nil, fmt.Errorf("%w: %s", pserr.ErrRootMissing, opts.Root)
	}

	store := NewStore(paths, logger)
	pads := device.Discover(opts.DeviceGlob, logger)
	conv := device.NewConverter(opts.ConvertCommand, paths.Lefthanded(), logger)
	activator := NewActivator(store, pads, conv, opts.SelfPath, logger)
	injector := input.NewInjector(opts.InjectCommand, logger)
	router := NewRouter(store, activator, injector, opts.SelfPath, logger)

	s := &Session{
		store:     store,
		activator: activator,
		router:    router,
		logger:    logger,
	}

	if err := s.bootstrap(); err != nil {
		return nil, err
	}
	return s, nil
}

// bootstrap activates the init state on first run, when no pointer exists.
func (s *Session) bootstrap() error {
	current, err := s.store.Current()
	if err != nil {
		return err
	}
	if current != "" {
		return nil
	}

	initState := s.store.Paths().Init()
	if info, err := os.Stat(initState); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", pserr.ErrNoBootstrapState, initState)
	}

	s.logger.Info("🌱 Bootstrapping from init state", "state", initState)
	return s.activator.Activate(initState)
}

// Go resolves spec against the current state and activates the result.
func (s *Session) Go(spec string) error {
	current, err := s.store.Current()
	if err != nil {
		return err
	}
	return s.activator.Activate(s.store.Resolve(current, spec))
}

// Press routes one button press.
func (s *Session) Press(button int) error {
	return s.router.Press(button)
}

// Bindings returns the current state's canonical path and bindings.
func (s *Session) Bindings() (string, []Binding, error) {
	return s.router.Bindings()
}

// Store exposes the state store, mainly for tests.
func (s *Session) Store() *Store {
	return s.store
}
