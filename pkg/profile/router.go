package profile

import (
	"errors"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/padring/pkg/input"
	"github.com/provide-io/padring/pkg/run"
)

// Router resolves button presses against the current state's bindings. It
// only reads the profile tree; transitions are delegated to the Activator.
type Router struct {
	store     *Store
	activator *Activator
	injector  *input.Injector
	selfPath  string
	logger    hclog.Logger
}

// NewRouter creates a Router.
func NewRouter(store *Store, activator *Activator, injector *input.Injector, selfPath string, logger hclog.Logger) *Router {
	return &Router{
		store:     store,
		activator: activator,
		injector:  injector,
		selfPath:  selfPath,
		logger:    logger,
	}
}

// Press routes one button press. Anything other than exactly one matching
// binding is a routing ambiguity: reported, no action taken, and still a
// success.
//
// The three action facets are checked independently rather than as an
// exclusive dispatch. Well-formed profiles carry one facet per binding; an
// entry that is both executable and colon-named will trigger both, which is
// a profile-authoring problem, not a routing one.
func (r *Router) Press(button int) error {
	current, err := r.store.Current()
	if err != nil {
		return err
	}

	state, err := LoadState(current)
	if err != nil {
		return err
	}

	matches := state.BindingsFor(button)
	if len(matches) != 1 {
		r.logger.Warn("⚠️ No unique binding for button",
			"button", button,
			"matches", len(matches),
			"state", state.Path,
		)
		return nil
	}
	b := matches[0]
	r.logger.Debug("🎯 Routing press", "button", button, "binding", b.Name)

	if b.IsExec {
		if err := run.Spawn(b.Path, r.selfPath, r.logger); err != nil {
			r.logger.Warn("⚠️ Binding action failed", "binding", b.Path, "error", err)
		}
	}

	if len(b.Keys) > 0 {
		if err := r.injector.Press(b.Keys); err != nil {
			// A missing injector tool is fatal; a failed injection is not.
			if errors.Is(err, input.ErrToolMissing) {
				return err
			}
			r.logger.Warn("⚠️ Key injection failed", "binding", b.Name, "error", err)
		}
	}

	if b.IsDir {
		return r.activator.Activate(b.Path)
	}

	return nil
}

// Bindings returns every binding of the current state, for listing.
func (r *Router) Bindings() (string, []Binding, error) {
	current, err := r.store.Current()
	if err != nil {
		return "", nil, err
	}
	state, err := LoadState(current)
	if err != nil {
		return "", nil, err
	}
	return state.Path, state.AllBindings(), nil
}
