package autonav

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/BrandonKowalski/autonav/pkg/autonav/internal"
)

// Observer is notified after every Execute. info is nil when the action was
// not registered.
type Observer interface {
	ActionExecuted(action string, info *ActionInfo, elapsed time.Duration, err error)
}

// Options configures a new Engine.
type Options struct {
	Logger   *slog.Logger // Engine logger (default: the internal autonav logger)
	Observer Observer     // Optional execution observer, e.g. metrics.Collector
}

// Engine owns the action registry, the screen kind registry and the buffer
// slot. One engine is created per application and shared by everything that
// registers or executes actions.
//
// An Engine holds no locks. It must be used from the host's UI thread.
type Engine struct {
	logger   *slog.Logger
	observer Observer
	actions  map[string]Action
	kinds    map[Kind]Factory
	buffer   bufferState
}

// New creates an empty Engine.
func New(options Options) *Engine {
	logger := options.Logger
	if logger == nil {
		logger = internal.GetInternalLogger()
	}

	return &Engine{
		logger:   logger,
		observer: options.Observer,
		actions:  make(map[string]Action),
		kinds:    make(map[Kind]Factory),
	}
}

// Register builds b and stores it under name. Registering a name twice is
// an error and leaves the first registration intact.
func (e *Engine) Register(name string, b *ActionBuilder) error {
	if b == nil {
		return &ActionError{Action: name, Op: "register", Err: ErrNilBuilder}
	}
	if _, ok := e.actions[name]; ok {
		return &ActionError{Action: name, Op: "register", Err: ErrDuplicateAction}
	}

	e.actions[name] = b.Build()
	e.logger.Debug("registered action", "action", name, "steps", len(b.steps))
	return nil
}

// MustRegister is like Register but panics on error. It is meant for
// application setup code.
func (e *Engine) MustRegister(name string, b *ActionBuilder) {
	if err := e.Register(name, b); err != nil {
		panic(err)
	}
}

// RegisterScreen registers the factory used by PushKind and BufferPushKind.
func (e *Engine) RegisterScreen(kind Kind, factory Factory) error {
	if _, ok := e.kinds[kind]; ok {
		return &ActionError{Action: string(kind), Op: "register screen", Err: ErrDuplicateKind}
	}
	if factory == nil {
		return &ActionError{Action: string(kind), Op: "register screen", Err: ErrNilFactory}
	}

	e.kinds[kind] = factory
	return nil
}

func (e *Engine) newScreen(kind Kind) (Screen, error) {
	factory, ok := e.kinds[kind]
	if !ok {
		return nil, &ActionError{Action: string(kind), Op: "create screen", Err: ErrUnknownKind}
	}
	return factory(), nil
}

// HasAction reports whether name is registered.
func (e *Engine) HasAction(name string) bool {
	_, ok := e.actions[name]
	return ok
}

// Action returns the registered action for name.
func (e *Engine) Action(name string) (Action, bool) {
	a, ok := e.actions[name]
	return a, ok
}

// Actions returns the registered action names, sorted.
func (e *Engine) Actions() []string {
	names := make([]string, 0, len(e.actions))
	for name := range e.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs the action registered under name from nav. Steps run strictly
// in order, each one operating on the cursor left by the previous one.
//
// An unregistered name fails before anything runs. When a step fails the
// remaining steps are skipped and the partial ActionInfo is returned together
// with a *StepError; steps already applied are not rolled back.
func (e *Engine) Execute(ctx context.Context, name string, nav NavigationContext) (*ActionInfo, error) {
	start := time.Now()

	action, ok := e.actions[name]
	if !ok {
		err := &ActionError{Action: name, Op: "execute", Err: ErrUnregisteredAction}
		e.logger.Error("execute failed", "action", name, "error", err)
		e.notify(name, nil, start, err)
		return nil, err
	}

	info := newActionInfo(name, nav)
	e.logger.Debug("executing action", "action", name, "execution", info.id, "steps", len(action.steps))

	for index, step := range action.steps {
		if err := step.run(ctx, e, info); err != nil {
			stepErr := &StepError{Action: name, Index: index, Op: step.op, Err: err}
			e.logger.Error("step failed",
				"action", name,
				"execution", info.id,
				"step", step.String(),
				"index", index,
				"error", err)
			e.notify(name, info, start, stepErr)
			return info, stepErr
		}
	}

	e.logger.Debug("executed action",
		"action", name,
		"execution", info.id,
		"popped", len(info.popped),
		"pushed", len(info.pushed))
	e.notify(name, info, start, nil)
	return info, nil
}

func (e *Engine) notify(name string, info *ActionInfo, start time.Time, err error) {
	if e.observer != nil {
		e.observer.ActionExecuted(name, info, time.Since(start), err)
	}
}
