package router

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/autonav/pkg/autonav"
	"github.com/BrandonKowalski/autonav/pkg/autonav/constants"
	"github.com/BrandonKowalski/autonav/pkg/autonav/internal"
	"github.com/BrandonKowalski/autonav/pkg/autonav/stack"
)

// ActionExit is a special action name that stops Run.
const ActionExit = "router.exit"

// Host is the page stack the router binds to. *stack.Stack implements it.
type Host interface {
	Subscribe(fn stack.Listener) (unsubscribe func())
	Screens() []autonav.Screen
	Context(screen autonav.Screen) autonav.NavigationContext
}

// Options configures a Router.
type Options struct {
	DisableAutoDisposal  bool         // Do not dispose popped screens and controllers
	DisableAutoSubscribe bool         // Do not bind controllers of pushed screens
	QueueSize            int          // Capacity of the Post queue (default: constants.DefaultRequestQueue)
	Logger               *slog.Logger // Router logger (default: the internal autonav logger)
}

// Request is a navigation request queued with Post.
type Request struct {
	Action string
	From   autonav.Screen
}

// Result is the outcome of a posted request.
type Result struct {
	Info *autonav.ActionInfo
	Err  error
}

type queued struct {
	ctx   context.Context
	req   Request
	reply chan Result
}

// Router binds an Engine to a host stack. It disposes screens and their
// controllers when they are popped, binds the request handle of every pushed
// controller so that controllers can request actions by name, and runs
// posted requests one at a time on a single loop.
type Router struct {
	engine   *autonav.Engine
	host     Host
	logger   *slog.Logger
	disposal atomic.Bool
	binding  atomic.Bool
	bindings map[autonav.Screen]func()
	queue    chan queued
	release  func()
}

// New creates a Router and starts listening to host. Controllers of screens
// already on the stack (usually just the root) are bound immediately unless
// auto subscribing is disabled.
func New(engine *autonav.Engine, host Host, options Options) *Router {
	size := options.QueueSize
	if size <= 0 {
		size = constants.DefaultRequestQueue
	}
	logger := options.Logger
	if logger == nil {
		logger = internal.GetInternalLogger()
	}

	r := &Router{
		engine:   engine,
		host:     host,
		logger:   logger,
		bindings: make(map[autonav.Screen]func()),
		queue:    make(chan queued, size),
	}
	r.disposal.Store(!options.DisableAutoDisposal)
	r.binding.Store(!options.DisableAutoSubscribe)
	r.release = host.Subscribe(r.handle)

	if r.binding.Load() {
		for _, screen := range host.Screens() {
			r.bind(screen)
		}
	}
	return r
}

// Engine returns the engine the router executes actions with.
func (r *Router) Engine() *autonav.Engine {
	return r.engine
}

// Register registers an action on the router's engine.
func (r *Router) Register(name string, b *autonav.ActionBuilder) error {
	return r.engine.Register(name, b)
}

// RegisterContainer registers a container on the router's engine.
func (r *Router) RegisterContainer(c autonav.Container) error {
	return r.engine.RegisterContainer(c)
}

// RegisterScreen registers a screen factory on the router's engine.
func (r *Router) RegisterScreen(kind autonav.Kind, factory autonav.Factory) error {
	return r.engine.RegisterScreen(kind, factory)
}

// StartAutoDisposal makes the router dispose popped screens and their
// controllers. Safe to call when already started.
func (r *Router) StartAutoDisposal() {
	r.disposal.Store(true)
}

// StopAutoDisposal stops disposing popped screens. Safe to call when not
// started.
func (r *Router) StopAutoDisposal() {
	r.disposal.Store(false)
}

// StartAutoSubscribing binds the controllers of screens pushed from now on.
func (r *Router) StartAutoSubscribing() {
	r.binding.Store(true)
}

// StopAutoSubscribing stops binding newly pushed controllers. Existing
// bindings stay until their screens are popped.
func (r *Router) StopAutoSubscribing() {
	r.binding.Store(false)
}

// Execute runs action from the context of screen.
func (r *Router) Execute(ctx context.Context, action string, from autonav.Screen) (*autonav.ActionInfo, error) {
	nav := r.host.Context(from)
	if nav == nil {
		return nil, &autonav.ActionError{Action: action, Op: "execute", Err: autonav.ErrStaleContext}
	}
	return r.engine.Execute(ctx, action, nav)
}

// Post queues a request for Run and returns the channel its result is
// delivered on. It blocks while the queue is full.
func (r *Router) Post(ctx context.Context, action string, from autonav.Screen) (<-chan Result, error) {
	reply := make(chan Result, 1)
	select {
	case r.queue <- queued{ctx: ctx, req: Request{Action: action, From: from}, reply: reply}:
		return reply, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Run executes posted requests one at a time until ctx is done or an
// ActionExit request is received. Run is the host's navigation loop: every
// request is executed on the goroutine that called Run.
func (r *Router) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case q := <-r.queue:
			if q.req.Action == ActionExit {
				q.reply <- Result{}
				return nil
			}

			info, err := r.Execute(q.ctx, q.req.Action, q.req.From)
			if err != nil {
				r.logger.Error("posted request failed", "action", q.req.Action, "error", err)
			}
			q.reply <- Result{Info: info, Err: err}
		}
	}
}

// Close stops listening to the host and releases every controller binding.
func (r *Router) Close() {
	if r.release != nil {
		r.release()
		r.release = nil
	}
	for screen, unbind := range r.bindings {
		unbind()
		delete(r.bindings, screen)
	}
}

func (r *Router) handle(ev stack.Event) {
	switch ev.Type {
	case stack.EventPushed:
		if r.binding.Load() {
			r.bind(ev.Screen)
		}
	case stack.EventPopped, stack.EventRemoved:
		r.unbind(ev.Screen)
		if r.disposal.Load() {
			r.cleanUp(ev.Screen)
		}
	}
}

func requesterOf(screen autonav.Screen) autonav.Requester {
	if controlled, ok := screen.(autonav.Controlled); ok {
		if requester, ok := controlled.Controller().(autonav.Requester); ok {
			return requester
		}
	}
	if requester, ok := screen.(autonav.Requester); ok {
		return requester
	}
	return nil
}

func (r *Router) bind(screen autonav.Screen) {
	requester := requesterOf(screen)
	if requester == nil {
		return
	}
	if unbind, ok := r.bindings[screen]; ok {
		unbind()
	}

	r.bindings[screen] = requester.NavigationRequests().Bind(func(ctx context.Context, action string) (*autonav.ActionInfo, error) {
		return r.Execute(ctx, action, screen)
	})
	r.logger.Debug("bound controller", "kind", screen.Kind(), "controller", fmt.Sprintf("%T", requester))
}

func (r *Router) unbind(screen autonav.Screen) {
	if unbind, ok := r.bindings[screen]; ok {
		unbind()
		delete(r.bindings, screen)
	}
}

// cleanUp disposes the controller of a popped screen, then the screen.
func (r *Router) cleanUp(screen autonav.Screen) {
	if controlled, ok := screen.(autonav.Controlled); ok {
		if disposer, ok := controlled.Controller().(autonav.Disposer); ok {
			disposer.Dispose()
		}
	}
	if disposer, ok := screen.(autonav.Disposer); ok {
		disposer.Dispose()
	}
	r.logger.Debug("disposed screen", "kind", screen.Kind())
}
