package autonav

import (
	"context"

	"go.uber.org/atomic"
)

// RequestFunc executes a navigation action on behalf of a controller.
type RequestFunc func(ctx context.Context, action string) (*ActionInfo, error)

// Requests is the handle a controller uses to request navigation by name.
// Controllers embed or hold one and expose it through Requester; the host
// binding layer binds it while the controller's screen is on the stack.
//
//	type DetailController struct {
//	    requests autonav.Requests
//	}
//
//	func (c *DetailController) NavigationRequests() *autonav.Requests { return &c.requests }
//
//	func (c *DetailController) Back(ctx context.Context) error {
//	    _, err := c.requests.Request(ctx, "Back")
//	    return err
//	}
type Requests struct {
	handler    RequestFunc
	generation atomic.Uint64
}

// Requester is implemented by controllers that request navigation.
type Requester interface {
	NavigationRequests() *Requests
}

// Request asks the bound handler to execute action. It returns ErrNotBound
// when the controller's screen is not on the stack.
func (r *Requests) Request(ctx context.Context, action string) (*ActionInfo, error) {
	if r.handler == nil {
		return nil, &ActionError{Action: action, Op: "request", Err: ErrNotBound}
	}
	return r.handler(ctx, action)
}

// Bound reports whether a handler is bound.
func (r *Requests) Bound() bool {
	return r.handler != nil
}

// Bind binds fn, replacing any previous binding, and returns the function
// that releases it. Releasing a binding that has since been replaced is a
// no-op.
func (r *Requests) Bind(fn RequestFunc) (unbind func()) {
	r.handler = fn
	generation := r.generation.Inc()

	return func() {
		if r.generation.Load() == generation {
			r.handler = nil
		}
	}
}
