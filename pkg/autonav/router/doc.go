// Package router binds an autonav Engine to a host page stack.
//
// The router takes care of the two chores every host needs: it disposes
// screens and their controllers once they are popped, and it binds the
// request handle of every pushed controller so that the controller can ask
// for navigation by action name without holding a reference to the stack.
//
// # Basic Usage
//
//	// Screens carry an explicit kind and optionally a controller
//	type DetailScreen struct {
//	    controller *DetailController
//	}
//
//	func (s *DetailScreen) Kind() autonav.Kind { return KindDetail }
//	func (s *DetailScreen) Controller() any    { return s.controller }
//
//	// Controllers request navigation through their handle
//	type DetailController struct {
//	    requests autonav.Requests
//	}
//
//	func (c *DetailController) NavigationRequests() *autonav.Requests { return &c.requests }
//	func (c *DetailController) Dispose()                              { /* release resources */ }
//
//	// Create the stack, engine and router
//	host := stack.New(&MainScreen{})
//	r := router.New(autonav.New(autonav.Options{}), host, router.Options{})
//
//	r.Register("Back", autonav.NewAction().Pop())
//	r.Register("OpenDetail", autonav.NewAction().Push(newDetailScreen))
//
//	// From inside a controller bound to a screen on the stack
//	info, err := c.requests.Request(ctx, "Back")
//
// # Posting From Other Goroutines
//
// The engine is not safe for concurrent use. Work running on other
// goroutines posts requests instead; Run executes them one at a time:
//
//	go r.Run(ctx)
//
//	reply, _ := r.Post(ctx, "OpenDetail", host.Peek())
//	result := <-reply
//
// Posting ActionExit stops Run.
//
// # Disposal
//
// When a screen is popped or removed, its controller's binding is released
// first, then the controller and the screen are disposed if they implement
// autonav.Disposer. StopAutoDisposal turns disposal off.
package router
