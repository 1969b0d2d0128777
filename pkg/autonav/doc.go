// Package autonav provides named, multi-step navigation actions for
// page-stack user interfaces.
//
// A screen requests an action by name ("Back", "OpenDetail") without knowing
// which stack operations implement it. Actions are ordered step chains built
// fluently and registered once on an Engine. Executing an action threads an
// ActionInfo through its steps: a cursor telling each step which stack
// context to operate on, plus ledgers of the screens popped and pushed so far.
//
// # Basic Usage
//
//	const (
//	    KindMain   autonav.Kind = "main"
//	    KindDetail autonav.Kind = "detail"
//	)
//
//	engine := autonav.New(autonav.Options{})
//
//	engine.RegisterScreen(KindDetail, func() autonav.Screen { return newDetail() })
//
//	engine.MustRegister("Back", autonav.NewAction().Pop())
//
//	engine.MustRegister("Home", autonav.NewAction().
//	    PopUntilKind(KindMain).
//	    Do(func(view autonav.ActionView) {
//	        log.Printf("popped %d screens", len(view.PoppedScreens()))
//	    }))
//
//	info, err := engine.Execute(ctx, "Back", host.Top())
//
// # Buffered Pushes
//
// A "prepare" action can stage screens with BufferPush without touching the
// stack. The caller then hands data to the staged screens (see
// Engine.BufferedScreens) and executes an "open" action containing
// FlushBuffer from the same context, which pushes the staged screens in
// order. A flush from any other context is a no-op.
//
// # Containers
//
// Related actions can be bundled in a Container and registered in one call.
// A container whose names collide with registered actions is rejected as a
// whole.
//
// # Stack Boundary
//
// No pop step ever removes the root screen: pop counts are truncated at the
// root and PopUntil degrades to PopToRoot when nothing matches.
package autonav
