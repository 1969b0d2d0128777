package autonav

import "context"

// Kind is an explicit type tag carried by every screen. Actions match and
// create screens by kind instead of inspecting their Go types.
//
// Example:
//
//	const (
//	    KindMain     autonav.Kind = "main"
//	    KindSettings autonav.Kind = "settings"
//	)
type Kind string

// Screen is an opaque handle to a unit of navigable UI content.
// Screens are compared by identity, so implementations must be comparable
// (typically a pointer).
type Screen interface {
	Kind() Kind
}

// Factory creates a new screen. It is called once per push.
type Factory func() Screen

// Disposer is implemented by screens and controllers that hold resources
// which must be released once the screen leaves the stack.
type Disposer interface {
	Dispose()
}

// Controlled is implemented by screens that carry a bound controller
// (the view-model of the screen).
type Controlled interface {
	Controller() any
}

// NavigationContext is the capability to push and pop relative to a
// specific screen's position in the host stack. It is supplied by the host.
//
// A context whose anchor screen has left the stack is stale: Stack returns
// an empty slice and ContextAt returns nil. The engine never reuses a stale
// context; it always re-derives one from a screen still on the stack.
type NavigationContext interface {
	// Screen returns the anchor screen of this context.
	Screen() Screen
	// Stack returns the ordered stack (root first) as seen from this
	// context, or nil when the context is stale.
	Stack() []Screen
	// Push pushes a screen on top of the stack.
	Push(ctx context.Context, screen Screen) error
	// Pop removes and returns the top screen. Only the final pop of a
	// batch is requested animated.
	Pop(ctx context.Context, animated bool) (Screen, error)
	// Remove removes a screen from anywhere above the root.
	Remove(ctx context.Context, screen Screen) error
	// ContextAt returns the context anchored at screen, or nil if screen is
	// not on the stack.
	ContextAt(screen Screen) NavigationContext
}

// sameContext reports whether two contexts are anchored at the same screen.
func sameContext(a, b NavigationContext) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Screen() == b.Screen()
}

// Matcher selects screens for PopUntil and Remove steps.
type Matcher func(screen Screen) bool

// MatchKind matches screens tagged with any of the given kinds.
func MatchKind(kinds ...Kind) Matcher {
	return func(screen Screen) bool {
		for _, k := range kinds {
			if screen.Kind() == k {
				return true
			}
		}
		return false
	}
}

// MatchType matches screens whose dynamic type is, or implements, T.
func MatchType[T any]() Matcher {
	return func(screen Screen) bool {
		_, ok := screen.(T)
		return ok
	}
}

// MatchFunc adapts a plain predicate into a Matcher.
func MatchFunc(fn func(Screen) bool) Matcher {
	return Matcher(fn)
}
