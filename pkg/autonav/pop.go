package autonav

import (
	"context"
	"fmt"
)

// popMultiple pops up to n screens starting from nav and returns the
// context of the screen left on top together with the popped screens in
// eviction order. The root is never popped: n is truncated at the root
// boundary and n <= 0 is a no-op.
func popMultiple(ctx context.Context, nav NavigationContext, n int) (NavigationContext, []Screen, error) {
	if nav == nil || n <= 0 {
		return nav, nil, nil
	}

	if available := len(nav.Stack()) - 1; n > available {
		n = available
	}
	if n <= 0 {
		return nav, nil, nil
	}

	popped := make([]Screen, 0, n)
	current := nav

	for i := 0; i < n; i++ {
		screens := current.Stack()
		if len(screens) < 2 {
			break
		}

		// A popped screen can no longer resolve the stack, so the context of
		// the screen below is captured before the pop.
		below := current.ContextAt(screens[len(screens)-2])
		if below == nil {
			return current, popped, fmt.Errorf("resolve screen below top: %w", ErrStaleContext)
		}

		removed, err := current.Pop(ctx, i == n-1)
		if err != nil {
			return current, popped, fmt.Errorf("pop %d of %d: %w", i+1, n, err)
		}

		popped = append(popped, removed)
		current = below
	}

	return current, popped, nil
}

// popUntilCount returns how many screens must be popped so that the
// highest screen accepted by match is on top. Index 0 is never tested, so
// no match yields the count for popping to the root.
func popUntilCount(screens []Screen, match Matcher) int {
	if len(screens) == 0 {
		return 0
	}

	index := len(screens) - 1
	for ; index > 0; index-- {
		if match(screens[index]) {
			break
		}
	}
	return len(screens) - 1 - index
}

// PopMultiple pops up to n screens off the stack seen from nav and returns
// them in eviction order. It never pops the root.
func PopMultiple(ctx context.Context, nav NavigationContext, n int) ([]Screen, error) {
	_, popped, err := popMultiple(ctx, nav, n)
	return popped, err
}

// PopToRoot pops every screen except the root and returns them in
// eviction order.
func PopToRoot(ctx context.Context, nav NavigationContext) ([]Screen, error) {
	if nav == nil {
		return nil, nil
	}
	return PopMultiple(ctx, nav, len(nav.Stack())-1)
}

// PopUntil pops screens until the top screen is accepted by match, or until
// only the root remains.
func PopUntil(ctx context.Context, nav NavigationContext, match Matcher) ([]Screen, error) {
	if nav == nil {
		return nil, nil
	}
	return PopMultiple(ctx, nav, popUntilCount(nav.Stack(), match))
}

func (i *ActionInfo) popMultiple(ctx context.Context, n int) error {
	next, popped, err := popMultiple(ctx, i.current, n)
	i.current = next
	i.addPopped(popped...)
	return err
}

func (i *ActionInfo) popToRoot(ctx context.Context) error {
	if i.current == nil {
		return nil
	}
	return i.popMultiple(ctx, len(i.current.Stack())-1)
}

func (i *ActionInfo) popUntil(ctx context.Context, match Matcher) error {
	if i.current == nil {
		return nil
	}
	return i.popMultiple(ctx, popUntilCount(i.current.Stack(), match))
}

// remove takes the highest non-root screen accepted by match out of the
// stack without popping the screens above it.
func (i *ActionInfo) remove(ctx context.Context, match Matcher) error {
	if i.current == nil {
		return nil
	}

	screens := i.current.Stack()
	target := -1
	for index := len(screens) - 1; index > 0; index-- {
		if match(screens[index]) {
			target = index
			break
		}
	}
	if target < 0 {
		return nil
	}

	// The root is never removed, so its context survives the removal.
	root := i.current.ContextAt(screens[0])
	if root == nil {
		return fmt.Errorf("resolve root: %w", ErrStaleContext)
	}

	removed := screens[target]
	if err := i.current.Remove(ctx, removed); err != nil {
		return fmt.Errorf("remove %q: %w", removed.Kind(), err)
	}
	i.addPopped(removed)

	if i.current.Screen() == removed {
		remaining := root.Stack()
		next := root.ContextAt(remaining[len(remaining)-1])
		if next == nil {
			return fmt.Errorf("resolve new top: %w", ErrStaleContext)
		}
		i.current = next
	}

	return nil
}
