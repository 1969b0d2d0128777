package stack

import (
	"context"

	"github.com/BrandonKowalski/autonav/pkg/autonav"
)

// Context is the navigation context of one screen on a Stack. Once the
// anchor screen leaves the stack the context is stale: it reports an empty
// stack and refuses to push or pop.
type Context struct {
	stack  *Stack
	anchor autonav.Screen
}

var _ autonav.NavigationContext = (*Context)(nil)

// Screen returns the anchor screen.
func (c *Context) Screen() autonav.Screen {
	return c.anchor
}

// Valid reports whether the anchor screen is still on the stack.
func (c *Context) Valid() bool {
	return c.stack.indexOf(c.anchor) >= 0
}

// Stack returns the stack, root first, or nil when the context is stale.
func (c *Context) Stack() []autonav.Screen {
	if !c.Valid() {
		return nil
	}
	return c.stack.Screens()
}

func (c *Context) Push(ctx context.Context, screen autonav.Screen) error {
	if !c.Valid() {
		return autonav.ErrStaleContext
	}
	return c.stack.Push(ctx, screen)
}

func (c *Context) Pop(ctx context.Context, animated bool) (autonav.Screen, error) {
	if !c.Valid() {
		return nil, autonav.ErrStaleContext
	}
	return c.stack.Pop(ctx, animated)
}

func (c *Context) Remove(ctx context.Context, screen autonav.Screen) error {
	if !c.Valid() {
		return autonav.ErrStaleContext
	}
	return c.stack.Remove(ctx, screen)
}

// ContextAt returns the context of screen, or nil if it is not on the stack
// or this context is stale.
func (c *Context) ContextAt(screen autonav.Screen) autonav.NavigationContext {
	if !c.Valid() || c.stack.indexOf(screen) < 0 {
		return nil
	}
	return &Context{stack: c.stack, anchor: screen}
}
