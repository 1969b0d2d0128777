package autonav

import (
	"context"
	"fmt"
)

// bufferState is the single staging slot shared by a "prepare" action that
// buffers screens and a later action that flushes them.
type bufferState struct {
	owner NavigationContext
	queue []Screen
}

func (i *ActionInfo) push(ctx context.Context, screen Screen) error {
	if screen == nil {
		return ErrNilFactory
	}
	if i.current == nil {
		return ErrStaleContext
	}

	if err := i.current.Push(ctx, screen); err != nil {
		return fmt.Errorf("push %q: %w", screen.Kind(), err)
	}

	i.addPushed(screen)

	next := i.current.ContextAt(screen)
	if next == nil {
		return fmt.Errorf("resolve pushed %q: %w", screen.Kind(), ErrStaleContext)
	}
	i.current = next
	return nil
}

// bufferPush stages screen without touching the stack. A buffer owned by a
// different context is discarded first.
func (e *Engine) bufferPush(info *ActionInfo, screen Screen) error {
	if screen == nil {
		return ErrNilFactory
	}

	if !sameContext(e.buffer.owner, info.current) {
		if len(e.buffer.queue) > 0 {
			e.logger.Debug("discarding buffered screens of another context",
				"action", info.action,
				"execution", info.id,
				"discarded", len(e.buffer.queue))
		}
		e.buffer = bufferState{owner: info.current}
	}

	e.buffer.queue = append(e.buffer.queue, screen)
	return nil
}

// flushBuffer pushes every buffered screen if the buffer is owned by the
// context the action was executed from. The slot is always cleared on a
// matching flush, so no partial flush is possible.
func (e *Engine) flushBuffer(ctx context.Context, info *ActionInfo) error {
	if !sameContext(e.buffer.owner, info.initial) {
		return nil
	}

	queue := e.buffer.queue
	e.buffer = bufferState{}

	for _, screen := range queue {
		if err := info.push(ctx, screen); err != nil {
			return err
		}
	}
	return nil
}

// BufferedScreens returns the screens staged by owner, in enqueue order.
// It returns nil when the buffer is empty or owned by another context.
// Callers use it to hand data to staged controllers before the flush.
func (e *Engine) BufferedScreens(owner NavigationContext) []Screen {
	if !sameContext(e.buffer.owner, owner) {
		return nil
	}
	return append([]Screen(nil), e.buffer.queue...)
}

// ResetBuffer discards any staged screens.
func (e *Engine) ResetBuffer() {
	e.buffer = bufferState{}
}
