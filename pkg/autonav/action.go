package autonav

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/autonav/pkg/autonav/constants"
)

// Op identifies the kind of a step.
type Op int

const (
	OpPop Op = iota
	OpPopUntil
	OpPopToRoot
	OpPush
	OpBufferPush
	OpFlushBuffer
	OpRemove
	OpCustom
)

func (o Op) String() string {
	switch o {
	case OpPop:
		return constants.OpPop
	case OpPopUntil:
		return constants.OpPopUntil
	case OpPopToRoot:
		return constants.OpPopToRoot
	case OpPush:
		return constants.OpPush
	case OpBufferPush:
		return constants.OpBufferPush
	case OpFlushBuffer:
		return constants.OpFlushBuffer
	case OpRemove:
		return constants.OpRemove
	case OpCustom:
		return "custom"
	default:
		return "unknown"
	}
}

type stepFunc func(ctx context.Context, e *Engine, info *ActionInfo) error

// Step is one immutable transformation of an action.
type Step struct {
	op   Op
	desc string
	run  stepFunc
}

// Op returns the operation of the step.
func (s Step) Op() Op {
	return s.op
}

func (s Step) String() string {
	if s.desc == "" {
		return s.op.String()
	}
	return s.op.String() + " " + s.desc
}

// CustomFunc is a side-effecting step. It receives the execution so far and
// may trigger further stack operations through view.Current().
type CustomFunc func(ctx context.Context, view ActionView) error

// Action is an immutable, ordered sequence of steps.
type Action struct {
	steps []Step
}

// Steps returns a copy of the action's steps.
func (a Action) Steps() []Step {
	return append([]Step(nil), a.steps...)
}

// Len returns the number of steps.
func (a Action) Len() int {
	return len(a.steps)
}

// ActionBuilder accumulates steps fluently. Nothing runs at build time.
//
//	autonav.NewAction().
//	    PopUntil(autonav.MatchKind(KindMain)).
//	    Push(newDetail)
type ActionBuilder struct {
	steps []Step
}

// NewAction returns an empty builder.
func NewAction() *ActionBuilder {
	return &ActionBuilder{}
}

// Build returns the accumulated steps as an immutable Action. Later changes
// to the builder do not affect actions already built.
func (b *ActionBuilder) Build() Action {
	return Action{steps: append([]Step(nil), b.steps...)}
}

func (b *ActionBuilder) add(step Step) *ActionBuilder {
	b.steps = append(b.steps, step)
	return b
}

// Pop pops one screen.
func (b *ActionBuilder) Pop() *ActionBuilder {
	return b.PopMultiple(1)
}

// PopMultiple pops n screens, stopping at the root.
func (b *ActionBuilder) PopMultiple(n int) *ActionBuilder {
	return b.add(Step{
		op:   OpPop,
		desc: fmt.Sprint(n),
		run: func(ctx context.Context, _ *Engine, info *ActionInfo) error {
			return info.popMultiple(ctx, n)
		},
	})
}

// PopUntil pops until the top screen is accepted by match, or to the root
// when nothing matches.
func (b *ActionBuilder) PopUntil(match Matcher) *ActionBuilder {
	return b.add(Step{
		op: OpPopUntil,
		run: func(ctx context.Context, _ *Engine, info *ActionInfo) error {
			return info.popUntil(ctx, match)
		},
	})
}

// PopUntilKind pops until a screen of one of the kinds is on top.
func (b *ActionBuilder) PopUntilKind(kinds ...Kind) *ActionBuilder {
	b.PopUntil(MatchKind(kinds...))
	b.steps[len(b.steps)-1].desc = fmt.Sprint(kinds)
	return b
}

// PopToRoot pops everything except the root.
func (b *ActionBuilder) PopToRoot() *ActionBuilder {
	return b.add(Step{
		op: OpPopToRoot,
		run: func(ctx context.Context, _ *Engine, info *ActionInfo) error {
			return info.popToRoot(ctx)
		},
	})
}

// Push pushes a screen created by factory on top of the cursor.
func (b *ActionBuilder) Push(factory Factory) *ActionBuilder {
	return b.add(Step{
		op: OpPush,
		run: func(ctx context.Context, _ *Engine, info *ActionInfo) error {
			return info.push(ctx, create(factory))
		},
	})
}

// PushKind pushes a screen created by the factory registered for kind.
func (b *ActionBuilder) PushKind(kind Kind) *ActionBuilder {
	return b.add(Step{
		op:   OpPush,
		desc: string(kind),
		run: func(ctx context.Context, e *Engine, info *ActionInfo) error {
			screen, err := e.newScreen(kind)
			if err != nil {
				return err
			}
			return info.push(ctx, screen)
		},
	})
}

// BufferPush stages a screen created by factory for a later FlushBuffer.
// The stack is not touched.
func (b *ActionBuilder) BufferPush(factory Factory) *ActionBuilder {
	return b.add(Step{
		op: OpBufferPush,
		run: func(_ context.Context, e *Engine, info *ActionInfo) error {
			return e.bufferPush(info, create(factory))
		},
	})
}

// BufferPushKind stages a screen of the given kind.
func (b *ActionBuilder) BufferPushKind(kind Kind) *ActionBuilder {
	return b.add(Step{
		op:   OpBufferPush,
		desc: string(kind),
		run: func(_ context.Context, e *Engine, info *ActionInfo) error {
			screen, err := e.newScreen(kind)
			if err != nil {
				return err
			}
			return e.bufferPush(info, screen)
		},
	})
}

// FlushBuffer pushes all screens staged by the context this action is
// executed from. It is a no-op for any other context.
func (b *ActionBuilder) FlushBuffer() *ActionBuilder {
	return b.add(Step{
		op: OpFlushBuffer,
		run: func(ctx context.Context, e *Engine, info *ActionInfo) error {
			return e.flushBuffer(ctx, info)
		},
	})
}

// Remove removes the highest non-root screen accepted by match without
// popping the screens above it. No match is a no-op.
func (b *ActionBuilder) Remove(match Matcher) *ActionBuilder {
	return b.add(Step{
		op: OpRemove,
		run: func(ctx context.Context, _ *Engine, info *ActionInfo) error {
			return info.remove(ctx, match)
		},
	})
}

// RemoveKind removes the highest screen of one of the kinds.
func (b *ActionBuilder) RemoveKind(kinds ...Kind) *ActionBuilder {
	b.Remove(MatchKind(kinds...))
	b.steps[len(b.steps)-1].desc = fmt.Sprint(kinds)
	return b
}

// Custom runs fn. An error aborts the remaining steps.
func (b *ActionBuilder) Custom(fn CustomFunc) *ActionBuilder {
	return b.add(Step{
		op: OpCustom,
		run: func(ctx context.Context, _ *Engine, info *ActionInfo) error {
			return fn(ctx, info)
		},
	})
}

// Do runs fn, a custom step that cannot fail.
func (b *ActionBuilder) Do(fn func(view ActionView)) *ActionBuilder {
	return b.Custom(func(_ context.Context, view ActionView) error {
		fn(view)
		return nil
	})
}

func create(factory Factory) Screen {
	if factory == nil {
		return nil
	}
	return factory()
}
