// Package stack provides an in-memory page stack implementing
// autonav.NavigationContext. It stands in for a host UI toolkit's
// navigation stack in tests and in hosts without one of their own.
package stack

import (
	"context"
	"errors"
	"fmt"

	"github.com/BrandonKowalski/autonav/pkg/autonav"
)

var (
	// ErrRootPop indicates a pop or removal of the root screen.
	ErrRootPop = errors.New("stack: cannot remove the root screen")

	// ErrAlreadyOnStack indicates a push of a screen that is already on the stack.
	ErrAlreadyOnStack = errors.New("stack: screen is already on the stack")

	// ErrNotOnStack indicates a removal of a screen that is not on the stack.
	ErrNotOnStack = errors.New("stack: screen is not on the stack")
)

// EventType distinguishes stack events.
type EventType int

const (
	EventPushed  EventType = iota // A screen was pushed
	EventPopped                   // The top screen was popped
	EventRemoved                  // A screen was removed without a pop
)

// Event describes one change of the stack.
type Event struct {
	Type     EventType
	Screen   autonav.Screen
	Animated bool
}

// Listener receives stack events synchronously, after the change.
type Listener func(Event)

type subscription struct {
	id uint64
	fn Listener
}

// Stack is an ordered sequence of screens, root first. It is never empty.
type Stack struct {
	screens     []autonav.Screen
	listeners   []subscription
	nextID      uint64
	transitions int
}

// New creates a stack holding root.
func New(root autonav.Screen) *Stack {
	return &Stack{
		screens: []autonav.Screen{root},
	}
}

// Subscribe adds a listener and returns the function that removes it.
func (s *Stack) Subscribe(fn Listener) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Stack) emit(ev Event) {
	listeners := append([]subscription(nil), s.listeners...)
	for _, sub := range listeners {
		sub.fn(ev)
	}
}

// Len returns the number of screens on the stack.
func (s *Stack) Len() int {
	return len(s.screens)
}

// Screens returns a copy of the stack, root first.
func (s *Stack) Screens() []autonav.Screen {
	return append([]autonav.Screen(nil), s.screens...)
}

// Peek returns the top screen.
func (s *Stack) Peek() autonav.Screen {
	return s.screens[len(s.screens)-1]
}

// Root returns the context of the root screen.
func (s *Stack) Root() *Context {
	return &Context{stack: s, anchor: s.screens[0]}
}

// Top returns the context of the top screen.
func (s *Stack) Top() *Context {
	return &Context{stack: s, anchor: s.Peek()}
}

// Context returns the context of screen, or nil if it is not on the stack.
func (s *Stack) Context(screen autonav.Screen) autonav.NavigationContext {
	if s.indexOf(screen) < 0 {
		return nil
	}
	return &Context{stack: s, anchor: screen}
}

// Animations returns how many animated transitions were requested.
func (s *Stack) Animations() int {
	return s.transitions
}

func (s *Stack) indexOf(screen autonav.Screen) int {
	for i := len(s.screens) - 1; i >= 0; i-- {
		if s.screens[i] == screen {
			return i
		}
	}
	return -1
}

// Push adds screen on top of the stack.
func (s *Stack) Push(_ context.Context, screen autonav.Screen) error {
	if screen == nil {
		return fmt.Errorf("stack: push nil screen")
	}
	if s.indexOf(screen) >= 0 {
		return ErrAlreadyOnStack
	}

	s.screens = append(s.screens, screen)
	s.emit(Event{Type: EventPushed, Screen: screen})
	return nil
}

// Pop removes and returns the top screen. The root cannot be popped.
func (s *Stack) Pop(_ context.Context, animated bool) (autonav.Screen, error) {
	if len(s.screens) < 2 {
		return nil, ErrRootPop
	}

	top := len(s.screens) - 1
	screen := s.screens[top]
	// Clear the slot so the backing array does not keep the screen alive.
	s.screens[top] = nil
	s.screens = s.screens[:top]

	if animated {
		s.transitions++
	}
	s.emit(Event{Type: EventPopped, Screen: screen, Animated: animated})
	return screen, nil
}

// Remove takes screen out of the stack wherever it is, except the root.
func (s *Stack) Remove(_ context.Context, screen autonav.Screen) error {
	index := s.indexOf(screen)
	switch {
	case index < 0:
		return ErrNotOnStack
	case index == 0:
		return ErrRootPop
	}

	copy(s.screens[index:], s.screens[index+1:])
	s.screens[len(s.screens)-1] = nil
	s.screens = s.screens[:len(s.screens)-1]

	s.emit(Event{Type: EventRemoved, Screen: screen})
	return nil
}
