package autonav

import "github.com/google/uuid"

// ActionView is the read-only view of an execution handed to custom steps
// and returned to callers.
type ActionView interface {
	ID() uuid.UUID
	Action() string
	Current() NavigationContext
	PoppedScreens() []Screen
	PushedScreens() []Screen
}

// ActionInfo accumulates the effect of one action execution. It carries the
// cursor every step operates on and the ordered ledgers of popped and pushed
// screens. A fresh ActionInfo is created per Execute.
type ActionInfo struct {
	id      uuid.UUID
	action  string
	current NavigationContext
	initial NavigationContext
	popped  []Screen
	pushed  []Screen
}

func newActionInfo(action string, nav NavigationContext) *ActionInfo {
	return &ActionInfo{
		id:      uuid.New(),
		action:  action,
		current: nav,
		initial: nav,
	}
}

// ID identifies this execution in logs.
func (i *ActionInfo) ID() uuid.UUID {
	return i.id
}

// Action returns the name of the executed action.
func (i *ActionInfo) Action() string {
	return i.action
}

// Current returns the cursor: the context the next step operates on.
func (i *ActionInfo) Current() NavigationContext {
	return i.current
}

// Initial returns the context the action was executed from.
func (i *ActionInfo) Initial() NavigationContext {
	return i.initial
}

// PoppedScreens returns the popped screens in eviction order.
func (i *ActionInfo) PoppedScreens() []Screen {
	return append([]Screen(nil), i.popped...)
}

// PushedScreens returns the pushed screens in push order.
func (i *ActionInfo) PushedScreens() []Screen {
	return append([]Screen(nil), i.pushed...)
}

func (i *ActionInfo) addPopped(screens ...Screen) {
	i.popped = append(i.popped, screens...)
}

func (i *ActionInfo) addPushed(screen Screen) {
	i.pushed = append(i.pushed, screen)
}
