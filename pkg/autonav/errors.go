package autonav

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrUnregisteredAction indicates Execute was called with a name that has
	// no registered action. Execution never starts in this case.
	ErrUnregisteredAction = errors.New("action is not registered")

	// ErrDuplicateAction indicates an action name is already registered.
	ErrDuplicateAction = errors.New("action is already registered")

	// ErrUnknownKind indicates a push step referenced a screen kind with no
	// registered factory.
	ErrUnknownKind = errors.New("screen kind is not registered")

	// ErrDuplicateKind indicates a screen kind already has a factory.
	ErrDuplicateKind = errors.New("screen kind is already registered")

	// ErrStaleContext indicates a navigation context whose anchor screen is
	// no longer on the stack.
	ErrStaleContext = errors.New("navigation context is stale")

	// ErrNotBound indicates a controller requested navigation while it is
	// not bound to a screen on the stack.
	ErrNotBound = errors.New("controller is not bound to a navigation stack")

	// ErrNilFactory indicates a push step was built without a factory or a
	// factory returned nil.
	ErrNilFactory = errors.New("screen factory returned nil")

	// ErrNilBuilder indicates an action was registered without a builder.
	ErrNilBuilder = errors.New("action builder is nil")
)

// ActionError is returned by registration and execution when the failure
// concerns a named action as a whole (unknown name, duplicate name).
type ActionError struct {
	Action string // Action name
	Op     string // Operation that failed ("register", "execute")
	Err    error  // Underlying error
}

func (e *ActionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("autonav: %s %q: %v", e.Op, e.Action, e.Err)
	}
	return fmt.Sprintf("autonav: %s %q", e.Op, e.Action)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// StepError is returned by Execute when a step of a running action fails.
// Steps applied before the failing one are not rolled back.
type StepError struct {
	Action string // Action name
	Index  int    // Zero-based index of the failing step
	Op     Op     // Operation of the failing step
	Err    error  // Underlying error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("autonav: action %q step %d (%s): %v", e.Action, e.Index, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// IsUnregistered checks if an error reports an unregistered action.
func IsUnregistered(err error) bool {
	return errors.Is(err, ErrUnregisteredAction)
}

// IsDuplicate checks if an error reports a duplicate action or kind.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateAction) || errors.Is(err, ErrDuplicateKind)
}

// IsStepError checks if an error was raised by a step of a running action.
func IsStepError(err error) bool {
	var stepErr *StepError
	return errors.As(err, &stepErr)
}
