package autonav

import "fmt"

// Container is a reusable bundle of named actions. Load declares the
// actions on the builder; the engine merges them in one call.
type Container interface {
	Load(builder *ContainerBuilder)
}

// ContainerFunc adapts a function into a Container.
type ContainerFunc func(builder *ContainerBuilder)

func (f ContainerFunc) Load(builder *ContainerBuilder) {
	f(builder)
}

type namedAction struct {
	name    string
	builder *ActionBuilder
}

// ContainerBuilder collects the actions of a container in declaration order.
type ContainerBuilder struct {
	actions []namedAction
	err     error
}

// RegisterAction starts a new action in the container.
func (b *ContainerBuilder) RegisterAction(name string) *ActionBuilder {
	builder := NewAction()
	b.Add(name, builder)
	return builder
}

// Add adds an existing builder under name. The builder is built when the
// container is registered.
func (b *ContainerBuilder) Add(name string, builder *ActionBuilder) {
	if builder == nil {
		b.Fail(&ActionError{Action: name, Op: "register", Err: ErrNilBuilder})
	}
	for _, a := range b.actions {
		if a.name == name {
			b.Fail(&ActionError{Action: name, Op: "register", Err: ErrDuplicateAction})
		}
	}
	b.actions = append(b.actions, namedAction{name: name, builder: builder})
}

// Fail records an error that rejects the whole container.
func (b *ContainerBuilder) Fail(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}

// RegisterContainer loads c and merges its actions into the registry. The
// container is rejected as a whole if any of its names is already
// registered or declared twice.
func (e *Engine) RegisterContainer(c Container) error {
	builder := &ContainerBuilder{}
	c.Load(builder)

	if builder.err != nil {
		return fmt.Errorf("load container: %w", builder.err)
	}

	for _, a := range builder.actions {
		if _, ok := e.actions[a.name]; ok {
			return &ActionError{Action: a.name, Op: "register", Err: ErrDuplicateAction}
		}
	}

	for _, a := range builder.actions {
		e.actions[a.name] = a.builder.Build()
		e.logger.Debug("registered action", "action", a.name, "steps", len(a.builder.steps), "container", fmt.Sprintf("%T", c))
	}
	return nil
}
