// Package config loads declarative action containers from TOML and YAML
// files.
//
// TOML:
//
//	[[action]]
//	name = "Home"
//	steps = [
//	    { op = "pop_until", kind = "main" },
//	    { op = "push", kind = "detail" },
//	]
//
// YAML:
//
//	actions:
//	  - name: Home
//	    steps:
//	      - op: pop_until
//	        when: kind == "main" || kind == "dashboard"
//	      - op: push
//	        kind: detail
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/autonav/pkg/autonav"
	"github.com/BrandonKowalski/autonav/pkg/autonav/constants"
	"github.com/BrandonKowalski/autonav/pkg/autonav/internal"
)

// Sentinel validation errors.
var (
	ErrUnknownOp     = errors.New("unknown step operation")
	ErrMissingName   = errors.New("action name is required")
	ErrMissingTarget = errors.New("step needs a kind, kinds or when")
	ErrUnknownFormat = errors.New("unknown action file format")
)

// File is the decoded content of an action file.
type File struct {
	Actions []ActionSpec `toml:"action" yaml:"actions"`
}

// ActionSpec declares one named action.
type ActionSpec struct {
	Name  string     `toml:"name" yaml:"name"`
	Steps []StepSpec `toml:"steps" yaml:"steps"`
}

// StepSpec declares one step. Which fields apply depends on Op.
type StepSpec struct {
	Op      string   `toml:"op" yaml:"op"`
	Count   *int     `toml:"count" yaml:"count"`
	Kind    string   `toml:"kind" yaml:"kind"`
	Kinds   []string `toml:"kinds" yaml:"kinds"`
	When    string   `toml:"when" yaml:"when"`
	Message string   `toml:"message" yaml:"message"`
}

// LoadTOML decodes a TOML action file.
func LoadTOML(path string) (*File, error) {
	var file File
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("error decoding TOML file %s: %w", path, err)
	}
	return &file, nil
}

// LoadYAML decodes a YAML action file.
func LoadYAML(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading YAML file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error unmarshalling YAML: %w", err)
	}
	return &file, nil
}

// Load decodes path based on its extension (.toml, .yaml, .yml).
func Load(path string) (*File, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadTOML(path)
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Container compiles the file into an autonav.Container. Expressions are
// compiled here, so a broken file fails before anything is registered.
func (f *File) Container() (autonav.Container, error) {
	builders := make([]*autonav.ActionBuilder, len(f.Actions))

	for i, spec := range f.Actions {
		if spec.Name == "" {
			return nil, fmt.Errorf("action #%d: %w", i, ErrMissingName)
		}

		builder := autonav.NewAction()
		for j, step := range spec.Steps {
			if err := addStep(builder, step); err != nil {
				return nil, fmt.Errorf("action %q step #%d: %w", spec.Name, j, err)
			}
		}
		builders[i] = builder
	}

	return autonav.ContainerFunc(func(b *autonav.ContainerBuilder) {
		for i, spec := range f.Actions {
			b.Add(spec.Name, builders[i])
		}
	}), nil
}

func matcherOf(step StepSpec) (autonav.Matcher, error) {
	if step.When != "" {
		return MatchExpr(step.When)
	}

	kinds := make([]autonav.Kind, 0, len(step.Kinds)+1)
	if step.Kind != "" {
		kinds = append(kinds, autonav.Kind(step.Kind))
	}
	for _, k := range step.Kinds {
		kinds = append(kinds, autonav.Kind(k))
	}
	if len(kinds) == 0 {
		return nil, ErrMissingTarget
	}
	return autonav.MatchKind(kinds...), nil
}

func addStep(b *autonav.ActionBuilder, step StepSpec) error {
	switch step.Op {
	case constants.OpPop:
		count := constants.DefaultPopCount
		if step.Count != nil {
			count = *step.Count
		}
		b.PopMultiple(count)

	case constants.OpPopToRoot:
		b.PopToRoot()

	case constants.OpPopUntil, constants.OpRemove:
		match, err := matcherOf(step)
		if err != nil {
			return err
		}
		if step.Op == constants.OpRemove {
			b.Remove(match)
		} else {
			b.PopUntil(match)
		}

	case constants.OpPush, constants.OpBufferPush:
		if step.Kind == "" {
			return ErrMissingTarget
		}
		if step.Op == constants.OpPush {
			b.PushKind(autonav.Kind(step.Kind))
		} else {
			b.BufferPushKind(autonav.Kind(step.Kind))
		}

	case constants.OpFlushBuffer:
		b.FlushBuffer()

	case constants.OpLog:
		message := step.Message
		b.Custom(func(_ context.Context, view autonav.ActionView) error {
			internal.GetLogger().Info(message,
				"action", view.Action(),
				"execution", view.ID(),
				"popped", len(view.PoppedScreens()),
				"pushed", len(view.PushedScreens()))
			return nil
		})

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}
	return nil
}

// RegisterFile loads path and registers its actions on engine.
func RegisterFile(engine *autonav.Engine, path string) error {
	file, err := Load(path)
	if err != nil {
		return err
	}

	container, err := file.Container()
	if err != nil {
		return fmt.Errorf("compile %s: %w", path, err)
	}

	return engine.RegisterContainer(container)
}
