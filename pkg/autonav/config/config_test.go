package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/autonav/pkg/autonav"
	"github.com/BrandonKowalski/autonav/pkg/autonav/config"
	"github.com/BrandonKowalski/autonav/pkg/autonav/stack"
)

type screen struct {
	kind autonav.Kind
	Name string
}

func (s *screen) Kind() autonav.Kind { return s.kind }

const tomlActions = `
[[action]]
name = "Home"
steps = [
    { op = "pop_until", kind = "main" },
    { op = "push", kind = "detail" },
]

[[action]]
name = "Back"
steps = [{ op = "pop" }]

[[action]]
name = "BackTwo"
steps = [{ op = "pop", count = 2 }, { op = "log", message = "went back" }]
`

const yamlActions = `
actions:
  - name: PrepareSub
    steps:
      - op: buffer_push
        kind: detail
  - name: Open
    steps:
      - op: flush_buffer
  - name: Dashboard
    steps:
      - op: pop_until
        when: kind == "dashboard" || screen.Name == "pinned"
  - name: DropSettings
    steps:
      - op: remove
        kinds: [settings]
  - name: Reset
    steps:
      - op: pop_to_root
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newEngine(t *testing.T) *autonav.Engine {
	t.Helper()

	engine := autonav.New(autonav.Options{Logger: slog.New(slog.DiscardHandler)})
	require.NoError(t, engine.RegisterScreen("detail", func() autonav.Screen {
		return &screen{kind: "detail", Name: "detail"}
	}))
	return engine
}

func newStack(t *testing.T, screens ...*screen) *stack.Stack {
	t.Helper()

	host := stack.New(&screen{kind: "main", Name: "main"})
	for _, s := range screens {
		require.NoError(t, host.Push(t.Context(), s))
	}
	return host
}

func TestLoadTOML(t *testing.T) {
	file, err := config.Load(writeFile(t, "actions.toml", tomlActions))
	require.NoError(t, err)

	require.Len(t, file.Actions, 3)
	assert.Equal(t, "Home", file.Actions[0].Name)
	assert.Equal(t, []config.StepSpec{
		{Op: "pop_until", Kind: "main"},
		{Op: "push", Kind: "detail"},
	}, file.Actions[0].Steps)
	require.NotNil(t, file.Actions[2].Steps[0].Count)
	assert.Equal(t, 2, *file.Actions[2].Steps[0].Count)
	assert.Nil(t, file.Actions[1].Steps[0].Count)
}

func TestRegisterFile_ZeroCount(t *testing.T) {
	files := map[string]string{
		"actions.toml": `
[[action]]
name = "Stay"
steps = [{ op = "pop", count = 0 }]
`,
		"actions.yaml": `
actions:
  - name: Stay
    steps:
      - op: pop
        count: 0
`,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			engine := newEngine(t)
			require.NoError(t, config.RegisterFile(engine, writeFile(t, name, content)))

			action, ok := engine.Action("Stay")
			require.True(t, ok)
			require.Equal(t, 1, action.Len())
			assert.Equal(t, "pop 0", action.Steps()[0].String())

			host := newStack(t, &screen{kind: "a"}, &screen{kind: "b"})
			info, err := engine.Execute(t.Context(), "Stay", host.Top())
			require.NoError(t, err)
			assert.Empty(t, info.PoppedScreens())
			assert.Equal(t, 3, host.Len())
		})
	}
}

func TestRegisterFile_TOML(t *testing.T) {
	engine := newEngine(t)
	require.NoError(t, config.RegisterFile(engine, writeFile(t, "actions.toml", tomlActions)))
	assert.Equal(t, []string{"Back", "BackTwo", "Home"}, engine.Actions())

	host := newStack(t, &screen{kind: "a"}, &screen{kind: "b"}, &screen{kind: "c"})

	info, err := engine.Execute(t.Context(), "BackTwo", host.Top())
	require.NoError(t, err)
	assert.Len(t, info.PoppedScreens(), 2)

	info, err = engine.Execute(t.Context(), "Home", host.Top())
	require.NoError(t, err)
	assert.Len(t, info.PoppedScreens(), 1)
	assert.Equal(t, autonav.Kind("detail"), host.Peek().Kind())
	assert.Equal(t, 2, host.Len())
}

func TestRegisterFile_YAML(t *testing.T) {
	engine := newEngine(t)
	require.NoError(t, config.RegisterFile(engine, writeFile(t, "actions.yaml", yamlActions)))

	t.Run("buffer", func(t *testing.T) {
		host := newStack(t)
		main := host.Top()

		_, err := engine.Execute(t.Context(), "PrepareSub", main)
		require.NoError(t, err)
		require.Len(t, engine.BufferedScreens(main), 1)

		info, err := engine.Execute(t.Context(), "Open", main)
		require.NoError(t, err)
		assert.Len(t, info.PushedScreens(), 1)
		assert.Equal(t, 2, host.Len())
	})

	t.Run("expression", func(t *testing.T) {
		pinned := &screen{kind: "plain", Name: "pinned"}
		host := newStack(t, &screen{kind: "dashboard"}, pinned, &screen{kind: "plain"})

		_, err := engine.Execute(t.Context(), "Dashboard", host.Top())
		require.NoError(t, err)
		assert.Equal(t, pinned, host.Peek())

		_, err = engine.Execute(t.Context(), "Dashboard", host.Top())
		require.NoError(t, err)
		assert.Equal(t, pinned, host.Peek())
	})

	t.Run("remove and reset", func(t *testing.T) {
		top := &screen{kind: "plain"}
		host := newStack(t, &screen{kind: "settings"}, top)

		_, err := engine.Execute(t.Context(), "DropSettings", host.Top())
		require.NoError(t, err)
		assert.Equal(t, 2, host.Len())
		assert.Equal(t, top, host.Peek())

		_, err = engine.Execute(t.Context(), "Reset", host.Top())
		require.NoError(t, err)
		assert.Equal(t, 1, host.Len())
	})
}

func TestRegisterFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{
			name:    "unknown extension",
			file:    "actions.json",
			content: `{}`,
			wantErr: config.ErrUnknownFormat,
		},
		{
			name:    "unknown op",
			file:    "actions.toml",
			content: "[[action]]\nname = \"Jump\"\nsteps = [{ op = \"jump\" }]\n",
			wantErr: config.ErrUnknownOp,
		},
		{
			name:    "missing name",
			file:    "actions.yaml",
			content: "actions:\n  - steps:\n      - op: pop\n",
			wantErr: config.ErrMissingName,
		},
		{
			name:    "missing target",
			file:    "actions.yaml",
			content: "actions:\n  - name: Home\n    steps:\n      - op: pop_until\n",
			wantErr: config.ErrMissingTarget,
		},
		{
			name:    "duplicate name",
			file:    "actions.yaml",
			content: "actions:\n  - name: Back\n    steps: [{op: pop}]\n  - name: Back\n    steps: [{op: pop_to_root}]\n",
			wantErr: autonav.ErrDuplicateAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newEngine(t)
			err := config.RegisterFile(engine, writeFile(t, tt.file, tt.content))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, engine.Actions())
		})
	}
}

func TestRegisterFile_InvalidExpression(t *testing.T) {
	engine := newEngine(t)
	content := "actions:\n  - name: Home\n    steps:\n      - op: pop_until\n        when: 'kind =='\n"

	err := config.RegisterFile(engine, writeFile(t, "actions.yaml", content))
	require.Error(t, err)
	assert.Empty(t, engine.Actions())
}

func TestLoad_Malformed(t *testing.T) {
	_, err := config.Load(writeFile(t, "actions.toml", "[[action]\nname ="))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "actions.yml", "actions: [\n"))
	require.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestMatchExpr(t *testing.T) {
	match, err := config.MatchExpr(`kind in ["main", "home"]`)
	require.NoError(t, err)

	assert.True(t, match(&screen{kind: "main"}))
	assert.True(t, match(&screen{kind: "home"}))
	assert.False(t, match(&screen{kind: "detail"}))

	byField, err := config.MatchExpr(`screen.Name == "pinned"`)
	require.NoError(t, err)
	assert.True(t, byField(&screen{kind: "plain", Name: "pinned"}))
	assert.False(t, byField(&screen{kind: "plain", Name: "other"}))

	_, err = config.MatchExpr(`kind +`)
	require.Error(t, err)
}
