package autonav_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/autonav/pkg/autonav"
	"github.com/BrandonKowalski/autonav/pkg/autonav/stack"
)

const (
	kindRoot     autonav.Kind = "root"
	kindPlain    autonav.Kind = "plain"
	kindTarget   autonav.Kind = "target"
	kindDetail   autonav.Kind = "detail"
	kindSettings autonav.Kind = "settings"
)

type testScreen struct {
	kind autonav.Kind
	name string
}

func (s *testScreen) Kind() autonav.Kind { return s.kind }

func (s *testScreen) String() string { return s.name }

// specialScreen exists to exercise type based matching.
type specialScreen struct {
	testScreen
}

type pinner interface {
	Pinned() bool
}

type pinnedScreen struct {
	testScreen
}

func (*pinnedScreen) Pinned() bool { return true }

func screen(kind autonav.Kind, name string) *testScreen {
	return &testScreen{kind: kind, name: name}
}

func factory(kind autonav.Kind, name string) autonav.Factory {
	return func() autonav.Screen { return screen(kind, name) }
}

// newStack builds [root, screens...].
func newStack(t *testing.T, screens ...autonav.Screen) (*stack.Stack, *testScreen) {
	t.Helper()

	root := screen(kindRoot, "root")
	host := stack.New(root)
	for _, s := range screens {
		require.NoError(t, host.Push(t.Context(), s))
	}
	return host, root
}

func names(screens []autonav.Screen) []string {
	out := make([]string, len(screens))
	for i, s := range screens {
		out[i] = s.(interface{ String() string }).String()
	}
	return out
}

func newEngine() *autonav.Engine {
	return autonav.New(autonav.Options{Logger: slog.New(slog.DiscardHandler)})
}
