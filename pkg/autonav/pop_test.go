package autonav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/autonav/pkg/autonav"
)

func TestPopMultiple(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		depth     int
		count     int
		wantLen   int
		wantPops  []string
		wantAnims int
	}{
		{name: "two of five", depth: 4, count: 2, wantLen: 3, wantPops: []string{"s4", "s3"}, wantAnims: 1},
		{name: "exactly to root", depth: 4, count: 4, wantLen: 1, wantPops: []string{"s4", "s3", "s2", "s1"}, wantAnims: 1},
		{name: "truncated at root", depth: 2, count: 5, wantLen: 1, wantPops: []string{"s2", "s1"}, wantAnims: 1},
		{name: "zero is a no-op", depth: 2, count: 0, wantLen: 3, wantPops: []string{}, wantAnims: 0},
		{name: "negative is a no-op", depth: 2, count: -3, wantLen: 3, wantPops: []string{}, wantAnims: 0},
		{name: "root only", depth: 0, count: 1, wantLen: 1, wantPops: []string{}, wantAnims: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			screens := make([]autonav.Screen, tt.depth)
			for i := range screens {
				screens[i] = screen(kindPlain, "s"+string(rune('1'+i)))
			}
			host, root := newStack(t, screens...)

			engine := newEngine()
			engine.MustRegister("Pop", autonav.NewAction().PopMultiple(tt.count))

			info, err := engine.Execute(t.Context(), "Pop", host.Top())
			require.NoError(t, err)

			assert.Equal(t, tt.wantLen, host.Len())
			assert.Equal(t, root, host.Screens()[0])
			assert.Equal(t, tt.wantPops, names(info.PoppedScreens()))
			assert.Equal(t, tt.wantAnims, host.Animations())
			assert.Equal(t, host.Peek(), info.Current().Screen())
		})
	}
}

func TestPop_RootOnlyIsNoop(t *testing.T) {
	t.Parallel()

	host, root := newStack(t)
	engine := newEngine()
	engine.MustRegister("Back", autonav.NewAction().Pop().Pop().PopToRoot())

	info, err := engine.Execute(t.Context(), "Back", host.Top())
	require.NoError(t, err)

	assert.Empty(t, info.PoppedScreens())
	assert.Equal(t, []autonav.Screen{root}, host.Screens())
}

func TestPopToRoot(t *testing.T) {
	t.Parallel()

	host, root := newStack(t,
		screen(kindPlain, "a"),
		screen(kindPlain, "b"),
		screen(kindPlain, "c"))

	engine := newEngine()
	engine.MustRegister("Home", autonav.NewAction().PopToRoot())

	info, err := engine.Execute(t.Context(), "Home", host.Top())
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "b", "a"}, names(info.PoppedScreens()))
	assert.Equal(t, []autonav.Screen{root}, host.Screens())
	assert.Equal(t, root, info.Current().Screen())
	assert.Equal(t, 1, host.Animations())
}

func TestPopUntil(t *testing.T) {
	t.Parallel()

	t.Run("stops at highest match", func(t *testing.T) {
		t.Parallel()

		lower := screen(kindTarget, "lower")
		upper := screen(kindTarget, "upper")
		host, _ := newStack(t, lower, screen(kindPlain, "a"), upper, screen(kindPlain, "b"), screen(kindPlain, "c"))

		engine := newEngine()
		engine.MustRegister("Back", autonav.NewAction().PopUntilKind(kindTarget))

		info, err := engine.Execute(t.Context(), "Back", host.Top())
		require.NoError(t, err)

		assert.Equal(t, []string{"c", "b"}, names(info.PoppedScreens()))
		assert.Equal(t, upper, host.Peek())
		assert.Equal(t, upper, info.Current().Screen())
	})

	t.Run("top already matches", func(t *testing.T) {
		t.Parallel()

		host, _ := newStack(t, screen(kindPlain, "a"), screen(kindTarget, "t"))

		engine := newEngine()
		engine.MustRegister("Back", autonav.NewAction().PopUntilKind(kindTarget))

		info, err := engine.Execute(t.Context(), "Back", host.Top())
		require.NoError(t, err)

		assert.Empty(t, info.PoppedScreens())
		assert.Equal(t, 3, host.Len())
	})

	t.Run("no match pops to root", func(t *testing.T) {
		t.Parallel()

		host, root := newStack(t, screen(kindPlain, "a"), screen(kindPlain, "b"))

		engine := newEngine()
		engine.MustRegister("Back", autonav.NewAction().PopUntilKind(kindTarget))

		info, err := engine.Execute(t.Context(), "Back", host.Top())
		require.NoError(t, err)

		assert.Equal(t, []string{"b", "a"}, names(info.PoppedScreens()))
		assert.Equal(t, []autonav.Screen{root}, host.Screens())
	})

	t.Run("root is never tested", func(t *testing.T) {
		t.Parallel()

		host, root := newStack(t, screen(kindPlain, "a"))

		tested := 0
		engine := newEngine()
		engine.MustRegister("Back", autonav.NewAction().PopUntil(autonav.MatchFunc(func(s autonav.Screen) bool {
			tested++
			return s == root
		})))

		info, err := engine.Execute(t.Context(), "Back", host.Top())
		require.NoError(t, err)

		assert.Equal(t, 1, tested)
		assert.Equal(t, []string{"a"}, names(info.PoppedScreens()))
	})

	t.Run("match by type", func(t *testing.T) {
		t.Parallel()

		special := &specialScreen{testScreen{kind: kindPlain, name: "special"}}
		host, _ := newStack(t, special, screen(kindPlain, "a"))

		engine := newEngine()
		engine.MustRegister("Back", autonav.NewAction().PopUntil(autonav.MatchType[*specialScreen]()))

		_, err := engine.Execute(t.Context(), "Back", host.Top())
		require.NoError(t, err)

		assert.Equal(t, special, host.Peek())
	})

	t.Run("match by interface", func(t *testing.T) {
		t.Parallel()

		pinned := &pinnedScreen{testScreen{kind: kindPlain, name: "pinned"}}
		host, _ := newStack(t, screen(kindPlain, "a"), pinned, screen(kindPlain, "b"), screen(kindPlain, "c"))

		match := autonav.MatchType[pinner]()
		assert.True(t, match(pinned))
		assert.False(t, match(screen(kindPlain, "plain")))

		engine := newEngine()
		engine.MustRegister("Back", autonav.NewAction().PopUntil(match))

		info, err := engine.Execute(t.Context(), "Back", host.Top())
		require.NoError(t, err)

		assert.Equal(t, pinned, host.Peek())
		assert.Equal(t, []string{"c", "b"}, names(info.PoppedScreens()))
	})
}

func TestPopFunctions(t *testing.T) {
	t.Parallel()

	t.Run("PopMultiple", func(t *testing.T) {
		t.Parallel()

		host, _ := newStack(t, screen(kindPlain, "a"), screen(kindPlain, "b"), screen(kindPlain, "c"))

		popped, err := autonav.PopMultiple(t.Context(), host.Top(), 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "b"}, names(popped))
		assert.Equal(t, 2, host.Len())
		assert.Equal(t, 1, host.Animations())
	})

	t.Run("PopToRoot", func(t *testing.T) {
		t.Parallel()

		host, root := newStack(t, screen(kindPlain, "a"), screen(kindPlain, "b"))

		popped, err := autonav.PopToRoot(t.Context(), host.Top())
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, names(popped))
		assert.Equal(t, []autonav.Screen{root}, host.Screens())
	})

	t.Run("PopUntil", func(t *testing.T) {
		t.Parallel()

		target := screen(kindTarget, "t")
		host, _ := newStack(t, target, screen(kindPlain, "a"), screen(kindPlain, "b"))

		popped, err := autonav.PopUntil(t.Context(), host.Top(), autonav.MatchKind(kindTarget))
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, names(popped))
		assert.Equal(t, target, host.Peek())
	})

	t.Run("nil context", func(t *testing.T) {
		t.Parallel()

		popped, err := autonav.PopToRoot(t.Context(), nil)
		require.NoError(t, err)
		assert.Empty(t, popped)
	})
}

func TestRemove(t *testing.T) {
	t.Parallel()

	t.Run("removes below the cursor", func(t *testing.T) {
		t.Parallel()

		settings := screen(kindSettings, "settings")
		top := screen(kindPlain, "top")
		host, root := newStack(t, settings, top)

		engine := newEngine()
		engine.MustRegister("Drop", autonav.NewAction().RemoveKind(kindSettings))

		info, err := engine.Execute(t.Context(), "Drop", host.Top())
		require.NoError(t, err)

		assert.Equal(t, []autonav.Screen{root, top}, host.Screens())
		assert.Equal(t, []string{"settings"}, names(info.PoppedScreens()))
		assert.Equal(t, top, info.Current().Screen())
		assert.Zero(t, host.Animations())
	})

	t.Run("removing the cursor moves it to the top", func(t *testing.T) {
		t.Parallel()

		a := screen(kindPlain, "a")
		settings := screen(kindSettings, "settings")
		host, _ := newStack(t, a, settings)

		engine := newEngine()
		engine.MustRegister("Drop", autonav.NewAction().
			RemoveKind(kindSettings).
			Push(factory(kindDetail, "detail")))

		info, err := engine.Execute(t.Context(), "Drop", host.Top())
		require.NoError(t, err)

		assert.Equal(t, []string{"root", "a", "detail"}, names(host.Screens()))
		assert.Equal(t, host.Peek(), info.Current().Screen())
	})

	t.Run("never removes the root", func(t *testing.T) {
		t.Parallel()

		host, _ := newStack(t, screen(kindPlain, "a"))

		engine := newEngine()
		engine.MustRegister("Drop", autonav.NewAction().RemoveKind(kindRoot))

		info, err := engine.Execute(t.Context(), "Drop", host.Top())
		require.NoError(t, err)

		assert.Empty(t, info.PoppedScreens())
		assert.Equal(t, 2, host.Len())
	})
}
