package debugmenu

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/hubastard/imbridge/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}

func newMenu() *Menu { return New(WithLogger(core.NopLogger())) }

func TestSiblingsSortedByPriority(t *testing.T) {
	m := newMenu()
	require.NoError(t, m.RegisterCommand("A[5]>B[1]", func() {}))
	require.NoError(t, m.RegisterCommand("A[5]>C[2]", func() {}))
	require.NoError(t, m.RegisterCommand("A[5]>D[-1]", func() {}))
	require.NoError(t, m.RegisterCommand("Z[-3]>Y", func() {}))

	assert.Equal(t, []string{"Z", "A"}, names(m.Root().Children()))
	a := m.Root().Children()[1]
	assert.Equal(t, KindSubMenu, a.Kind)
	assert.Equal(t, []string{"D", "B", "C"}, names(a.Children()))
	assert.Empty(t, m.Conflicts())
}

func TestEqualPrioritiesKeepRegistrationOrder(t *testing.T) {
	m := newMenu()
	for _, leaf := range []string{"one", "two", "three"} {
		require.NoError(t, m.RegisterCommand("M>"+leaf, func() {}))
	}
	assert.Equal(t, []string{"one", "two", "three"}, names(m.Root().Children()[0].Children()))
}

func TestPriorityConflictKeepsStored(t *testing.T) {
	m := newMenu()
	require.NoError(t, m.RegisterCommand("A[5]>B", func() {}))
	require.NoError(t, m.RegisterCommand("A[9]>C", func() {}))
	require.NoError(t, m.RegisterCommand("A>D", func() {}), "no brackets implies no conflict")

	a := m.Root().Children()[0]
	assert.Equal(t, 5, a.Priority)
	require.Len(t, m.Conflicts(), 1)
	assert.Equal(t, PriorityConflict{Path: "A[9]>C", Menu: "A", Stored: 5, Proposed: 9}, m.Conflicts()[0])
}

func TestImplicitSubMenuAdoptsFirstExplicitPriority(t *testing.T) {
	m := newMenu()
	require.NoError(t, m.RegisterCommand("Tools>A", func() {}))
	require.NoError(t, m.RegisterCommand("Game[10]>A", func() {}))
	assert.Equal(t, []string{"Tools", "Game"}, names(m.Root().Children()))

	require.NoError(t, m.RegisterCommand("Tools[20]>B", func() {}))
	assert.Equal(t, []string{"Game", "Tools"}, names(m.Root().Children()))
	assert.Empty(t, m.Conflicts())
}

func TestPriorityAdoptionIsLogged(t *testing.T) {
	var buf bytes.Buffer
	m := New(WithLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	require.NoError(t, m.RegisterCommand("A>B", func() {}))
	assert.NotContains(t, buf.String(), "priority adopted")

	require.NoError(t, m.RegisterCommand("A[5]>C", func() {}))
	assert.Equal(t, 5, m.Root().Children()[0].Priority)
	assert.Contains(t, buf.String(), "priority adopted")
	assert.Contains(t, buf.String(), "menu=A from=0 to=5")
	assert.Empty(t, m.Conflicts())
}

func TestRejectedRegistrationLeavesTree(t *testing.T) {
	m := newMenu()
	require.NoError(t, m.RegisterCommand("X>Y", func() {}))

	err := m.RegisterCommand("X>Y", func() {})
	assert.ErrorIs(t, err, ErrDuplicateEntry)

	_, err = m.RegisterWindow("X>Y>Z")
	assert.ErrorIs(t, err, ErrNotSubMenu)

	err = m.RegisterCommand("X[4]>New>Y", nil)
	assert.ErrorIs(t, err, ErrInvalidPath)

	// A submenu created implicitly must not adopt a priority from a
	// registration that then fails.
	require.NoError(t, m.RegisterCommand("P>Q", func() {}))
	assert.ErrorIs(t, m.RegisterCommand("P[2]>Q", func() {}), ErrDuplicateEntry)

	assert.Equal(t, []string{"X", "P"}, names(m.Root().Children()))
	assert.Equal(t, []string{"Y"}, names(m.Root().Children()[0].Children()))
	assert.Equal(t, 0, m.Root().Children()[1].Priority)
	assert.Empty(t, m.Conflicts())
}

func TestConflictOnDuplicateLeaf(t *testing.T) {
	m := newMenu()
	require.NoError(t, m.RegisterCommand("A[5]>B[1]", func() {}))
	require.NoError(t, m.RegisterCommand("A[5]>C[2]", func() {}))

	err := m.RegisterCommand("A[9]>B", func() {})
	assert.ErrorIs(t, err, ErrDuplicateEntry)
	require.Len(t, m.Conflicts(), 1)
	assert.Equal(t, 9, m.Conflicts()[0].Proposed)

	a := m.Root().Children()[0]
	assert.Equal(t, 5, a.Priority)
	assert.Equal(t, []string{"B", "C"}, names(a.Children()))
}

func TestRegisterWindow(t *testing.T) {
	m := newMenu()
	id, err := m.RegisterWindow("Game[-1000]>Dear ImGui Demo")
	require.NoError(t, err)
	w := m.Window(id)
	require.NotNil(t, w)
	assert.False(t, w.Visible())

	w.Toggle()
	assert.True(t, w.Visible())
	*w.Open() = false
	assert.False(t, w.Visible())

	id2, err := m.RegisterWindow("Game>Stats")
	require.NoError(t, err)
	assert.NotEqual(t, id, id2)

	bad, err := m.RegisterWindow("Game>Stats")
	assert.Error(t, err)
	assert.Equal(t, InvalidWindow, bad)
	assert.Nil(t, m.Window(bad))
	assert.Nil(t, m.Window(99))
}

// scriptDrawer opens every menu and clicks the labels in click.
type scriptDrawer struct {
	click  map[string]bool
	closed map[string]bool
	log    []string
}

func (d *scriptDrawer) BeginMainMenuBar() bool {
	d.log = append(d.log, "bar")
	return true
}

func (d *scriptDrawer) EndMainMenuBar() { d.log = append(d.log, "/bar") }

func (d *scriptDrawer) BeginMenu(label string) bool {
	if d.closed[label] {
		return false
	}
	d.log = append(d.log, "menu "+label)
	return true
}

func (d *scriptDrawer) EndMenu() { d.log = append(d.log, "/menu") }

func (d *scriptDrawer) MenuItem(label string, selected bool) bool {
	d.log = append(d.log, fmt.Sprintf("item %s %v", label, selected))
	return d.click[label]
}

func TestDraw(t *testing.T) {
	m := newMenu()
	quit := 0
	require.NoError(t, m.RegisterCommand("Game[-1000]>Exit[1000]", func() { quit++ }))
	id, err := m.RegisterWindow("Game[-1000]>Demo")
	require.NoError(t, err)
	require.NoError(t, m.RegisterCommand("Debug>Stats>Reset", func() {}))

	d := &scriptDrawer{click: map[string]bool{"Exit": true, "Demo": true}, closed: map[string]bool{"Debug": true}}
	m.Draw(d)

	assert.Equal(t, []string{
		"bar",
		"menu Game",
		"item Demo false",
		"item Exit false",
		"/menu",
		"/bar",
	}, d.log)
	assert.Equal(t, 1, quit)
	assert.True(t, m.Window(id).Visible())

	d.log = nil
	d.click = nil
	m.Draw(d)
	assert.Contains(t, d.log, "item Demo true")
}

type closedBar struct{ scriptDrawer }

func (*closedBar) BeginMainMenuBar() bool { return false }
func (*closedBar) EndMainMenuBar()        { panic("EndMainMenuBar without Begin") }

func TestDrawClosedBar(t *testing.T) {
	m := newMenu()
	require.NoError(t, m.RegisterCommand("A>B", func() { t.Fatal("invoked") }))
	assert.NotPanics(t, func() { m.Draw(&closedBar{}) })
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "window", KindWindow.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
