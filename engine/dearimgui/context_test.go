package dearimgui

import (
	"testing"

	"github.com/hubastard/imbridge/engine/colors"
	"github.com/hubastard/imbridge/engine/core"
	"github.com/hubastard/imbridge/engine/debugmenu"
	"github.com/hubastard/imbridge/engine/guidraw"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	c, err := New(core.GUIConfig{FontScale: 1}, core.NopLogger())
	require.NoError(t, err)
	t.Cleanup(c.Destroy)
	return c
}

func TestLayoutMatchesVertex(t *testing.T) {
	require.NoError(t, CheckLayout())
}

func TestFontAtlasIsRGBA(t *testing.T) {
	c := newTestContext(t)
	px, w, h := c.FontAtlas()
	require.Positive(t, w)
	require.Positive(t, h)
	assert.Len(t, px, w*h*4)
}

func TestFrameConvertsDrawData(t *testing.T) {
	c := newTestContext(t)
	c.FontAtlas()
	c.SetFontTexture(7)

	c.SetDisplaySize(320, 240)
	c.SetFramebufferScale(2, 2)
	c.SetDeltaTime(1.0 / 60)
	c.NewFrame()
	imgui.Begin("window")
	imgui.Text("hello")
	imgui.End()
	c.Render()

	dd := c.DrawData()
	require.True(t, dd.Valid)
	assert.Equal(t, [2]float32{320, 240}, dd.DisplaySize)
	assert.Equal(t, [2]float32{2, 2}, dd.FramebufferScale)
	require.NotEmpty(t, dd.Lists)
	require.Positive(t, dd.CommandCount())

	for _, l := range dd.Lists {
		var end uint32
		for _, cmd := range l.Commands {
			assert.Equal(t, end, cmd.IndexOffset)
			end += cmd.ElementCount
			assert.Equal(t, guidraw.TextureID(7), cmd.TextureID)
		}
		assert.LessOrEqual(t, int(end), len(l.Indices))
	}

	// The conversion reuses its storage every frame.
	c.NewFrame()
	c.Render()
	assert.Same(t, dd, c.DrawData())
}

func TestMenuDrawerInFrame(t *testing.T) {
	c := newTestContext(t)
	c.FontAtlas()
	c.SetDisplaySize(320, 240)
	c.SetDeltaTime(1.0 / 60)

	m := debugmenu.New(debugmenu.WithLogger(core.NopLogger()))
	id, err := m.RegisterWindow("Game[-1000]>Dear ImGui Demo")
	require.NoError(t, err)
	m.Window(id).SetVisible(true)

	c.NewFrame()
	m.Draw(MenuDrawer{})
	ShowDemo(m.Window(id))
	c.Render()
	assert.True(t, c.DrawData().Valid)
}

func TestKeyMapCoversNavigation(t *testing.T) {
	assert.Equal(t, core.KeyTab, keyMap[imgui.KeyTab])
	assert.Equal(t, core.KeyEnter, keyMap[imgui.KeyEnter])
	for _, k := range keyMap {
		assert.NotEqual(t, core.KeyUnknown, k)
	}
}

func startFrames(t *testing.T) *Context {
	t.Helper()
	c := newTestContext(t)
	c.FontAtlas()
	c.SetDisplaySize(320, 240)
	c.SetDeltaTime(1.0 / 60)
	c.AddMousePos(10, 10)
	return c
}

func TestClickInsideOneFrameIsDelivered(t *testing.T) {
	c := startFrames(t)
	c.AddMouseButton(0, true)
	c.AddMouseButton(0, false)

	c.NewFrame()
	assert.True(t, imgui.IsMouseClicked(0))
	assert.True(t, imgui.IsMouseDown(0))
	assert.Equal(t, 1, c.PendingButtons(), "release waits for the next frame")
	c.Render()

	c.NewFrame()
	assert.True(t, imgui.IsMouseReleased(0))
	assert.False(t, imgui.IsMouseDown(0))
	assert.Zero(t, c.PendingButtons())
	c.Render()
}

func TestReleaseThenPressKeepsButtonHeld(t *testing.T) {
	c := startFrames(t)
	c.AddMouseButton(1, true)
	c.NewFrame()
	c.Render()

	c.AddMouseButton(1, false)
	c.AddMouseButton(1, true)
	c.NewFrame()
	assert.True(t, imgui.IsMouseReleased(1))
	c.Render()

	c.NewFrame()
	assert.True(t, imgui.IsMouseClicked(1))
	assert.True(t, imgui.IsMouseDown(1))
	c.Render()
}

func TestRedundantButtonEventsAreDropped(t *testing.T) {
	c := startFrames(t)
	c.AddMouseButton(0, false)
	c.AddMouseButton(7, true)
	c.NewFrame()
	assert.False(t, imgui.IsMouseDown(0))
	assert.Zero(t, c.PendingButtons())
	c.Render()
}

func TestMeterDrawsInWindow(t *testing.T) {
	c := startFrames(t)
	c.NewFrame()
	imgui.Begin("meter")
	Meter(1.5, 100, colors.Green)
	Meter(-1, 100, colors.Red)
	imgui.End()
	c.Render()
	assert.Positive(t, c.DrawData().CommandCount())
}

func TestKeyMapIncludesKeyPadEnter(t *testing.T) {
	assert.Equal(t, core.KeyKPEnter, keyMap[imgui.KeyKeyPadEnter])
}
