package dearimgui

import (
	"github.com/hubastard/imbridge/engine/colors"
	"github.com/hubastard/imbridge/engine/debugmenu"
	"github.com/hubastard/imbridge/engine/guidraw"
	"github.com/inkyblackness/imgui-go/v4"
)

// MenuDrawer draws a debugmenu.Menu with imgui menu calls.
type MenuDrawer struct{}

var _ debugmenu.Drawer = MenuDrawer{}

func (MenuDrawer) BeginMainMenuBar() bool      { return imgui.BeginMainMenuBar() }
func (MenuDrawer) EndMainMenuBar()             { imgui.EndMainMenuBar() }
func (MenuDrawer) BeginMenu(label string) bool { return imgui.BeginMenu(label) }
func (MenuDrawer) EndMenu()                    { imgui.EndMenu() }

func (MenuDrawer) MenuItem(label string, selected bool) bool {
	return imgui.MenuItemV(label, "", selected, true)
}

// ShowDemo draws the imgui demo while w is visible. Closing the demo hides
// w.
func ShowDemo(w *debugmenu.Window) {
	if w == nil || !w.Visible() {
		return
	}
	imgui.ShowDemoWindow(w.Open())
}

// Image draws a registered texture at its native size times scale.
func Image(id guidraw.TextureID, w, h int, scale float32) {
	imgui.Image(imgui.TextureID(id), imgui.Vec2{X: float32(w) * scale, Y: float32(h) * scale})
}

// BeginWindow opens a closable window bound to w's visibility. End must be
// called whenever it returns true.
func BeginWindow(w *debugmenu.Window) bool {
	if w == nil || !w.Visible() {
		return false
	}
	if !imgui.BeginV(w.Name, w.Open(), imgui.WindowFlagsAlwaysAutoResize) {
		imgui.End()
		return false
	}
	return true
}

func End() { imgui.End() }

func Text(s string) { imgui.Text(s) }

func TextColored(c colors.Color, s string) {
	imgui.PushStyleColor(imgui.StyleColorText, imgui.Vec4{X: c[0], Y: c[1], Z: c[2], W: c[3]})
	imgui.Text(s)
	imgui.PopStyleColor()
}

// Meter draws a bar width pixels wide, filled to frac, over a faint track
// of the same colour.
func Meter(frac, width float32, fill colors.Color) {
	frac = min(max(frac, 0), 1)
	h := imgui.TextLineHeight()
	p := imgui.CursorScreenPos()
	end := imgui.Vec2{X: p.X + width, Y: p.Y + h}

	dl := imgui.WindowDrawList()
	dl.AddRectFilled(p, end, imgui.PackedColor(fill.WithAlpha(0.25).Packed()))
	dl.AddRectFilled(p, imgui.Vec2{X: p.X + width*frac, Y: end.Y}, imgui.PackedColor(fill.Packed()))
	imgui.Dummy(imgui.Vec2{X: width, Y: h})
}
