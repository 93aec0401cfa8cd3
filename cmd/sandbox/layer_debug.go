package main

import (
	"github.com/hubastard/imbridge/engine/assets"
	"github.com/hubastard/imbridge/engine/colors"
	"github.com/hubastard/imbridge/engine/core"
	"github.com/hubastard/imbridge/engine/dearimgui"
	"github.com/hubastard/imbridge/engine/debugmenu"
	"github.com/hubastard/imbridge/engine/gfx"
	"github.com/hubastard/imbridge/engine/guidraw"
	"github.com/hubastard/imbridge/engine/profiler"
	"github.com/hubastard/imbridge/engine/scratch"
)

// LayerDebug draws the debug menu bar and the windows it toggles.
type LayerDebug struct {
	menu     *debugmenu.Menu
	pipeline *guidraw.Pipeline

	demo   *debugmenu.Window
	stats  *debugmenu.Window
	viewer *debugmenu.Window

	image      guidraw.TextureID
	imageW     int
	imageH     int
	imageScale float32

	text          *scratch.Buffer
	frameDuration float32
	tick          int
}

var _ core.GUILayer = (*LayerDebug)(nil)

// frameBudgetMS is one frame at 60 Hz.
const frameBudgetMS = 1000.0 / 60

func (l *LayerDebug) OnAttach(e *core.Engine) {
	l.text = scratch.New(4096)
	l.demo = l.window("Game[-1000]>Dear ImGui Demo")
	l.stats = l.window("Debug>Stats")
	if l.image != 0 {
		l.viewer = l.window("Debug>Texture Viewer")
	}
	if err := l.menu.RegisterCommand("Debug>Profiler>Open Capture", openProfiler); err != nil {
		core.Logger().Warn("register profiler command", "err", err)
	}
}

func (l *LayerDebug) window(path string) *debugmenu.Window {
	id, err := l.menu.RegisterWindow(path)
	if err != nil {
		core.Logger().Warn("register window", "path", path, "err", err)
	}
	return l.menu.Window(id)
}

// loadImage uploads a PNG and makes it drawable from GUI widgets.
func (l *LayerDebug) loadImage(dev gfx.Device, path string) error {
	desc, err := assets.LoadPNG(path)
	if err != nil {
		return err
	}
	tex, err := dev.CreateTexture(desc)
	if err != nil {
		return err
	}
	if l.image, err = l.pipeline.RegisterTexture(tex); err != nil {
		dev.DeleteTexture(tex)
		return err
	}
	l.imageW, l.imageH = tex.Size()
	l.imageScale = 1
	return nil
}

func (l *LayerDebug) OnDetach(e *core.Engine)                {}
func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64)    {}
func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down || k.Repeat {
		return false
	}
	switch {
	case k.Key == core.KeyP && k.Mods&core.ModCtrl != 0:
		openProfiler()
		return true
	case k.Key == core.KeyF1 && l.stats != nil:
		l.stats.Toggle()
		return true
	}
	return false
}

func openProfiler() {
	path, err := profiler.OpenProfilerGraph()
	if err != nil {
		core.Logger().Warn("open profiler", "path", path, "err", err)
		return
	}
	if path != "" {
		core.Logger().Info("profile written", "path", path)
	}
}

func (l *LayerDebug) OnGUI(e *core.Engine) {
	scope := profiler.Start("LayerDebug.OnGUI")
	defer scope.End()

	l.text.Reset()
	l.menu.Draw(dearimgui.MenuDrawer{})
	dearimgui.ShowDemo(l.demo)

	if dearimgui.BeginWindow(l.stats) {
		l.drawStats(e)
		dearimgui.End()
	}
	if l.viewer != nil && dearimgui.BeginWindow(l.viewer) {
		dearimgui.Text(l.text.I(l.imageW).C('x').I(l.imageH).Take())
		dearimgui.Image(l.image, l.imageW, l.imageH, l.imageScale)
		dearimgui.End()
	}
}

func (l *LayerDebug) drawStats(e *core.Engine) {
	t := l.text
	dearimgui.TextColored(colors.Yellow, t.S("Frame: ").I(l.tick).Take())
	fps := float32(0)
	if l.frameDuration > 0 {
		fps = 1000 / l.frameDuration
	}
	dearimgui.Text(t.S("\t").F(float64(l.frameDuration), 3).S(" ms (").F(float64(fps), 2).S(" FPS)").Take())
	budget := colors.Green
	if l.frameDuration > frameBudgetMS {
		budget = colors.Red
	}
	dearimgui.Meter(l.frameDuration/frameBudgetMS, 200, budget)

	if l.pipeline != nil {
		s := l.pipeline.LastStats()
		dearimgui.TextColored(colors.Yellow, "GUI Pass")
		dearimgui.Text(t.S("\tDraw Calls: ").I(s.DrawCalls).Take())
		dearimgui.Text(t.S("\tTexture Binds: ").I(s.TextureBinds).Take())
		dearimgui.Text(t.S("\tBatches: ").I(len(l.pipeline.Batches())).Take())
		if reg := l.pipeline.Textures(); reg != nil {
			dearimgui.Text(t.S("\tTextures: ").I(reg.Len()).Take())
		}
	}

	rt := profiler.ReadRuntime()
	dearimgui.TextColored(colors.Yellow, "Memory")
	dearimgui.Text(t.S("\tHeap: ").F(float64(rt.HeapAlloc)/(1<<20), 3).S(" MB").Take())
	dearimgui.Text(t.S("\tAllocs: ").U(rt.Mallocs).Take())
	dearimgui.Text(t.S("\tGC: ").U(uint64(rt.NumGC)).S("  Goroutines: ").I(rt.Goroutines).Take())

	dearimgui.TextColored(colors.Yellow, "GPU")
	dearimgui.Text(t.S("\t").S(e.Renderer.GPURenderer()).Take())
	dearimgui.Text(t.S("\t").S(e.Renderer.GPUVersion()).Take())
}
