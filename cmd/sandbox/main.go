package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hubastard/imbridge/engine/assets"
	"github.com/hubastard/imbridge/engine/core"
	"github.com/hubastard/imbridge/engine/dearimgui"
	"github.com/hubastard/imbridge/engine/debugmenu"
	glbackend "github.com/hubastard/imbridge/engine/gfx/gl"
	"github.com/hubastard/imbridge/engine/guidraw"
	"github.com/hubastard/imbridge/engine/platform"
	"github.com/hubastard/imbridge/engine/profiler"
)

type App struct {
	cfg       core.Config
	imagePath string

	lastFrame time.Time
	tick      int

	gui        *dearimgui.Context
	pipeline   *guidraw.Pipeline
	menu       *debugmenu.Menu
	debugLayer *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 10) // ~1K scope samples

	a.menu = debugmenu.New()
	if err := a.menu.RegisterCommand("Game[-1000]>Exit[1000]", e.Window.RequestClose); err != nil {
		core.Logger().Error("register exit", "err", err)
	}
	a.debugLayer = &LayerDebug{menu: a.menu}

	if a.cfg.GUI.Enabled {
		if err := a.startGUI(e); err != nil {
			core.Logger().Error("gui disabled", "err", err)
			a.stopGUI()
		}
	}
	e.Layers.Push(e, a.debugLayer)
}

func (a *App) startGUI(e *core.Engine) error {
	rend, ok := e.Renderer.(*glbackend.RendererGL)
	if !ok {
		return fmt.Errorf("renderer %T cannot draw the gui", e.Renderer)
	}
	vs, fs, err := assets.GUIShaders()
	if err != nil {
		return err
	}

	a.gui, err = dearimgui.New(a.cfg.GUI, core.Logger())
	if err != nil {
		return err
	}
	if cb, ok := e.Window.(dearimgui.Clipboard); ok {
		a.gui.SetClipboard(cb)
	}

	a.pipeline = guidraw.NewPipeline(a.gui, rend, rend, guidraw.WithShaders(vs, fs))
	if err := a.pipeline.Start(); err != nil {
		return err
	}
	e.Overlay = a.pipeline
	a.debugLayer.pipeline = a.pipeline

	if a.imagePath != "" {
		if err := a.debugLayer.loadImage(rend, a.imagePath); err != nil {
			core.Logger().Warn("image viewer disabled", "err", err)
		}
	}
	return nil
}

func (a *App) stopGUI() {
	if a.pipeline != nil {
		a.pipeline.Stop()
		a.pipeline = nil
	}
	if a.gui != nil {
		a.gui.Destroy()
		a.gui = nil
	}
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.tick++

	// Calculate frame duration
	now := time.Now()
	if !a.lastFrame.IsZero() {
		a.debugLayer.frameDuration = float32(now.Sub(a.lastFrame).Seconds() * 1000.0)
		a.debugLayer.tick = a.tick
	}
	a.lastFrame = now
}

func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}

func (a *App) OnShutdown(e *core.Engine) {
	e.Overlay = nil
	a.stopGUI()
}

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults apply when empty)")
	imagePath := flag.String("image", "", "PNG shown in the Texture Viewer window")
	flag.Parse()

	cfg := core.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = core.LoadConfig(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	level, _ := core.ParseLogLevel(cfg.LogLevel)
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	app := &App{cfg: cfg, imagePath: *imagePath}
	if err := core.Run(app, cfg, platform.NewWindow, glbackend.New); err != nil {
		core.Logger().Error("run failed", "err", err)
		os.Exit(1)
	}
}
