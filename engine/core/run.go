package core

import (
	"fmt"
	"runtime"
	"time"
)

// Run wires the platform window + renderer and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{Window: win, Renderer: rend, Input: NewInput(), start: time.Now()}
	win.SetEventCallback(func(ev Event) { dispatch(eng, app, ev) })

	app.OnStart(eng)
	Logger().Info("engine started", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		clear   = cfg.ClearColor
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		accum += frame

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			accum -= tick
			steps++
		}
		alpha := float64(accum) / float64(tick)

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		app.OnRender(eng, alpha)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })

		if eng.Overlay != nil {
			renderOverlay(eng, frame.Seconds())
		}

		win.SwapBuffers()
	}

	eng.Layers.Clear(eng)
	app.OnShutdown(eng)
	Logger().Info("engine exit", "uptime", eng.Uptime())
	return nil
}

func dispatch(eng *Engine, app App, ev Event) {
	eng.Input.Handle(ev)
	app.OnEvent(eng, ev)
	if r, ok := ev.(EventResize); ok {
		if r.W >= 1 && r.H >= 1 {
			eng.Renderer.Resize(r.W, r.H)
		}
	}
	if eng.Overlay != nil && eng.Overlay.HandleEvent(ev) {
		return
	}
	eng.Layers.Dispatch(eng, ev)
}

func renderOverlay(eng *Engine, dt float64) {
	dw, dh := eng.Window.Size()
	fw, fh := eng.Window.FramebufferSize()
	if eng.Overlay.BeginFrame(dt, dw, dh, fw, fh) {
		eng.Layers.ForEach(func(l Layer) {
			if gl, ok := l.(GUILayer); ok {
				gl.OnGUI(eng)
			}
		})
		eng.Overlay.EndFrame()
	}

	if fw < 1 || fh < 1 {
		return
	}
	if err := eng.Overlay.Present(fw, fh); err != nil {
		Logger().Warn("overlay present failed", "err", err)
	}
}
