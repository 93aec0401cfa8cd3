package core

import "time"

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Layers   LayerStack
	Input    *Input

	// Overlay, when set by the App during OnStart, is driven once per
	// rendered frame after all layers have rendered.
	Overlay Overlay

	start time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	Size() (int, int)
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer abstraction (minimal; the GUI path talks to gfx directly).
type Renderer interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)
	GPUVendor() string
	GPURenderer() string
	GPUVersion() string
	Shutdown()
}

// Overlay is an immediate-mode layer drawn on top of everything else.
//
// BeginFrame receives the window size in screen units and in framebuffer
// pixels and reports whether a frame was started; EndFrame is only called
// after a successful BeginFrame. Present replays the finished frame into
// the framebuffer.
type Overlay interface {
	HandleEvent(ev Event) bool
	BeginFrame(dt float64, displayW, displayH, fbW, fbH int) bool
	EndFrame() bool
	Present(fbW, fbH int) error
}

// GUILayer is implemented by layers that emit immediate-mode widgets.
// OnGUI runs between Overlay.BeginFrame and Overlay.EndFrame.
type GUILayer interface {
	OnGUI(e *Engine)
}

// Event model (can expand over time).
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key    Key
	Down   bool
	Repeat bool
	Mods   Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
	Mods   Mod
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

// EventChar carries one unicode code point of text input.
type EventChar struct{ Char rune }

func (EventChar) isEvent() {}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
