package guidraw

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hubastard/imbridge/engine/core"
	"github.com/hubastard/imbridge/engine/gfx"
	"github.com/hubastard/imbridge/engine/profiler"
)

// TextureSlot is the sampler uniform the GUI material reads.
const TextureSlot = "uTexture"

// GUI is the immediate-mode library as seen by the pipeline.
type GUI interface {
	InputSink
	SetDisplaySize(w, h float32)
	SetFramebufferScale(x, y float32)
	SetDeltaTime(dt float32)
	NewFrame()
	// Render finalizes the frame; DrawData is only meaningful after it.
	Render()
	DrawData() *DrawData
	// FontAtlas returns the baked RGBA32 atlas pixels.
	FontAtlas() (pixels []byte, w, h int)
	SetFontTexture(id TextureID)
	WantCaptureMouse() bool
	WantCaptureKeyboard() bool
}

type Option func(*Pipeline)

func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

// WithShaders sets the GUI material's shader sources.
func WithShaders(vertexSrc, fragmentSrc string) Option {
	return func(p *Pipeline) {
		p.material.VertexSource = vertexSrc
		p.material.FragmentSource = fragmentSrc
	}
}

// Pipeline owns one GUI rendering session: the frame gate, the texture
// registry, the dynamic mesh and the render pass. It implements
// core.Overlay.
type Pipeline struct {
	gui    GUI
	dev    gfx.Device
	stream gfx.CommandStream
	log    *slog.Logger

	material gfx.MaterialDesc
	input    InputQueue
	textures *TextureRegistry
	atlas    gfx.Texture
	updater  MeshUpdater
	builder  BatchBuilder
	pass     RenderPass
	executor Executor

	running      bool
	frameStarted bool
	lastStats    PassStats
}

var _ core.Overlay = (*Pipeline)(nil)

func NewPipeline(gui GUI, dev gfx.Device, stream gfx.CommandStream, opts ...Option) *Pipeline {
	p := &Pipeline{
		gui:    gui,
		dev:    dev,
		stream: stream,
		material: gfx.MaterialDesc{
			Name:        "GUI.Material",
			TextureSlot: TextureSlot,
			Blend:       true,
		},
	}
	for _, o := range opts {
		o(p)
	}
	if p.log == nil {
		p.log = core.Logger()
	}
	return p
}

// Start creates the session's mesh, material and font atlas texture.
func (p *Pipeline) Start() (err error) {
	if p.running {
		return nil
	}
	defer func() {
		if err != nil {
			p.release()
		}
	}()

	p.textures = NewTextureRegistry()

	if p.pass.Mesh, err = p.dev.CreateDynamicMesh("GUI.Mesh"); err != nil {
		return fmt.Errorf("create gui mesh: %w", err)
	}
	if p.pass.Material, err = p.dev.CreateMaterial(p.material); err != nil {
		return fmt.Errorf("create gui material: %w", err)
	}

	pixels, w, h := p.gui.FontAtlas()
	p.atlas, err = p.dev.CreateTexture(gfx.TextureDesc{
		Name:      "GUI.AtlasTexture",
		Width:     w,
		Height:    h,
		Format:    gfx.TextureRGBA8,
		Pixels:    pixels,
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return fmt.Errorf("create font atlas: %w", err)
	}
	p.gui.SetFontTexture(p.textures.Register(p.atlas))

	p.running = true
	p.log.Info("gui session started", "atlas_w", w, "atlas_h", h)
	return nil
}

// Stop releases the session's resources. The pipeline can be started
// again afterwards with a fresh registry.
func (p *Pipeline) Stop() {
	if !p.running {
		return
	}
	p.release()
	p.log.Info("gui session stopped")
}

func (p *Pipeline) release() {
	if p.atlas != nil {
		p.dev.DeleteTexture(p.atlas)
		p.atlas = nil
	}
	if p.pass.Material != nil {
		p.dev.DeleteMaterial(p.pass.Material)
		p.pass.Material = nil
	}
	if p.pass.Mesh != nil {
		p.dev.DeleteMesh(p.pass.Mesh)
		p.pass.Mesh = nil
	}
	p.pass.SetBatches(nil)
	p.textures = nil
	p.running = false
	p.frameStarted = false
}

func (p *Pipeline) Running() bool      { return p.running }
func (p *Pipeline) FrameStarted() bool { return p.frameStarted }
func (p *Pipeline) Input() *InputQueue { return &p.input }

// Textures returns the session's registry, or nil when not running.
func (p *Pipeline) Textures() *TextureRegistry { return p.textures }

// Batches returns the batches of the last finished frame.
func (p *Pipeline) Batches() []Batch { return p.pass.Batches() }

func (p *Pipeline) Mesh() gfx.DynamicMesh { return p.pass.Mesh }

// LastStats reports what the latest Render submitted.
func (p *Pipeline) LastStats() PassStats { return p.lastStats }

// RegisterTexture makes t drawable from GUI image widgets.
func (p *Pipeline) RegisterTexture(t gfx.Texture) (TextureID, error) {
	if p.textures == nil {
		return 0, errors.New("guidraw: pipeline not started")
	}
	return p.textures.Register(t), nil
}

// HandleEvent queues GUI input and reports whether the GUI wants to keep
// the event from reaching the layers below.
func (p *Pipeline) HandleEvent(ev core.Event) bool {
	if !p.input.Handle(ev) || !p.running {
		return false
	}
	switch ev.(type) {
	case core.EventMouseMove:
		return false
	case core.EventMouseButton, core.EventScroll:
		return p.gui.WantCaptureMouse()
	case core.EventKey, core.EventChar:
		return p.gui.WantCaptureKeyboard()
	}
	return false
}

// BeginFrame delivers queued input and starts a GUI frame. It returns
// false, doing nothing, when the session is not running; callers simply
// try again next tick.
func (p *Pipeline) BeginFrame(dt float64, displayW, displayH, fbW, fbH int) bool {
	if !p.running {
		p.log.Debug("gui frame skipped: session not running")
		return false
	}

	// Upsert every frame; the registry keeps the id stable.
	atlasID := p.textures.Register(p.atlas)

	p.input.Flush(p.gui)
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	p.gui.SetDeltaTime(float32(dt))
	p.gui.SetDisplaySize(float32(displayW), float32(displayH))
	if displayW > 0 && displayH > 0 && fbW > 0 && fbH > 0 {
		p.gui.SetFramebufferScale(float32(fbW)/float32(displayW), float32(fbH)/float32(displayH))
	} else {
		p.gui.SetFramebufferScale(1, 1)
	}
	p.gui.NewFrame()
	p.gui.SetFontTexture(atlasID)

	p.frameStarted = true
	return true
}

// EndFrame finalizes the started frame, uploads its geometry and builds
// its batches. Without a started frame it does nothing and returns false,
// so draw data is generated at most once per BeginFrame.
func (p *Pipeline) EndFrame() bool {
	if !p.frameStarted {
		p.log.Debug("gui end frame skipped: no frame started")
		return false
	}
	p.frameStarted = false

	scope := profiler.Start("guidraw.EndFrame")
	defer scope.End()

	p.gui.Render()
	dd := p.gui.DrawData()

	if err := p.updater.Update(p.pass.Mesh, dd); err != nil {
		p.log.Warn("gui mesh update failed; frame dropped", "err", err)
		p.pass.SetBatches(nil)
		return true
	}
	p.pass.SetBatches(p.builder.Build(dd, p.textures))
	return true
}

// Render replays the last finished frame into pixelRect.
func (p *Pipeline) Render(pixelRect gfx.Rect) (PassStats, error) {
	if !p.running {
		return PassStats{}, nil
	}
	scope := profiler.Start("guidraw.Render")
	defer scope.End()

	stats, err := p.executor.Execute(p.pass.Record(pixelRect), p.stream)
	if err != nil {
		return stats, fmt.Errorf("gui pass: %w", err)
	}
	p.lastStats = stats
	return stats, nil
}

// Present renders into the whole framebuffer.
func (p *Pipeline) Present(fbW, fbH int) error {
	_, err := p.Render(gfx.Rect{W: float32(fbW), H: float32(fbH)})
	return err
}
