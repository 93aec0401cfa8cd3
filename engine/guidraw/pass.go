package guidraw

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/imbridge/engine/gfx"
)

var ErrPassRecording = errors.New("guidraw: render pass already recording")

// PassData is the snapshot handed from the frame that built it to the
// executor. Nothing in it may be mutated until Execute returns.
type PassData struct {
	Mesh      gfx.DynamicMesh
	Material  gfx.Material
	PixelRect gfx.Rect
	Batches   []Batch
}

// RenderPass holds the long-lived pass inputs and the latest batch list.
type RenderPass struct {
	Mesh     gfx.DynamicMesh
	Material gfx.Material
	batches  []Batch
	snap     []Batch
}

// SetBatches installs the batches of a finished frame, replacing the
// previous frame's list.
func (p *RenderPass) SetBatches(b []Batch) { p.batches = b }

func (p *RenderPass) Batches() []Batch { return p.batches }

// Record builds the snapshot for one target rectangle. The batches are
// copied into storage owned by the pass, so building later frames leaves
// the snapshot intact. It stays valid until the next Record.
func (p *RenderPass) Record(pixelRect gfx.Rect) PassData {
	p.snap = append(p.snap[:0], p.batches...)
	return PassData{
		Mesh:      p.Mesh,
		Material:  p.Material,
		PixelRect: pixelRect,
		Batches:   p.snap,
	}
}

// PassStats counts what one Execute submitted.
type PassStats struct {
	DrawCalls    int
	TextureBinds int
}

type passState int

const (
	passIdle passState = iota
	passRecording
)

// Executor replays PassData into a command stream.
type Executor struct {
	state passState
}

func (x *Executor) Recording() bool { return x.state == passRecording }

// Execute binds the snapshot's viewport and projection, then issues one
// scissored draw per batch in order. Batches without a texture keep the
// previous binding and are still drawn. A degenerate target is a no-op.
func (x *Executor) Execute(data PassData, cmd gfx.CommandStream) (PassStats, error) {
	var stats PassStats
	if x.state == passRecording {
		return stats, ErrPassRecording
	}
	if data.Mesh == nil || data.PixelRect.W <= 0 || data.PixelRect.H <= 0 {
		return stats, nil
	}

	x.state = passRecording
	defer func() { x.state = passIdle }()

	cmd.SetViewport(data.PixelRect)
	cmd.SetViewProjection(ViewProjection(data.PixelRect))

	slot := ""
	if data.Material != nil {
		slot = data.Material.TextureSlot()
	}
	for i := range data.Batches {
		b := &data.Batches[i]
		if b.Texture != nil {
			cmd.SetTexture(slot, b.Texture)
			stats.TextureBinds++
		}
		cmd.EnableScissor(b.ClipRect)
		cmd.DrawMesh(data.Mesh, data.Material, b.SubMesh)
		stats.DrawCalls++
	}
	cmd.DisableScissor()
	return stats, nil
}

// ViewProjection returns the matrices for a top-left origin pixel space
// covering r. The view nudges geometry by half a texel, which keeps glyph
// edges crisp.
func ViewProjection(r gfx.Rect) (view, proj mgl32.Mat4) {
	view = mgl32.Translate3D(0.5/r.W, 0.5/r.H, 0)
	proj = mgl32.Ortho(0, r.W, r.H, 0, -1, 1)
	return view, proj
}
