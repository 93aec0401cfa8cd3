package guidraw

import "github.com/hubastard/imbridge/engine/gfx"

// Batch is one visible draw command, ready for the render pass.
type Batch struct {
	// ClipRect is in framebuffer pixels with a bottom-left origin.
	ClipRect gfx.Rect
	// Texture is nil for commands whose id is not registered.
	Texture gfx.Texture
	SubMesh int
}

// BatchBuilder computes the visible batches of a frame. Its output slice
// is reused between frames and only reallocated when it must grow.
type BatchBuilder struct {
	batches []Batch
}

// Build walks dd in draw order. Batch sub-mesh indices count every
// command, culled or not, so they line up with MeshUpdater's table.
//
// The returned slice is valid until the next call to Build.
func (b *BatchBuilder) Build(dd *DrawData, textures TextureResolver) []Batch {
	b.batches = b.batches[:0]
	if dd == nil || !dd.Valid {
		return b.batches
	}
	if n := dd.CommandCount(); cap(b.batches) < n {
		b.batches = make([]Batch, 0, n)
	}

	fb := dd.FramebufferSize()
	scaleX, scaleY := dd.FramebufferScale[0], dd.FramebufferScale[1]
	if scaleX == 0 {
		scaleX = 1
	}
	if scaleY == 0 {
		scaleY = 1
	}
	offX, offY := dd.DisplayPos[0], dd.DisplayPos[1]

	subMesh := 0
	for li := range dd.Lists {
		for _, cmd := range dd.Lists[li].Commands {
			// Project the scissor rectangle into framebuffer space.
			x1 := (cmd.ClipRect[0] - offX) * scaleX
			y1 := (cmd.ClipRect[1] - offY) * scaleY
			x2 := (cmd.ClipRect[2] - offX) * scaleX
			y2 := (cmd.ClipRect[3] - offY) * scaleY

			if outsideView(x1, y1, x2, y2, fb) {
				subMesh++
				continue
			}

			var tex gfx.Texture
			if textures != nil {
				tex, _ = textures.Resolve(cmd.TextureID)
			}
			b.batches = append(b.batches, Batch{
				ClipRect: gfx.Rect{X: x1, Y: fb[1] - y2, W: x2 - x1, H: y2 - y1},
				Texture:  tex,
				SubMesh:  subMesh,
			})
			subMesh++
		}
	}
	return b.batches
}

// outsideView is a pure axis-aligned rejection; partially visible
// rectangles are kept unclamped and left to the scissor.
func outsideView(x1, y1, x2, y2 float32, fb [2]float32) bool {
	return x1 >= fb[0] || y1 >= fb[1] || x2 < 0 || y2 < 0
}
