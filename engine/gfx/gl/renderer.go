// Package glbackend renders through OpenGL 3.3 core. RendererGL is at once
// the engine's core.Renderer, the gfx.Device creating GPU resources and
// the gfx.CommandStream executing draws immediately.
package glbackend

import (
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/imbridge/engine/core"
	"github.com/hubastard/imbridge/engine/gfx"
)

type RendererGL struct {
	win core.Window
	log *slog.Logger

	vp      mgl32.Mat4
	texture *glTexture
	program uint32 // last bound
}

var (
	_ core.Renderer     = (*RendererGL)(nil)
	_ gfx.Device        = (*RendererGL)(nil)
	_ gfx.CommandStream = (*RendererGL)(nil)
)

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win, log: core.Logger(), vp: mgl32.Ident4()}
	r.log.Info("gl renderer",
		"vendor", r.GPUVendor(), "renderer", r.GPURenderer(), "version", r.GPUVersion())
	return r, nil
}

// New matches the constructor signature core.Run expects.
func New(win core.Window, cfg core.Config) (core.Renderer, error) {
	return NewRendererGL(win, cfg)
}

func (r *RendererGL) Shutdown() {
	gl.UseProgram(0)
	r.program = 0
	r.texture = nil
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *RendererGL) GPUVendor() string   { return gl.GoStr(gl.GetString(gl.VENDOR)) }
func (r *RendererGL) GPURenderer() string { return gl.GoStr(gl.GetString(gl.RENDERER)) }
func (r *RendererGL) GPUVersion() string  { return gl.GoStr(gl.GetString(gl.VERSION)) }

// --- gfx.CommandStream ---

func (r *RendererGL) SetViewport(rect gfx.Rect) {
	gl.Viewport(int32(rect.X), int32(rect.Y), int32(rect.W), int32(rect.H))
}

func (r *RendererGL) SetViewProjection(view, proj mgl32.Mat4) {
	r.vp = proj.Mul4(view)
}

// SetTexture selects the texture sampled by the following draws. Only one
// slot is supported; it is bound to unit 0.
func (r *RendererGL) SetTexture(_ string, t gfx.Texture) {
	gt, ok := t.(*glTexture)
	if !ok {
		return
	}
	r.texture = gt
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, gt.id)
}

// EnableScissor takes a bottom-left origin rectangle in pixels.
func (r *RendererGL) EnableScissor(rect gfx.Rect) {
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(int32(rect.X), int32(rect.Y), int32(rect.W), int32(rect.H))
}

func (r *RendererGL) DisableScissor() {
	gl.Disable(gl.SCISSOR_TEST)
}

func (r *RendererGL) DrawMesh(dm gfx.DynamicMesh, mat gfx.Material, subMesh int) {
	m, ok := dm.(*glMesh)
	if !ok || subMesh < 0 || subMesh >= m.SubMeshCount() {
		return
	}
	gm, ok := mat.(*glMaterial)
	if !ok || gm.program == 0 {
		return
	}
	s := m.SubMesh(subMesh)
	if s.IndexCount == 0 {
		return
	}

	if r.program != gm.program {
		gl.UseProgram(gm.program)
		r.program = gm.program
	}
	gl.UniformMatrix4fv(gm.uVP, 1, false, &r.vp[0])
	if gm.uTex >= 0 {
		gl.Uniform1i(gm.uTex, 0)
	}

	if gm.desc.Blend {
		gl.Enable(gl.BLEND)
		gl.BlendEquation(gl.FUNC_ADD)
		gl.BlendFuncSeparate(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA, gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)

	gl.BindVertexArray(m.vao)
	gl.DrawElementsBaseVertex(gl.TRIANGLES, int32(s.IndexCount), gl.UNSIGNED_SHORT,
		gl.PtrOffset(s.IndexStart*2), int32(s.BaseVertex))
	gl.BindVertexArray(0)
}
