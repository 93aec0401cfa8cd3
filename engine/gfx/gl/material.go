package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/imbridge/engine/gfx"
)

type glMaterial struct {
	desc    gfx.MaterialDesc
	program uint32
	uVP     int32
	uTex    int32
}

func (m *glMaterial) Name() string        { return m.desc.Name }
func (m *glMaterial) TextureSlot() string { return m.desc.TextureSlot }

// CreateMaterial compiles the material's program. The vertex shader must
// declare a mat4 uVP uniform.
func (r *RendererGL) CreateMaterial(desc gfx.MaterialDesc) (gfx.Material, error) {
	if desc.VertexSource == "" || desc.FragmentSource == "" {
		return nil, fmt.Errorf("material %q: missing shader source", desc.Name)
	}
	prog, err := makeProgram(desc.VertexSource, desc.FragmentSource)
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", desc.Name, err)
	}
	m := &glMaterial{desc: desc, program: prog, uVP: uniform(prog, "uVP"), uTex: -1}
	if desc.TextureSlot != "" {
		m.uTex = uniform(prog, desc.TextureSlot)
	}
	r.log.Debug("material created", "name", desc.Name, "program", prog)
	return m, nil
}

func (r *RendererGL) DeleteMaterial(mat gfx.Material) {
	m, ok := mat.(*glMaterial)
	if !ok || m.program == 0 {
		return
	}
	gl.DeleteProgram(m.program)
	m.program = 0
}
