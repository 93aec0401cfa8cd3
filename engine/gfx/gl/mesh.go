package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/imbridge/engine/gfx"
)

// glMesh stages geometry in an embedded MeshBuffer and mirrors it into a
// VAO with one vertex and one index buffer on Upload.
type glMesh struct {
	gfx.MeshBuffer
	name          string
	vao, vbo, ebo uint32
	vboCap        int // bytes
	eboCap        int // bytes
	layout        gfx.VertexLayout
}

func (r *RendererGL) CreateDynamicMesh(name string) (gfx.DynamicMesh, error) {
	m := &glMesh{name: name}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)
	return m, nil
}

func (r *RendererGL) DeleteMesh(dm gfx.DynamicMesh) {
	m, ok := dm.(*glMesh)
	if !ok {
		return
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	*m = glMesh{}
}

// Upload grows the GL buffers when needed and streams the staged data.
func (m *glMesh) Upload() error {
	if err := m.MeshBuffer.Upload(); err != nil {
		return err
	}
	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if n := len(m.Vertices); n > m.vboCap {
		m.vboCap = grow(m.vboCap, n)
		gl.BufferData(gl.ARRAY_BUFFER, m.vboCap, nil, gl.STREAM_DRAW)
	}
	if len(m.Vertices) > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(m.Vertices), gl.Ptr(m.Vertices))
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	if n := len(m.Indices) * 2; n > m.eboCap {
		m.eboCap = grow(m.eboCap, n)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, m.eboCap, nil, gl.STREAM_DRAW)
	}
	if len(m.Indices) > 0 {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(m.Indices)*2, gl.Ptr(m.Indices))
	}

	if m.Layout.Stride != 0 && !m.layout.Equal(m.Layout) {
		m.bindLayout()
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

// bindLayout records the attribute pointers in the VAO. The VBO must be
// bound.
func (m *glMesh) bindLayout() {
	for _, a := range m.layout.Attributes {
		gl.DisableVertexAttribArray(uint32(a.Location))
	}
	m.layout = gfx.VertexLayout{
		Stride:     m.Layout.Stride,
		Attributes: append([]gfx.VertexAttrib(nil), m.Layout.Attributes...),
	}
	for _, a := range m.layout.Attributes {
		size, xtype, norm := attribFormat(a)
		gl.EnableVertexAttribArray(uint32(a.Location))
		gl.VertexAttribPointerWithOffset(uint32(a.Location), size, xtype, norm, int32(m.layout.Stride), uintptr(a.Offset))
	}
}
