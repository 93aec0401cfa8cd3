// Package guidraw turns the per-frame draw lists of an immediate-mode GUI
// into one dynamic mesh plus an ordered list of scissored, textured draw
// batches, and replays them through a gfx.CommandStream.
//
// Everything here runs on the thread owning the graphics context. Draw
// lists are borrowed from the GUI library for the duration of a frame and
// must not be retained past the next NewFrame.
package guidraw

import (
	"unsafe"

	"github.com/hubastard/imbridge/engine/gfx"
)

// Vertex matches the GUI library's vertex record: position, UV and packed
// RGBA8 colour (R in the low byte).
type Vertex struct {
	Pos [2]float32
	UV  [2]float32
	Col uint32
}

// VertexSize is the byte stride of Vertex.
const VertexSize = 20

// VertexLayout describes Vertex to the graphics backend.
var VertexLayout = gfx.VertexLayout{
	Stride: VertexSize,
	Attributes: []gfx.VertexAttrib{
		{Location: 0, Size: 2, Type: gfx.AttribFloat32, Offset: 0},     // pos
		{Location: 1, Size: 2, Type: gfx.AttribFloat32, Offset: 2 * 4}, // uv
		{Location: 2, Size: 1, Type: gfx.AttribPackedRGBA8, Offset: 4 * 4},
	},
}

// TextureID is the opaque handle the GUI library stores per draw command.
type TextureID uint64

// DrawCommand is one run of triangles sharing a clip rectangle and texture.
type DrawCommand struct {
	// ClipRect is (minX, minY, maxX, maxY) in display coordinates.
	ClipRect     [4]float32
	TextureID    TextureID
	IndexOffset  uint32 // first index, relative to the owning list
	VertexOffset uint32 // base vertex, relative to the owning list
	ElementCount uint32
}

// DrawList is one command-list segment. Vertices and Indices usually alias
// memory owned by the GUI library.
type DrawList struct {
	Vertices []Vertex
	Indices  []uint16
	Commands []DrawCommand
}

// DrawData is the complete output of one GUI frame.
type DrawData struct {
	Valid            bool
	DisplayPos       [2]float32
	DisplaySize      [2]float32
	FramebufferScale [2]float32
	Lists            []DrawList
}

// Reset empties d while keeping the Lists backing array.
func (d *DrawData) Reset() {
	for i := range d.Lists {
		d.Lists[i] = DrawList{Commands: d.Lists[i].Commands[:0]}
	}
	d.Lists = d.Lists[:0]
	d.Valid = false
}

// CommandCount is the number of draw commands across all lists.
func (d *DrawData) CommandCount() int {
	n := 0
	for i := range d.Lists {
		n += len(d.Lists[i].Commands)
	}
	return n
}

func (d *DrawData) TotalVertexCount() int {
	n := 0
	for i := range d.Lists {
		n += len(d.Lists[i].Vertices)
	}
	return n
}

func (d *DrawData) TotalIndexCount() int {
	n := 0
	for i := range d.Lists {
		n += len(d.Lists[i].Indices)
	}
	return n
}

// FramebufferSize is DisplaySize scaled into framebuffer pixels.
func (d *DrawData) FramebufferSize() [2]float32 {
	sx, sy := d.FramebufferScale[0], d.FramebufferScale[1]
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return [2]float32{d.DisplaySize[0] * sx, d.DisplaySize[1] * sy}
}

// vertexBytes views v as raw bytes without copying.
func vertexBytes(v []Vertex) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(v))), len(v)*VertexSize)
}

// VerticesFrom builds a bounds-checked []Vertex view over foreign memory
// holding n records. The view borrows the memory; it is only valid while
// the owner keeps it alive and unchanged.
func VerticesFrom(p unsafe.Pointer, n int) []Vertex {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*Vertex)(p), n)
}

// IndicesFrom is VerticesFrom for 16-bit index buffers.
func IndicesFrom(p unsafe.Pointer, n int) []uint16 {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*uint16)(p), n)
}
