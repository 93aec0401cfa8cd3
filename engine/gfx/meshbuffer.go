package gfx

import (
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("gfx: range outside mesh buffer")

// MeshBuffer is a CPU-resident DynamicMesh. Backends embed it as their
// staging area and override Upload; on its own it is a complete mesh for
// headless use.
//
// Storage is reused across frames: Clear and the Set*Params calls only
// grow the backing arrays when the new size exceeds their capacity.
type MeshBuffer struct {
	Layout      VertexLayout
	IndexFormat IndexFormat
	Vertices    []byte
	Indices     []uint16
	subMeshes   []SubMesh
	uploads     int
}

func (m *MeshBuffer) Clear() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
	m.subMeshes = m.subMeshes[:0]
}

func (m *MeshBuffer) SetVertexBufferParams(vertexCount int, layout VertexLayout) {
	m.Layout = layout
	m.Vertices = resize(m.Vertices, vertexCount*layout.Stride)
}

func (m *MeshBuffer) SetIndexBufferParams(indexCount int, format IndexFormat) {
	m.IndexFormat = format
	m.Indices = resize(m.Indices, indexCount)
}

func (m *MeshBuffer) SetVertexBufferData(src []byte, dstVertex int) error {
	if m.Layout.Stride == 0 {
		return fmt.Errorf("%w: vertex layout not set", ErrOutOfRange)
	}
	if len(src)%m.Layout.Stride != 0 {
		return fmt.Errorf("gfx: vertex data length %d is not a multiple of stride %d", len(src), m.Layout.Stride)
	}
	off := dstVertex * m.Layout.Stride
	if dstVertex < 0 || off+len(src) > len(m.Vertices) {
		return fmt.Errorf("%w: vertices [%d,%d) of %d", ErrOutOfRange,
			dstVertex, dstVertex+len(src)/m.Layout.Stride, m.VertexCount())
	}
	copy(m.Vertices[off:], src)
	return nil
}

func (m *MeshBuffer) SetIndexBufferData(src []uint16, dstIndex int) error {
	if dstIndex < 0 || dstIndex+len(src) > len(m.Indices) {
		return fmt.Errorf("%w: indices [%d,%d) of %d", ErrOutOfRange, dstIndex, dstIndex+len(src), len(m.Indices))
	}
	copy(m.Indices[dstIndex:], src)
	return nil
}

// SetSubMeshes checks every index range against the index buffer before
// replacing the table; on error the previous table is kept. Index values
// themselves are not validated.
func (m *MeshBuffer) SetSubMeshes(subs []SubMesh) error {
	for i, s := range subs {
		if s.IndexStart < 0 || s.IndexCount < 0 || s.IndexStart+s.IndexCount > len(m.Indices) {
			return fmt.Errorf("%w: sub-mesh %d indices [%d,%d) of %d", ErrOutOfRange,
				i, s.IndexStart, s.IndexStart+s.IndexCount, len(m.Indices))
		}
		if s.BaseVertex < 0 || (s.IndexCount > 0 && s.BaseVertex >= m.VertexCount()) {
			return fmt.Errorf("%w: sub-mesh %d base vertex %d of %d", ErrOutOfRange, i, s.BaseVertex, m.VertexCount())
		}
	}
	m.subMeshes = append(m.subMeshes[:0], subs...)
	return nil
}

func (m *MeshBuffer) SubMeshCount() int     { return len(m.subMeshes) }
func (m *MeshBuffer) SubMesh(i int) SubMesh { return m.subMeshes[i] }

func (m *MeshBuffer) VertexCount() int {
	if m.Layout.Stride == 0 {
		return 0
	}
	return len(m.Vertices) / m.Layout.Stride
}

func (m *MeshBuffer) IndexCount() int { return len(m.Indices) }

// Upload only counts calls; GPU backends replace it.
func (m *MeshBuffer) Upload() error {
	m.uploads++
	return nil
}

// Uploads reports how many times Upload ran.
func (m *MeshBuffer) Uploads() int { return m.uploads }

func resize[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}
