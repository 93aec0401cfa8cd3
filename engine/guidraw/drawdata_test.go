package guidraw

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexMatchesLayout(t *testing.T) {
	var v Vertex
	assert.Equal(t, uintptr(VertexSize), unsafe.Sizeof(v))
	assert.Equal(t, uintptr(VertexLayout.Attributes[1].Offset), unsafe.Offsetof(v.UV))
	assert.Equal(t, uintptr(VertexLayout.Attributes[2].Offset), unsafe.Offsetof(v.Col))
	assert.Equal(t, VertexSize, VertexLayout.Stride)
}

func TestDrawDataTotals(t *testing.T) {
	dd := &DrawData{Valid: true, Lists: []DrawList{quadList(2, 1), quadList(1, 1)}}
	assert.Equal(t, 3, dd.CommandCount())
	assert.Equal(t, 12, dd.TotalVertexCount())
	assert.Equal(t, 18, dd.TotalIndexCount())

	dd.Reset()
	assert.False(t, dd.Valid)
	assert.Zero(t, dd.CommandCount())
	assert.Equal(t, 2, cap(dd.Lists))
}

func TestFramebufferSizeDefaultsScale(t *testing.T) {
	dd := &DrawData{DisplaySize: [2]float32{640, 480}}
	assert.Equal(t, [2]float32{640, 480}, dd.FramebufferSize())

	dd.FramebufferScale = [2]float32{2, 2}
	assert.Equal(t, [2]float32{1280, 960}, dd.FramebufferSize())
}

func TestForeignViews(t *testing.T) {
	src := []Vertex{{Pos: [2]float32{1, 2}, Col: 0xff0000ff}, {UV: [2]float32{0.5, 0.5}}}
	view := VerticesFrom(unsafe.Pointer(&src[0]), len(src))
	require.Len(t, view, 2)
	assert.Equal(t, src[1].UV, view[1].UV)

	idx := []uint16{0, 1, 2}
	assert.Equal(t, idx, IndicesFrom(unsafe.Pointer(&idx[0]), 3))

	assert.Nil(t, VerticesFrom(nil, 3))
	assert.Nil(t, IndicesFrom(unsafe.Pointer(&idx[0]), 0))
	assert.Len(t, vertexBytes(src), 2*VertexSize)
	assert.Nil(t, vertexBytes(nil))
}
