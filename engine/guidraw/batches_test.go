package guidraw

import (
	"testing"

	"github.com/hubastard/imbridge/engine/gfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clipped(rects ...[4]float32) *DrawData {
	l := quadList(len(rects), 5)
	for i, r := range rects {
		l.Commands[i].ClipRect = r
	}
	return &DrawData{
		Valid:            true,
		DisplaySize:      [2]float32{100, 100},
		FramebufferScale: [2]float32{1, 1},
		Lists:            []DrawList{l},
	}
}

func TestBuildCullsAndFlips(t *testing.T) {
	dd := clipped(
		[4]float32{10, 10, 50, 50},     // inside
		[4]float32{200, 200, 300, 300}, // outside
		[4]float32{-10, 80, 20, 120},   // straddles the bottom-left corner
	)
	reg := NewTextureRegistry()
	tex := &fakeTexture{handle: 5}
	reg.Register(tex)

	var b BatchBuilder
	got := b.Build(dd, reg)
	require.Len(t, got, 2)

	assert.Equal(t, gfx.Rect{X: 10, Y: 50, W: 40, H: 40}, got[0].ClipRect)
	assert.Equal(t, 0, got[0].SubMesh)
	assert.Same(t, tex, got[0].Texture)

	// Partially visible rectangles are not clamped.
	assert.Equal(t, gfx.Rect{X: -10, Y: -20, W: 30, H: 40}, got[1].ClipRect)
	assert.Equal(t, 2, got[1].SubMesh, "culled commands still consume a sub-mesh index")
}

func TestBuildCullEdges(t *testing.T) {
	dd := clipped(
		[4]float32{100, 0, 120, 10}, // starts on the right edge
		[4]float32{0, 100, 10, 120}, // starts on the bottom edge
		[4]float32{-20, 0, -1, 10},  // ends left of the view
		[4]float32{-20, 0, 0, 10},   // touches x=0
	)
	var b BatchBuilder
	got := b.Build(dd, nil)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].SubMesh)
	assert.Nil(t, got[0].Texture)
}

func TestBuildAppliesOffsetAndScale(t *testing.T) {
	dd := clipped([4]float32{110, 60, 150, 100})
	dd.DisplayPos = [2]float32{100, 50}
	dd.FramebufferScale = [2]float32{2, 2}

	var b BatchBuilder
	got := b.Build(dd, nil)
	require.Len(t, got, 1)
	assert.Equal(t, gfx.Rect{X: 20, Y: 100, W: 80, H: 80}, got[0].ClipRect)
}

func TestBuildUnknownTextureDrawsUntextured(t *testing.T) {
	dd := clipped([4]float32{0, 0, 10, 10})
	var b BatchBuilder
	got := b.Build(dd, NewTextureRegistry())
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Texture)
}

func TestBuildReusesStorage(t *testing.T) {
	var b BatchBuilder
	first := b.Build(clipped([4]float32{0, 0, 10, 10}, [4]float32{0, 0, 20, 20}), nil)
	require.Len(t, first, 2)
	p := &first[0]

	second := b.Build(clipped([4]float32{0, 0, 30, 30}), nil)
	require.Len(t, second, 1)
	assert.Same(t, p, &second[0])

	assert.Empty(t, b.Build(&DrawData{}, nil))
	assert.Empty(t, b.Build(nil, nil))
}
