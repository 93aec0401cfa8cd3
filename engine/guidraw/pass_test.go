package guidraw

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/imbridge/engine/gfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPass() (*RenderPass, *fakeTexture) {
	tex := &fakeTexture{handle: 3}
	p := &RenderPass{
		Mesh:     &gfx.MeshBuffer{},
		Material: &fakeMaterial{desc: gfx.MaterialDesc{TextureSlot: TextureSlot}},
	}
	p.SetBatches([]Batch{
		{ClipRect: gfx.Rect{X: 0, Y: 0, W: 10, H: 10}, Texture: tex, SubMesh: 0},
		{ClipRect: gfx.Rect{X: 5, Y: 5, W: 20, H: 20}, SubMesh: 2},
	})
	return p, tex
}

func TestExecuteOrder(t *testing.T) {
	p, _ := testPass()
	var x Executor
	s := &recStream{}

	stats, err := x.Execute(p.Record(gfx.Rect{W: 640, H: 480}), s)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"viewport 0 0 640 480",
		"viewproj",
		"texture uTexture 3",
		"scissor 0 0 10 10",
		"draw 0",
		"scissor 5 5 20 20",
		"draw 2",
		"noscissor",
	}, s.ops)
	assert.Equal(t, PassStats{DrawCalls: 2, TextureBinds: 1}, stats)
	assert.False(t, x.Recording())
}

func TestExecuteDegenerateTarget(t *testing.T) {
	p, _ := testPass()
	var x Executor
	s := &recStream{}

	for _, r := range []gfx.Rect{{W: 0, H: 480}, {W: 640, H: -1}} {
		stats, err := x.Execute(p.Record(r), s)
		require.NoError(t, err)
		assert.Zero(t, stats)
	}
	_, err := x.Execute(PassData{PixelRect: gfx.Rect{W: 1, H: 1}}, s)
	require.NoError(t, err)
	assert.Empty(t, s.ops)
}

// reentrantStream tries to start a nested pass from inside a draw.
type reentrantStream struct {
	recStream
	x   *Executor
	err error
}

func (s *reentrantStream) DrawMesh(m gfx.DynamicMesh, mat gfx.Material, sub int) {
	s.recStream.DrawMesh(m, mat, sub)
	if s.err == nil {
		_, s.err = s.x.Execute(PassData{Mesh: m, PixelRect: gfx.Rect{W: 1, H: 1}}, s)
	}
}

func TestExecuteRejectsNestedPass(t *testing.T) {
	p, _ := testPass()
	var x Executor
	s := &reentrantStream{x: &x}

	_, err := x.Execute(p.Record(gfx.Rect{W: 10, H: 10}), s)
	require.NoError(t, err)
	assert.ErrorIs(t, s.err, ErrPassRecording)
	assert.False(t, x.Recording())
}

func TestRecordSnapshotsBatches(t *testing.T) {
	p, _ := testPass()
	data := p.Record(gfx.Rect{W: 4, H: 4})
	p.SetBatches(nil)
	assert.Len(t, data.Batches, 2)
	assert.Empty(t, p.Batches())
}

func TestRecordSurvivesNextBuild(t *testing.T) {
	var b BatchBuilder
	p := &RenderPass{Mesh: &gfx.MeshBuffer{}}

	p.SetBatches(b.Build(clipped([4]float32{0, 0, 10, 10}), nil))
	data := p.Record(gfx.Rect{W: 100, H: 100})
	require.Len(t, data.Batches, 1)
	want := gfx.Rect{X: 0, Y: 90, W: 10, H: 10}
	assert.Equal(t, want, data.Batches[0].ClipRect)

	next := b.Build(clipped([4]float32{0, 0, 90, 90}), nil)
	require.Len(t, next, 1)
	assert.Equal(t, gfx.Rect{X: 0, Y: 10, W: 90, H: 90}, next[0].ClipRect)
	assert.Equal(t, want, data.Batches[0].ClipRect, "a handed-off snapshot is not rewritten")
}

func TestViewProjectionMapsPixelCorners(t *testing.T) {
	view, proj := ViewProjection(gfx.Rect{W: 200, H: 100})
	vp := proj.Mul4(view)

	tl := vp.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	br := vp.Mul4x1(mgl32.Vec4{200, 100, 0, 1})
	assert.InDelta(t, -1, tl.X(), 0.01)
	assert.InDelta(t, 1, tl.Y(), 0.01)
	assert.InDelta(t, 1, br.X(), 0.01)
	assert.InDelta(t, -1, br.Y(), 0.01)
}
