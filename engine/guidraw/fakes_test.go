package guidraw

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/imbridge/engine/core"
	"github.com/hubastard/imbridge/engine/gfx"
)

type fakeTexture struct {
	handle uint64
	w, h   int
}

func (t *fakeTexture) Handle() uint64   { return t.handle }
func (t *fakeTexture) Size() (int, int) { return t.w, t.h }

type fakeMaterial struct{ desc gfx.MaterialDesc }

func (m *fakeMaterial) Name() string        { return m.desc.Name }
func (m *fakeMaterial) TextureSlot() string { return m.desc.TextureSlot }

type fakeDevice struct {
	next      uint64
	textures  []*fakeTexture
	meshes    []*gfx.MeshBuffer
	deleted   []string
	failAtlas bool
}

func (d *fakeDevice) CreateTexture(desc gfx.TextureDesc) (gfx.Texture, error) {
	if d.failAtlas {
		return nil, fmt.Errorf("no texture for %s", desc.Name)
	}
	d.next++
	t := &fakeTexture{handle: 100 + d.next, w: desc.Width, h: desc.Height}
	d.textures = append(d.textures, t)
	return t, nil
}

func (d *fakeDevice) DeleteTexture(gfx.Texture) { d.deleted = append(d.deleted, "texture") }

func (d *fakeDevice) CreateDynamicMesh(string) (gfx.DynamicMesh, error) {
	m := &gfx.MeshBuffer{}
	d.meshes = append(d.meshes, m)
	return m, nil
}

func (d *fakeDevice) DeleteMesh(gfx.DynamicMesh) { d.deleted = append(d.deleted, "mesh") }

func (d *fakeDevice) CreateMaterial(desc gfx.MaterialDesc) (gfx.Material, error) {
	return &fakeMaterial{desc: desc}, nil
}

func (d *fakeDevice) DeleteMaterial(gfx.Material) { d.deleted = append(d.deleted, "material") }

// recStream records every command as a short string.
type recStream struct {
	ops        []string
	view, proj mgl32.Mat4
}

func (s *recStream) SetViewport(r gfx.Rect) {
	s.ops = append(s.ops, fmt.Sprintf("viewport %v %v %v %v", r.X, r.Y, r.W, r.H))
}

func (s *recStream) SetViewProjection(view, proj mgl32.Mat4) {
	s.view, s.proj = view, proj
	s.ops = append(s.ops, "viewproj")
}

func (s *recStream) SetTexture(slot string, t gfx.Texture) {
	s.ops = append(s.ops, fmt.Sprintf("texture %s %d", slot, t.Handle()))
}

func (s *recStream) EnableScissor(r gfx.Rect) {
	s.ops = append(s.ops, fmt.Sprintf("scissor %v %v %v %v", r.X, r.Y, r.W, r.H))
}

func (s *recStream) DisableScissor() { s.ops = append(s.ops, "noscissor") }

func (s *recStream) DrawMesh(_ gfx.DynamicMesh, _ gfx.Material, sub int) {
	s.ops = append(s.ops, fmt.Sprintf("draw %d", sub))
}

type fakeGUI struct {
	calls           []string
	display, scale  [2]float32
	dt              float32
	fontTex         TextureID
	data            *DrawData
	captureMouse    bool
	captureKeyboard bool
	mouse           [2]float32
	buttons, keys   []string
	chars           []rune
}

func (g *fakeGUI) AddMousePos(x, y float32) { g.mouse = [2]float32{x, y} }
func (g *fakeGUI) AddMouseWheel(x, y float32) {
	if x != 0 || y != 0 {
		g.calls = append(g.calls, fmt.Sprintf("wheel %v %v", x, y))
	}
}
func (g *fakeGUI) AddMouseButton(b int, down bool) {
	g.buttons = append(g.buttons, fmt.Sprintf("%d:%v", b, down))
}
func (g *fakeGUI) AddInputCharacter(r rune) { g.chars = append(g.chars, r) }
func (g *fakeGUI) AddKeyEvent(k core.Key, down bool) {
	g.keys = append(g.keys, fmt.Sprintf("%d:%v", k, down))
}
func (g *fakeGUI) SetDisplaySize(w, h float32)      { g.display = [2]float32{w, h} }
func (g *fakeGUI) SetFramebufferScale(x, y float32) { g.scale = [2]float32{x, y} }
func (g *fakeGUI) SetDeltaTime(dt float32)          { g.dt = dt }
func (g *fakeGUI) NewFrame()                        { g.calls = append(g.calls, "newframe") }
func (g *fakeGUI) Render()                          { g.calls = append(g.calls, "render") }
func (g *fakeGUI) DrawData() *DrawData              { return g.data }
func (g *fakeGUI) FontAtlas() ([]byte, int, int)    { return make([]byte, 4*4*4), 4, 4 }
func (g *fakeGUI) SetFontTexture(id TextureID)      { g.fontTex = id }
func (g *fakeGUI) WantCaptureMouse() bool           { return g.captureMouse }
func (g *fakeGUI) WantCaptureKeyboard() bool        { return g.captureKeyboard }

// quadList returns a list with n quads, one command per quad.
func quadList(n int, tex TextureID) DrawList {
	var l DrawList
	for i := 0; i < n; i++ {
		base := uint16(len(l.Vertices))
		l.Vertices = append(l.Vertices,
			Vertex{Pos: [2]float32{0, 0}}, Vertex{Pos: [2]float32{1, 0}},
			Vertex{Pos: [2]float32{1, 1}}, Vertex{Pos: [2]float32{0, 1}})
		l.Indices = append(l.Indices, base, base+1, base+2, base, base+2, base+3)
		l.Commands = append(l.Commands, DrawCommand{
			ClipRect:     [4]float32{0, 0, 100, 100},
			TextureID:    tex,
			IndexOffset:  uint32(i * 6),
			ElementCount: 6,
		})
	}
	return l
}
