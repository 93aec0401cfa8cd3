// Package gfx defines the small graphics abstraction the engine renders
// through: textures, dynamic meshes with sub-mesh tables, materials and an
// ordered command stream.
package gfx

import "github.com/go-gl/mathgl/mgl32"

type AttribType int

const (
	AttribFloat32 AttribType = iota
	// AttribPackedRGBA8 is one uint32 holding four normalized bytes.
	AttribPackedRGBA8
)

// Size returns the byte size of one component group.
func (t AttribType) Size(components int) int {
	switch t {
	case AttribPackedRGBA8:
		return 4
	default:
		return 4 * components
	}
}

type VertexAttrib struct {
	Location int
	Size     int // components
	Type     AttribType
	Offset   int // bytes
}

type VertexLayout struct {
	Stride     int // bytes
	Attributes []VertexAttrib
}

// Equal compares two layouts field by field.
func (l VertexLayout) Equal(o VertexLayout) bool {
	if l.Stride != o.Stride || len(l.Attributes) != len(o.Attributes) {
		return false
	}
	for i := range l.Attributes {
		if l.Attributes[i] != o.Attributes[i] {
			return false
		}
	}
	return true
}

type IndexFormat int

const (
	IndexUint16 IndexFormat = iota
)

type Topology int

const (
	Triangles Topology = iota
)

// SubMesh is a contiguous index range drawn with its own base vertex.
type SubMesh struct {
	Topology   Topology
	IndexStart int
	IndexCount int
	BaseVertex int
}

// Rect is a pixel rectangle. Y follows whatever origin the consumer
// documents; the GL backend uses bottom-left.
type Rect struct {
	X, Y, W, H float32
}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type TextureDesc struct {
	Name          string
	Width, Height int
	Format        TextureFormat
	Pixels        []byte // tightly packed, first row is v=0
	MinFilter     string // "nearest" | "linear"
	MagFilter     string
	WrapU, WrapV  string // "clamp" | "repeat"
}

// Texture is a live GPU texture.
type Texture interface {
	// Handle is the backend's native name for the texture. It is stable
	// for the lifetime of the texture and unique among live textures.
	Handle() uint64
	Size() (w, h int)
}

type MaterialDesc struct {
	Name           string
	VertexSource   string
	FragmentSource string
	TextureSlot    string // sampler uniform bound by CommandStream.SetTexture
	Blend          bool
}

type Material interface {
	Name() string
	TextureSlot() string
}

// DynamicMesh is a GPU mesh whose buffers and sub-mesh table are replaced
// wholesale, typically once per frame.
type DynamicMesh interface {
	// Clear drops all vertex, index and sub-mesh data.
	Clear()
	SetVertexBufferParams(vertexCount int, layout VertexLayout)
	SetIndexBufferParams(indexCount int, format IndexFormat)
	// SetVertexBufferData copies raw vertex bytes starting at vertex dstVertex.
	SetVertexBufferData(src []byte, dstVertex int) error
	SetIndexBufferData(src []uint16, dstIndex int) error
	// SetSubMeshes replaces the sub-mesh table in one step.
	SetSubMeshes(subs []SubMesh) error
	SubMeshCount() int
	SubMesh(i int) SubMesh
	// Upload pushes staged data to the GPU.
	Upload() error
}

// Device creates GPU resources.
type Device interface {
	CreateTexture(desc TextureDesc) (Texture, error)
	DeleteTexture(t Texture)
	CreateDynamicMesh(name string) (DynamicMesh, error)
	DeleteMesh(m DynamicMesh)
	CreateMaterial(desc MaterialDesc) (Material, error)
	DeleteMaterial(m Material)
}

// CommandStream records or immediately executes draw state changes in
// submission order.
type CommandStream interface {
	SetViewport(r Rect)
	SetViewProjection(view, proj mgl32.Mat4)
	SetTexture(slot string, t Texture)
	EnableScissor(r Rect)
	DisableScissor()
	DrawMesh(mesh DynamicMesh, mat Material, subMesh int)
}
