package glbackend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/imbridge/engine/gfx"
)

type glTexture struct {
	id   uint32
	w, h int
	name string
}

func (t *glTexture) Handle() uint64   { return uint64(t.id) }
func (t *glTexture) Size() (int, int) { return t.w, t.h }

func (r *RendererGL) CreateTexture(desc gfx.TextureDesc) (gfx.Texture, error) {
	if desc.Format != gfx.TextureRGBA8 {
		return nil, fmt.Errorf("texture %q: unsupported format %d", desc.Name, desc.Format)
	}
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, fmt.Errorf("texture %q: invalid size %dx%d", desc.Name, desc.Width, desc.Height)
	}
	if want := desc.Width * desc.Height * 4; len(desc.Pixels) != 0 && len(desc.Pixels) < want {
		return nil, fmt.Errorf("texture %q: %d bytes of pixels, need %d", desc.Name, len(desc.Pixels), want)
	}
	minF, err := filterMode(desc.MinFilter)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", desc.Name, err)
	}
	magF, err := filterMode(desc.MagFilter)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", desc.Name, err)
	}
	wrapU, err := wrapMode(desc.WrapU)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", desc.Name, err)
	}
	wrapV, err := wrapMode(desc.WrapV)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", desc.Name, err)
	}

	t := &glTexture{w: desc.Width, h: desc.Height, name: desc.Name}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minF)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, magF)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrapU)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrapV)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	var px unsafe.Pointer
	if len(desc.Pixels) > 0 {
		px = gl.Ptr(desc.Pixels)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, px)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.log.Debug("texture created", "name", desc.Name, "id", t.id, "w", desc.Width, "h", desc.Height)
	return t, nil
}

func (r *RendererGL) DeleteTexture(t gfx.Texture) {
	gt, ok := t.(*glTexture)
	if !ok || gt.id == 0 {
		return
	}
	gl.DeleteTextures(1, &gt.id)
	gt.id = 0
}
