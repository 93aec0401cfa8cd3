package assets

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/hubastard/imbridge/engine/gfx"
)

// LoadPNG decodes a PNG into a texture description with tightly packed
// RGBA8 rows, top row first. GUI image widgets sample v=0 at the top, so
// no flip is applied.
func LoadPNG(path string) (gfx.TextureDesc, error) {
	f, err := os.Open(path)
	if err != nil {
		return gfx.TextureDesc{}, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return gfx.TextureDesc{}, fmt.Errorf("decode png %q: %w", path, err)
	}

	rgba := imageToRGBA(img)
	w, h := rgba.Bounds().Dx(), rgba.Bounds().Dy()

	// Repack in tight rows (stride == 4*w)
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		copy(out[y*w*4:(y+1)*w*4], rgba.Pix[y*rgba.Stride:y*rgba.Stride+w*4])
	}

	return gfx.TextureDesc{
		Name:      filepath.Base(path),
		Width:     w,
		Height:    h,
		Format:    gfx.TextureRGBA8,
		Pixels:    out,
		MinFilter: "linear",
		MagFilter: "linear",
		WrapU:     "clamp",
		WrapV:     "clamp",
	}, nil
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
