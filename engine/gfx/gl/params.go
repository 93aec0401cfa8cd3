package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/imbridge/engine/gfx"
)

func filterMode(s string) (int32, error) {
	switch s {
	case "", "linear":
		return gl.LINEAR, nil
	case "nearest":
		return gl.NEAREST, nil
	}
	return 0, fmt.Errorf("unknown texture filter %q", s)
}

func wrapMode(s string) (int32, error) {
	switch s {
	case "", "clamp":
		return gl.CLAMP_TO_EDGE, nil
	case "repeat":
		return gl.REPEAT, nil
	}
	return 0, fmt.Errorf("unknown texture wrap %q", s)
}

// attribFormat returns the GL component count, type and normalization
// for a vertex attribute.
func attribFormat(a gfx.VertexAttrib) (size int32, xtype uint32, normalized bool) {
	switch a.Type {
	case gfx.AttribPackedRGBA8:
		return 4, gl.UNSIGNED_BYTE, true
	default:
		return int32(a.Size), gl.FLOAT, false
	}
}

// grow returns the buffer capacity to allocate for need bytes, doubling
// from have to limit reallocation.
func grow(have, need int) int {
	if need <= have {
		return have
	}
	n := have
	if n < 4096 {
		n = 4096
	}
	for n < need {
		n *= 2
	}
	return n
}
