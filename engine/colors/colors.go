// Package colors holds linear RGBA colours and their packed vertex form.
package colors

type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Packed returns c as four bytes with red in the low byte, the order GUI
// vertices and imgui draw-list colours use.
func (c Color) Packed() uint32 {
	var out uint32
	for i := 3; i >= 0; i-- {
		out = out<<8 | uint32(toByte(c[i]))
	}
	return out
}

func toByte(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f*255 + 0.5)
}
