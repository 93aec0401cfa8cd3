// Package dearimgui adapts github.com/inkyblackness/imgui-go to the
// guidraw.GUI interface and the debug menu's Drawer.
package dearimgui

import (
	"errors"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/hubastard/imbridge/engine/core"
	"github.com/hubastard/imbridge/engine/guidraw"
	"github.com/inkyblackness/imgui-go/v4"
)

var ErrLayoutMismatch = errors.New("dearimgui: vertex layout does not match guidraw.Vertex")

// Clipboard is satisfied by the platform window.
type Clipboard interface {
	ClipboardText() (string, error)
	SetClipboardText(text string)
}

type clipboardAdapter struct{ c Clipboard }

func (a clipboardAdapter) Text() (string, error) { return a.c.ClipboardText() }
func (a clipboardAdapter) SetText(text string)   { a.c.SetClipboardText(text) }

// Context owns one imgui context. Only one may be current at a time.
type Context struct {
	ctx *imgui.Context
	io  imgui.IO
	log *slog.Logger

	display [2]float32
	fbScale [2]float32
	data    guidraw.DrawData

	// imgui only sees button state once per frame, so at most one
	// transition per button is applied each frame and the rest wait.
	mouseDown [mouseButtonCount]bool
	buttons   []guidraw.ButtonEvent
}

const mouseButtonCount = 5

var _ guidraw.GUI = (*Context)(nil)

// CheckLayout verifies that the compiled imgui vertex and index formats
// are the ones guidraw reinterprets without copying.
func CheckLayout() error {
	size, pos, uv, col := imgui.VertexBufferLayout()
	want := guidraw.VertexLayout.Attributes
	if size != guidraw.VertexSize || pos != want[0].Offset || uv != want[1].Offset || col != want[2].Offset {
		return fmt.Errorf("%w: size %d offsets %d/%d/%d", ErrLayoutMismatch, size, pos, uv, col)
	}
	if is := imgui.IndexBufferLayout(); is != 2 {
		return fmt.Errorf("%w: index size %d", ErrLayoutMismatch, is)
	}
	return nil
}

// New creates and configures a context from cfg.
func New(cfg core.GUIConfig, log *slog.Logger) (*Context, error) {
	if err := CheckLayout(); err != nil {
		return nil, err
	}
	if log == nil {
		log = core.Logger()
	}
	c := &Context{ctx: imgui.CreateContext(nil), log: log, fbScale: [2]float32{1, 1}}
	c.io = imgui.CurrentIO()

	c.io.SetIniFilename(cfg.IniFile)
	if cfg.KeyboardNav {
		c.io.SetConfigFlags(imgui.ConfigFlagsNavEnableKeyboard)
	}
	if cfg.FontScale > 0 {
		c.io.SetFontGlobalScale(cfg.FontScale)
	}
	mapKeys(c.io)

	log.Info("imgui context created", "version", imgui.Version(), "ini", cfg.IniFile)
	return c, nil
}

// Destroy releases the imgui context.
func (c *Context) Destroy() {
	if c.ctx == nil {
		return
	}
	c.ctx.Destroy()
	c.ctx = nil
}

// SetClipboard routes copy and paste through cb.
func (c *Context) SetClipboard(cb Clipboard) {
	c.io.SetClipboard(clipboardAdapter{cb})
}

func (c *Context) AddMousePos(x, y float32) { c.io.SetMousePosition(imgui.Vec2{X: x, Y: y}) }

func (c *Context) AddMouseWheel(x, y float32) { c.io.AddMouseWheelDelta(x, y) }

func (c *Context) AddMouseButton(button int, down bool) {
	if button < 0 || button >= mouseButtonCount {
		return
	}
	c.buttons = append(c.buttons, guidraw.ButtonEvent{Button: button, Down: down})
}

// PendingButtons reports transitions held back for later frames.
func (c *Context) PendingButtons() int { return len(c.buttons) }

// applyButtons moves each button at most one step along its queued
// transitions. Transitions that would not change the state are dropped.
func (c *Context) applyButtons() {
	var changed [mouseButtonCount]bool
	rest := c.buttons[:0]
	for _, e := range c.buttons {
		switch {
		case changed[e.Button]:
			rest = append(rest, e)
		case c.mouseDown[e.Button] != e.Down:
			c.mouseDown[e.Button] = e.Down
			c.io.SetMouseButtonDown(e.Button, e.Down)
			changed[e.Button] = true
		}
	}
	c.buttons = rest
}

func (c *Context) AddInputCharacter(r rune) { c.io.AddInputCharacters(string(r)) }

func (c *Context) AddKeyEvent(key core.Key, down bool) {
	if down {
		c.io.KeyPress(int(key))
	} else {
		c.io.KeyRelease(int(key))
	}
	if key.IsModifier() {
		modifierKeys(c.io)
	}
}

func (c *Context) SetDisplaySize(w, h float32) {
	c.display = [2]float32{w, h}
	c.io.SetDisplaySize(imgui.Vec2{X: w, Y: h})
}

func (c *Context) SetFramebufferScale(x, y float32) { c.fbScale = [2]float32{x, y} }

func (c *Context) SetDeltaTime(dt float32) { c.io.SetDeltaTime(dt) }

func (c *Context) NewFrame() {
	c.applyButtons()
	imgui.NewFrame()
}

func (c *Context) Render() { imgui.Render() }

// DrawData converts the rendered frame. The returned value and the
// geometry it points at are reused and overwritten by the next call.
func (c *Context) DrawData() *guidraw.DrawData {
	convert(&c.data, imgui.RenderedDrawData(), c.display, c.fbScale, c.log)
	return &c.data
}

// FontAtlas returns the baked atlas. The slice aliases imgui memory.
func (c *Context) FontAtlas() ([]byte, int, int) {
	img := c.io.Fonts().TextureDataRGBA32()
	if img == nil || img.Pixels == nil {
		return nil, 0, 0
	}
	n := img.Width * img.Height * 4
	return unsafe.Slice((*byte)(img.Pixels), n), img.Width, img.Height
}

func (c *Context) SetFontTexture(id guidraw.TextureID) {
	c.io.Fonts().SetTextureID(imgui.TextureID(id))
}

func (c *Context) WantCaptureMouse() bool { return c.io.WantCaptureMouse() }

func (c *Context) WantCaptureKeyboard() bool { return c.io.WantCaptureKeyboard() }

func convert(dst *guidraw.DrawData, src imgui.DrawData, display, fbScale [2]float32, log *slog.Logger) {
	dst.Reset()
	if !src.Valid() {
		return
	}
	dst.Valid = true
	dst.DisplaySize = display
	dst.FramebufferScale = fbScale

	for _, list := range src.CommandLists() {
		vp, vb := list.VertexBuffer()
		ip, ib := list.IndexBuffer()

		i := len(dst.Lists)
		if i < cap(dst.Lists) {
			dst.Lists = dst.Lists[:i+1]
		} else {
			dst.Lists = append(dst.Lists, guidraw.DrawList{})
		}
		out := &dst.Lists[i]
		out.Vertices = guidraw.VerticesFrom(vp, vb/guidraw.VertexSize)
		out.Indices = guidraw.IndicesFrom(ip, ib/2)

		// Commands of one list consume its index buffer back to back.
		var idx uint32
		for _, cmd := range list.Commands() {
			n := uint32(cmd.ElementCount())
			if cmd.HasUserCallback() {
				log.Warn("imgui user callback ignored")
				idx += n
				continue
			}
			r := cmd.ClipRect()
			out.Commands = append(out.Commands, guidraw.DrawCommand{
				ClipRect:     [4]float32{r.X, r.Y, r.Z, r.W},
				TextureID:    guidraw.TextureID(cmd.TextureID()),
				IndexOffset:  idx,
				ElementCount: n,
			})
			idx += n
		}
	}
}
