package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/imbridge/engine/core"
)

var namedKeys = map[glfw.Key]core.Key{
	glfw.KeyEscape:       core.KeyEscape,
	glfw.KeySpace:        core.KeySpace,
	glfw.KeyEnter:        core.KeyEnter,
	glfw.KeyTab:          core.KeyTab,
	glfw.KeyBackspace:    core.KeyBackspace,
	glfw.KeyInsert:       core.KeyInsert,
	glfw.KeyDelete:       core.KeyDelete,
	glfw.KeyUp:           core.KeyUp,
	glfw.KeyDown:         core.KeyDown,
	glfw.KeyLeft:         core.KeyLeft,
	glfw.KeyRight:        core.KeyRight,
	glfw.KeyPageUp:       core.KeyPageUp,
	glfw.KeyPageDown:     core.KeyPageDown,
	glfw.KeyHome:         core.KeyHome,
	glfw.KeyEnd:          core.KeyEnd,
	glfw.KeyCapsLock:     core.KeyCapsLock,
	glfw.KeyScrollLock:   core.KeyScrollLock,
	glfw.KeyNumLock:      core.KeyNumLock,
	glfw.KeyPrintScreen:  core.KeyPrintScreen,
	glfw.KeyPause:        core.KeyPause,
	glfw.KeyLeftShift:    core.KeyLeftShift,
	glfw.KeyRightShift:   core.KeyRightShift,
	glfw.KeyLeftControl:  core.KeyLeftCtrl,
	glfw.KeyRightControl: core.KeyRightCtrl,
	glfw.KeyLeftAlt:      core.KeyLeftAlt,
	glfw.KeyRightAlt:     core.KeyRightAlt,
	glfw.KeyLeftSuper:    core.KeyLeftSuper,
	glfw.KeyRightSuper:   core.KeyRightSuper,
	glfw.KeyMenu:         core.KeyMenu,
	glfw.KeyApostrophe:   core.KeyApostrophe,
	glfw.KeyComma:        core.KeyComma,
	glfw.KeyMinus:        core.KeyMinus,
	glfw.KeyPeriod:       core.KeyPeriod,
	glfw.KeySlash:        core.KeySlash,
	glfw.KeySemicolon:    core.KeySemicolon,
	glfw.KeyEqual:        core.KeyEqual,
	glfw.KeyLeftBracket:  core.KeyLeftBracket,
	glfw.KeyBackslash:    core.KeyBackslash,
	glfw.KeyRightBracket: core.KeyRightBracket,
	glfw.KeyGraveAccent:  core.KeyGraveAccent,
	glfw.KeyKPDecimal:    core.KeyKPDecimal,
	glfw.KeyKPDivide:     core.KeyKPDivide,
	glfw.KeyKPMultiply:   core.KeyKPMultiply,
	glfw.KeyKPSubtract:   core.KeyKPSubtract,
	glfw.KeyKPAdd:        core.KeyKPAdd,
	glfw.KeyKPEnter:      core.KeyKPEnter,
}

// keyRange maps a contiguous glfw range onto a contiguous core range.
type keyRange struct {
	first, last glfw.Key
	base        core.Key
}

var keyRanges = []keyRange{
	{glfw.Key0, glfw.Key9, core.Key0},
	{glfw.KeyA, glfw.KeyZ, core.KeyA},
	{glfw.KeyF1, glfw.KeyF12, core.KeyF1},
	{glfw.KeyKP0, glfw.KeyKP9, core.KeyKP0},
}

func translateKey(k glfw.Key) core.Key {
	if ck, ok := namedKeys[k]; ok {
		return ck
	}
	for _, r := range keyRanges {
		if k >= r.first && k <= r.last {
			return r.base + core.Key(k-r.first)
		}
	}
	return core.KeyUnknown
}

func translateButton(b glfw.MouseButton) (core.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseLeft, true
	case glfw.MouseButtonRight:
		return core.MouseRight, true
	case glfw.MouseButtonMiddle:
		return core.MouseMiddle, true
	}
	return 0, false
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
