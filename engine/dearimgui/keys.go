package dearimgui

import (
	"github.com/hubastard/imbridge/engine/core"
	"github.com/inkyblackness/imgui-go/v4"
)

// keyMap lists the imgui navigation keys. Native key codes are core.Key
// values.
var keyMap = map[int]core.Key{
	imgui.KeyTab:         core.KeyTab,
	imgui.KeyLeftArrow:   core.KeyLeft,
	imgui.KeyRightArrow:  core.KeyRight,
	imgui.KeyUpArrow:     core.KeyUp,
	imgui.KeyDownArrow:   core.KeyDown,
	imgui.KeyPageUp:      core.KeyPageUp,
	imgui.KeyPageDown:    core.KeyPageDown,
	imgui.KeyHome:        core.KeyHome,
	imgui.KeyEnd:         core.KeyEnd,
	imgui.KeyInsert:      core.KeyInsert,
	imgui.KeyDelete:      core.KeyDelete,
	imgui.KeyBackspace:   core.KeyBackspace,
	imgui.KeySpace:       core.KeySpace,
	imgui.KeyEnter:       core.KeyEnter,
	imgui.KeyKeyPadEnter: core.KeyKPEnter,
	imgui.KeyEscape:      core.KeyEscape,
	imgui.KeyA:           core.KeyA,
	imgui.KeyC:           core.KeyC,
	imgui.KeyV:           core.KeyV,
	imgui.KeyX:           core.KeyX,
	imgui.KeyY:           core.KeyY,
	imgui.KeyZ:           core.KeyZ,
}

func mapKeys(io imgui.IO) {
	for ik, k := range keyMap {
		io.KeyMap(ik, int(k))
	}
}

// modifierKeys refreshes imgui's modifier flags from the key-down table.
func modifierKeys(io imgui.IO) {
	io.KeyCtrl(int(core.KeyLeftCtrl), int(core.KeyRightCtrl))
	io.KeyShift(int(core.KeyLeftShift), int(core.KeyRightShift))
	io.KeyAlt(int(core.KeyLeftAlt), int(core.KeyRightAlt))
	io.KeySuper(int(core.KeyLeftSuper), int(core.KeyRightSuper))
}
