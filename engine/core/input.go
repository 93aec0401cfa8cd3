package core

// Input tracks held keys and mouse state for polling from layers.
type Input struct {
	keys           map[Key]bool
	buttons        [3]bool
	mods           Mod
	mouseX, mouseY float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
		in.mods = e.Mods
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		if e.Button >= 0 && int(e.Button) < len(in.buttons) {
			in.buttons[e.Button] = e.Down
		}
	}
}

func (in *Input) IsKeyDown(k Key) bool      { return in.keys[k] }
func (in *Input) Mods() Mod                 { return in.mods }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }

func (in *Input) IsMouseDown(b MouseButton) bool {
	if int(b) < 0 || int(b) >= len(in.buttons) {
		return false
	}
	return in.buttons[b]
}
