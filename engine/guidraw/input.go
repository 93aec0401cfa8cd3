package guidraw

import "github.com/hubastard/imbridge/engine/core"

// InputSink is the GUI library's input queue.
type InputSink interface {
	AddMousePos(x, y float32)
	AddMouseWheel(x, y float32)
	AddMouseButton(button int, down bool)
	AddInputCharacter(r rune)
	AddKeyEvent(key core.Key, down bool)
}

// KeyEvent is one queued key transition.
type KeyEvent struct {
	Key  core.Key
	Down bool
}

// ButtonEvent is one queued mouse button transition.
type ButtonEvent struct {
	Button int
	Down   bool
}

const mouseButtons = 3

// InputQueue gathers platform events between two GUI frames. Flush hands
// them to the GUI exactly once; transient state does not accumulate across
// frames.
type InputQueue struct {
	mousePos [2]float32
	wheel    [2]float32
	buttons  []ButtonEvent
	chars    []rune
	keys     []KeyEvent
}

// Handle records ev if it is GUI input and reports whether it was.
func (q *InputQueue) Handle(ev core.Event) bool {
	switch e := ev.(type) {
	case core.EventMouseMove:
		q.mousePos = [2]float32{float32(e.X), float32(e.Y)}
	case core.EventScroll:
		q.wheel[0] += float32(e.Xoff)
		q.wheel[1] += float32(e.Yoff)
	case core.EventMouseButton:
		if e.Button < 0 || int(e.Button) >= mouseButtons {
			return false
		}
		q.buttons = append(q.buttons, ButtonEvent{Button: int(e.Button), Down: e.Down})
	case core.EventChar:
		q.chars = append(q.chars, e.Char)
	case core.EventKey:
		if e.Key == core.KeyUnknown {
			return false
		}
		q.keys = append(q.keys, KeyEvent{Key: e.Key, Down: e.Down})
	default:
		return false
	}
	return true
}

// MousePos returns the last pointer position seen.
func (q *InputQueue) MousePos() [2]float32 { return q.mousePos }

// Pending reports the queued character and key event counts.
func (q *InputQueue) Pending() (chars, keys int) { return len(q.chars), len(q.keys) }

// PendingButtons reports the queued mouse button transitions.
func (q *InputQueue) PendingButtons() int { return len(q.buttons) }

// Flush feeds pointer position, wheel, button transitions, characters and
// key transitions into sink, then clears everything but the position.
// Button and key transitions keep their arrival order.
func (q *InputQueue) Flush(sink InputSink) {
	sink.AddMousePos(q.mousePos[0], q.mousePos[1])
	sink.AddMouseWheel(q.wheel[0], q.wheel[1])
	for _, b := range q.buttons {
		sink.AddMouseButton(b.Button, b.Down)
	}
	for _, r := range q.chars {
		sink.AddInputCharacter(r)
	}
	for _, k := range q.keys {
		sink.AddKeyEvent(k.Key, k.Down)
	}

	q.wheel = [2]float32{}
	q.buttons = q.buttons[:0]
	q.chars = q.chars[:0]
	q.keys = q.keys[:0]
}
