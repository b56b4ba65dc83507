package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/fps-viewer/internal/input"
)

// controlKey maps the keys the loop handles by identity. Digits are read
// from the character stream instead, so they keep typing order and follow
// the keyboard layout.
func controlKey(k ebiten.Key) (input.Key, bool) {
	switch k {
	case ebiten.KeyEscape:
		return input.KeyEscape, true
	case ebiten.KeySpace:
		return input.KeySpace, true
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return input.KeyEnter, true
	case ebiten.KeyBackspace:
		return input.KeyBackspace, true
	}
	return input.KeyOther, false
}

// eventQueue turns ebiten's polled input state into the edge events the
// frame loop consumes.
type eventQueue struct {
	keys     []ebiten.Key
	controls []input.Key
	chars    []rune
	lastX    int
	lastY    int
	primed   bool
}

func (q *eventQueue) poll() []input.Event {
	var evs []input.Event
	if ebiten.IsWindowBeingClosed() {
		evs = append(evs, input.QuitEvent())
	}

	q.keys = inpututil.AppendJustPressedKeys(q.keys[:0])
	q.controls = q.controls[:0]
	for _, k := range q.keys {
		if c, ok := controlKey(k); ok {
			q.controls = append(q.controls, c)
		}
	}
	q.chars = ebiten.AppendInputChars(q.chars[:0])
	evs = append(evs, input.Typed(q.controls, q.chars)...)

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		evs = append(evs, input.Down(x, y))
	}
	if q.primed && (x != q.lastX || y != q.lastY) {
		evs = append(evs, input.Move(x, y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		evs = append(evs, input.Up(x, y))
	}
	q.lastX, q.lastY, q.primed = x, y, true
	return evs
}
