// Package input defines the events the frame loop consumes, independent of
// the windowing library that produced them.
package input

import "fmt"

type Kind int

const (
	Quit Kind = iota
	KeyDown
	PointerDown
	PointerUp
	PointerMove
)

func (k Kind) String() string {
	switch k {
	case Quit:
		return "quit"
	case KeyDown:
		return "key-down"
	case PointerDown:
		return "pointer-down"
	case PointerUp:
		return "pointer-up"
	case PointerMove:
		return "pointer-move"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyBackspace
	KeyDigit
)

// Event is one queued input. Char is set for KeyDigit, X and Y for pointer kinds.
type Event struct {
	Kind Kind
	Key  Key
	Char rune
	X, Y int
}

func QuitEvent() Event { return Event{Kind: Quit} }

func Press(k Key) Event { return Event{Kind: KeyDown, Key: k} }

// Digit returns the key-down event for an ASCII digit.
func Digit(r rune) Event { return Event{Kind: KeyDown, Key: KeyDigit, Char: r} }

func Down(x, y int) Event { return Event{Kind: PointerDown, X: x, Y: y} }

func Up(x, y int) Event { return Event{Kind: PointerUp, X: x, Y: y} }

func Move(x, y int) Event { return Event{Kind: PointerMove, X: x, Y: y} }
