package input

// Typed orders one tick's keyboard input into events. Digits come from the
// layout-aware character stream, in typing order; other characters are
// dropped. Backspaces go first and the remaining control keys last, since
// polling loses their order relative to the characters.
func Typed(controls []Key, chars []rune) []Event {
	evs := make([]Event, 0, len(controls)+len(chars))
	for _, k := range controls {
		if k == KeyBackspace {
			evs = append(evs, Press(k))
		}
	}
	for _, r := range chars {
		if r >= '0' && r <= '9' {
			evs = append(evs, Digit(r))
		}
	}
	for _, k := range controls {
		if k != KeyBackspace && k != KeyDigit && k != KeyOther {
			evs = append(evs, Press(k))
		}
	}
	return evs
}
