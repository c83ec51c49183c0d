package rules

// Latch records which direction keys were pressed during the current tick.
// Flags are edge triggered: they stay set until Clear, no matter how long
// the key is held.
type Latch struct {
	pressed [4]bool
}

// Press sets the flag for d. Invalid directions are ignored.
func (l *Latch) Press(d Direction) {
	if !d.Valid() {
		return
	}
	l.pressed[d] = true
}

// Pressed reports whether d was latched.
func (l *Latch) Pressed(d Direction) bool {
	return d.Valid() && l.pressed[d]
}

// Resolve picks the direction for this tick. A key is honoured only when it
// is the single latched direction and does not reverse into the neck;
// otherwise the snake keeps going the current way.
func (l *Latch) Resolve(current Direction) Direction {
	count := 0
	var key Direction
	for _, d := range Directions {
		if l.pressed[d] {
			count++
			key = d
		}
	}
	if count != 1 || key.IsOpposite(current) {
		return current
	}
	return key
}

// Clear resets every flag.
func (l *Latch) Clear() {
	l.pressed = [4]bool{}
}
