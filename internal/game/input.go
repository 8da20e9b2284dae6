package game

// Direction is one of the four movement keys.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight

	DirectionCount // must stay last
)

// KeyState records which movement keys are held. Frontends write it from their
// event sources between frames; the last write before a Step wins.
type KeyState [DirectionCount]bool

func (k *KeyState) Set(d Direction, held bool) {
	if d < DirectionCount {
		k[d] = held
	}
}

func (k KeyState) Held(d Direction) bool {
	return d < DirectionCount && k[d]
}

// Clear releases every key.
func (k *KeyState) Clear() {
	*k = KeyState{}
}
