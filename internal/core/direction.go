package core

// Direction is a movement bitmask. Bits combine for diagonal movement.
type Direction uint8

const (
	None  Direction = 0
	Left  Direction = 1 << 0
	Right Direction = 1 << 1
	Up    Direction = 1 << 2
	Down  Direction = 1 << 3

	UpLeft    = Up | Left
	DownLeft  = Down | Left
	UpRight   = Up | Right
	DownRight = Down | Right
)

// Named direction sets.
var (
	MovementAll        = []Direction{Left, Right, Up, Down, UpLeft, UpRight, DownLeft, DownRight}
	MovementDiagonal   = []Direction{UpLeft, UpRight, DownLeft, DownRight}
	MovementVertical   = []Direction{Up, Down}
	MovementHorizontal = []Direction{Left, Right}
	MovementCardinal   = []Direction{Left, Right, Up, Down}
)

var directionNames = map[string]Direction{
	"none":      None,
	"left":      Left,
	"right":     Right,
	"up":        Up,
	"down":      Down,
	"upleft":    UpLeft,
	"downleft":  DownLeft,
	"upright":   UpRight,
	"downright": DownRight,
}

var directionSets = map[string][]Direction{
	"all":        MovementAll,
	"diagonal":   MovementDiagonal,
	"vertical":   MovementVertical,
	"horizontal": MovementHorizontal,
	"cardinal":   MovementCardinal,
}

// Offset converts the bitmask into a unit step.
func (d Direction) Offset() (dx, dy int) {
	if d&Left != 0 {
		dx--
	}
	if d&Right != 0 {
		dx++
	}
	if d&Up != 0 {
		dy--
	}
	if d&Down != 0 {
		dy++
	}
	return dx, dy
}

// DirectionOf maps a unit step back onto a bitmask.
func DirectionOf(dx, dy int) Direction {
	var d Direction
	switch {
	case dx < 0:
		d |= Left
	case dx > 0:
		d |= Right
	}
	switch {
	case dy < 0:
		d |= Up
	case dy > 0:
		d |= Down
	}
	return d
}

func (d Direction) String() string {
	for name, v := range directionNames {
		if v == d {
			return name
		}
	}
	return "invalid"
}

// LookupDirection resolves a single direction name.
func LookupDirection(name string) (Direction, bool) {
	d, ok := directionNames[name]
	return d, ok
}

// LookupDirectionSet resolves a named set such as "all" or "horizontal".
func LookupDirectionSet(name string) ([]Direction, bool) {
	set, ok := directionSets[name]
	if !ok {
		return nil, false
	}
	return append([]Direction(nil), set...), true
}
