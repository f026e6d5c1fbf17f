package geom

// Direction is one of the eight compass directions on a grid.
type Direction int

// The four cross directions come first, then the diagonals.
const (
	Up Direction = iota
	Down
	Left
	Right
	TopLeft
	TopRight
	BottomLeft
	BottomRight
)

var directionNames = [...]string{
	Up:          "Up",
	Down:        "Down",
	Left:        "Left",
	Right:       "Right",
	TopLeft:     "TopLeft",
	TopRight:    "TopRight",
	BottomLeft:  "BottomLeft",
	BottomRight: "BottomRight",
}

// String returns the direction name.
func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "Direction(?)"
	}
	return directionNames[d]
}

// Offset returns the unit step for d. Unknown directions step Up.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case TopLeft:
		return -1, 1
	case TopRight:
		return 1, 1
	case BottomLeft:
		return -1, -1
	case BottomRight:
		return 1, -1
	default:
		return 0, -1
	}
}

// PositionOf converts a direction into its unit offset position.
func PositionOf[T Number](d Direction) Position[T] {
	dx, dy := d.Offset()
	return Position[T]{X: T(dx), Y: T(dy)}
}

// ParseDirection maps an arrow character to a direction: '<', '>', '^'
// give Left, Right and Up; anything else is Down.
func ParseDirection(r rune) Direction {
	switch r {
	case '<':
		return Left
	case '>':
		return Right
	case '^':
		return Up
	default:
		return Down
	}
}

// AllDirections returns the eight directions.
func AllDirections() []Direction {
	return []Direction{Up, Down, Left, Right, TopLeft, TopRight, BottomLeft, BottomRight}
}

// CrossDirections returns the four cardinal directions (+ shape).
func CrossDirections() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// DiagonalDirections returns the four diagonal directions (X shape).
func DiagonalDirections() []Direction {
	return []Direction{TopLeft, TopRight, BottomLeft, BottomRight}
}
