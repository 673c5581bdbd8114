package snake

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions lists all four directions, used for random selection on reset.
var Directions = [...]Direction{DirUp, DirLeft, DirDown, DirRight}

// Vector returns the unit step for the direction. Y grows downwards.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the direction whose vector is the negation of d's.
func (d Direction) Opposite() Direction {
	dx, dy := d.Vector()
	for _, o := range Directions {
		ox, oy := o.Vector()
		if ox == -dx && oy == -dy {
			return o
		}
	}
	return d
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
