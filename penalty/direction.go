package penalty

import "fmt"

// Direction is one of the three aiming choices available to both players.
// Its integer value doubles as the matrix index of the corresponding row
// or column.
type Direction int

// The three directions, in matrix index order.
const (
	Left Direction = iota
	Center
	Right
)

// Directions returns all directions in matrix index order.
func Directions() []Direction {
	return []Direction{Left, Center, Right}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Center:
		return "Center"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Index returns the matrix index of the direction: Left 0, Center 1, Right 2.
func (d Direction) Index() int {
	return int(d)
}

// DirectionFromIndex maps a matrix index back to a Direction.
// Indices outside 0..2 yield ErrBadDirection.
func DirectionFromIndex(i int) (Direction, error) {
	if i < 0 || i > int(Right) {
		return 0, fmt.Errorf("penalty: index %d: %w", i, ErrBadDirection)
	}

	return Direction(i), nil
}
