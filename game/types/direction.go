package types

// Direction is a cardinal heading
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Vector converts a Direction into a one cell step
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1} // y grows downwards
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Vertical reports whether d moves along the y axis
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// Horizontal reports whether d moves along the x axis
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Step returns the neighbour of p in direction d
func (d Direction) Step(p Point) Point {
	v := d.Vector()
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "NONE"
	}
}
