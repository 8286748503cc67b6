package types

// Point is a cell on the grid
type Point struct {
	X, Y int
}

// Tap is a pointer position on the board, in pixels
type Tap struct {
	X, Y float64
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Game constants
const (
	DefaultWidth  = 20
	DefaultHeight = 30
)

// StartPosition is where a fresh cobra is placed
var StartPosition = Point{X: 5, Y: 5}

// DefaultGrid returns the 20x30 board
func DefaultGrid() Grid {
	return Grid{Width: DefaultWidth, Height: DefaultHeight}
}

// InBounds reports whether p is inside the playable interior.
// The outermost ring of cells is wall.
func (g Grid) InBounds(p Point) bool {
	return p.X >= 1 && p.X < g.Width-1 && p.Y >= 1 && p.Y < g.Height-1
}

// HasInterior reports whether at least one cell lies inside the wall ring
func (g Grid) HasInterior() bool {
	return g.Width >= 3 && g.Height >= 3
}

// Status of a game
type Status int

const (
	Idle Status = iota
	Running
	Paused
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Running:
		return "RUNNING"
	case Paused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}
