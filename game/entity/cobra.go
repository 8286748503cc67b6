package entity

import (
	"cobra-chase/game/types"

	"golang.org/x/exp/slices"
)

// Cobra is the list of occupied cells, head first.
// Methods never mutate the receiver; Move returns a fresh slice.
type Cobra []types.Point

func NewCobra(start types.Point) Cobra {
	return Cobra{start}
}

func (c Cobra) Head() types.Point {
	return c[0]
}

func (c Cobra) Tail() types.Point {
	return c[len(c)-1]
}

func (c Cobra) Len() int {
	return len(c)
}

// Contains reports whether any segment, tail included, occupies p
func (c Cobra) Contains(p types.Point) bool {
	return slices.Contains(c, p)
}

// Move prepends newHead. The tail is kept only when grow is set.
func (c Cobra) Move(newHead types.Point, grow bool) Cobra {
	keep := len(c)
	if !grow {
		keep--
	}
	moved := make(Cobra, 0, keep+1)
	moved = append(moved, newHead)
	return append(moved, c[:keep]...)
}

func (c Cobra) Clone() Cobra {
	return slices.Clone(c)
}
