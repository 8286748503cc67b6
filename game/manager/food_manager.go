package manager

import (
	"cobra-chase/game/types"

	"golang.org/x/exp/rand"
)

// Source draws integers in [0, n)
type Source interface {
	Intn(n int) int
}

// NewRandSource returns a seeded generator usable as a food Source
func NewRandSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

type FoodManager struct {
	grid types.Grid
	src  Source
}

func NewFoodManager(grid types.Grid, src Source) *FoodManager {
	if src == nil {
		src = NewRandSource(uint64(rand.Int63()))
	}
	return &FoodManager{
		grid: grid,
		src:  src,
	}
}

// Generate picks a uniformly random interior cell. The cobra is not
// consulted, so food can land on its body.
func (fm *FoodManager) Generate() types.Point {
	return types.Point{
		X: 1 + fm.src.Intn(interiorSpan(fm.grid.Width)),
		Y: 1 + fm.src.Intn(interiorSpan(fm.grid.Height)),
	}
}

// interiorSpan is the count of non-wall cells on an axis. Grids below 3
// cells have none and callers are expected to reject them.
func interiorSpan(size int) int {
	if size < 3 {
		return 1
	}
	return size - 2
}
