package game

import (
	"time"

	"cobra-chase/game/entity"
	"cobra-chase/game/manager"
	"cobra-chase/game/types"
)

// State is one snapshot of a game. It is a plain value: the engine
// returns a new State from every transition and never mutates its input.
type State struct {
	Grid      types.Grid
	Direction types.Direction
	Cobra     entity.Cobra
	Food      types.Point
	Over      bool
	Status    types.Status
}

// Score is the number of food cells eaten
func (s State) Score() int {
	return s.Cobra.Len() - 1
}

// Running reports whether the session should keep ticking
func (s State) Running() bool {
	return s.Status == types.Running && !s.Over
}

type Game struct {
	grid         types.Grid
	src          manager.Source
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

// NewGame builds an engine whose fresh states use grid. The grid needs at
// least 3 cells per axis so there is an interior inside the wall ring. A
// nil src uses a randomly seeded generator for food placement.
func NewGame(grid types.Grid, src manager.Source) *Game {
	if src == nil {
		src = manager.NewRandSource(uint64(time.Now().UnixNano()))
	}
	return &Game{
		grid:         grid,
		src:          src,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, src),
	}
}

// managersFor returns collision and food managers for the walls of grid
func (g *Game) managersFor(grid types.Grid) (*manager.CollisionManager, *manager.FoodManager) {
	if grid == g.grid {
		return g.collisionMgr, g.foodMgr
	}
	return manager.NewCollisionManager(grid), manager.NewFoodManager(grid, g.src)
}

// Reset returns the initial state: one segment at the start position,
// heading right, idle, with freshly placed food.
func (g *Game) Reset() State {
	return State{
		Grid:      g.grid,
		Direction: types.Right,
		Cobra:     entity.NewCobra(types.StartPosition),
		Food:      g.foodMgr.Generate(),
		Status:    types.Idle,
	}
}

// Advance moves the cobra one cell within the walls of s.Grid. Hitting a
// wall or the body ends the game and leaves everything else as it was.
func (g *Game) Advance(s State) State {
	if s.Over {
		return s
	}
	collisionMgr, foodMgr := g.managersFor(s.Grid)

	newHead := s.Direction.Step(s.Cobra.Head())
	if collisionMgr.Check(newHead, s.Cobra) != manager.NoCollision {
		s.Over = true
		return s
	}

	ate := collisionMgr.IsFoodCollision(newHead, s.Food)
	s.Cobra = s.Cobra.Move(newHead, ate)
	if ate {
		s.Food = foodMgr.Generate()
	}
	return s
}

// SetDirection turns the cobra towards a tap. Only perpendicular turns are
// possible: a vertical heading becomes left or right depending on which side
// of the head the tapped column is, a horizontal one becomes up or down.
func (g *Game) SetDirection(s State, tap types.Tap, canvasWidth int) State {
	if s.Over || s.Grid.Width <= 0 {
		return s
	}
	cellSize := canvasWidth / s.Grid.Width
	if cellSize < 1 {
		return s
	}

	tapX := int(tap.X / float64(cellSize))
	tapY := int(tap.Y / float64(cellSize))
	head := s.Cobra.Head()

	if s.Direction.Vertical() {
		if tapX < head.X {
			s.Direction = types.Left
		} else {
			s.Direction = types.Right
		}
	} else {
		if tapY < head.Y {
			s.Direction = types.Up
		} else {
			s.Direction = types.Down
		}
	}
	return s
}

func (g *Game) Start(s State) State {
	s.Status = types.Running
	return s
}

func (g *Game) Pause(s State) State {
	s.Status = types.Paused
	return s
}
