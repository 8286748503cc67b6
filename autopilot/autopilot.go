// Package autopilot plays the game through the same tap input a player
// uses, so every decision goes through Game.SetDirection.
package autopilot

import (
	"cobra-chase/game"
	"cobra-chase/game/manager"
	"cobra-chase/game/types"
)

// Pilot greedily steers towards the food while avoiding walls and body
type Pilot struct {
	canvasWidth int
}

func New(canvasWidth int) *Pilot {
	return &Pilot{canvasWidth: canvasWidth}
}

func (p *Pilot) CanvasWidth() int {
	return p.canvasWidth
}

// Decide returns the tap to issue for s, or false when the cobra should
// keep its heading.
func (p *Pilot) Decide(s game.State) (types.Tap, bool) {
	if s.Over || s.Cobra.Len() == 0 || s.Grid.Width <= 0 {
		return types.Tap{}, false
	}
	cellSize := p.canvasWidth / s.Grid.Width
	if cellSize < 1 {
		return types.Tap{}, false
	}

	best, ok := p.choose(s)
	if !ok || best == s.Direction {
		return types.Tap{}, false
	}

	target := best.Step(s.Cobra.Head())
	return types.Tap{
		X: (float64(target.X) + 0.5) * float64(cellSize),
		Y: (float64(target.Y) + 0.5) * float64(cellSize),
	}, true
}

// choose ranks keep-going and both perpendicular turns; ties favour the
// current heading.
func (p *Pilot) choose(s game.State) (types.Direction, bool) {
	cm := manager.NewCollisionManager(s.Grid)
	head := s.Cobra.Head()

	candidates := []types.Direction{s.Direction}
	if s.Direction.Vertical() {
		candidates = append(candidates, types.Left, types.Right)
	} else {
		candidates = append(candidates, types.Up, types.Down)
	}

	var (
		best      types.Direction
		bestScore int
		found     bool
	)
	for _, d := range candidates {
		next := d.Step(head)
		if cm.Check(next, s.Cobra) != manager.NoCollision {
			continue
		}
		score := manhattan(next, s.Food)
		if freeNeighbours(cm, next, s) == 0 {
			// dead end, only if nothing else is left
			score += s.Grid.Width * s.Grid.Height
		}
		if !found || score < bestScore {
			best, bestScore, found = d, score, true
		}
	}
	return best, found
}

func freeNeighbours(cm *manager.CollisionManager, pos types.Point, s game.State) int {
	n := 0
	for _, d := range []types.Direction{types.Up, types.Down, types.Left, types.Right} {
		if cm.Check(d.Step(pos), s.Cobra) == manager.NoCollision {
			n++
		}
	}
	return n
}

func manhattan(a, b types.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
