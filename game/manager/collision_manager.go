package manager

import (
	"cobra-chase/game/entity"
	"cobra-chase/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check classifies what a head moving onto pos would hit
func (cm *CollisionManager) Check(pos types.Point, cobra entity.Cobra) CollisionType {
	if cm.IsWallCollision(pos) {
		return WallCollision
	}
	if cm.IsSelfCollision(pos, cobra) {
		return SelfCollision
	}
	return NoCollision
}

// IsWallCollision checks if a position is on or past the border ring
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.InBounds(pos)
}

// IsSelfCollision checks the whole current body, including the tail cell
// that would be vacated on this tick.
func (cm *CollisionManager) IsSelfCollision(pos types.Point, cobra entity.Cobra) bool {
	return cobra.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
