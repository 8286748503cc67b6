package game

import "cobra-chase/game/types"

// Event is an input raised by the player surface
type Event interface {
	isEvent()
}

type StartGame struct{}

type PauseGame struct{}

type ResetGame struct{}

// UpdateDirection carries a tap on a board canvasWidth pixels wide
type UpdateDirection struct {
	Tap         types.Tap
	CanvasWidth int
}

func (StartGame) isEvent()       {}
func (PauseGame) isEvent()       {}
func (ResetGame) isEvent()       {}
func (UpdateDirection) isEvent() {}

// Apply returns the state after ev. Unknown events leave s untouched.
func (g *Game) Apply(s State, ev Event) State {
	switch e := ev.(type) {
	case StartGame:
		return g.Start(s)
	case PauseGame:
		return g.Pause(s)
	case ResetGame:
		return g.Reset()
	case UpdateDirection:
		return g.SetDirection(s, e.Tap, e.CanvasWidth)
	default:
		return s
	}
}
