package manager

import "sync"

// StateManager holds the one current value of a game state. Every
// mutation bumps the version so observers can tell snapshots apart.
type StateManager[S any] struct {
	mu      sync.RWMutex
	state   S
	version uint64
}

func NewStateManager[S any](initial S) *StateManager[S] {
	return &StateManager[S]{state: initial}
}

func (sm *StateManager[S]) Snapshot() S {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.state
}

// Version returns the number of mutations applied so far
func (sm *StateManager[S]) Version() uint64 {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.version
}

func (sm *StateManager[S]) Replace(s S) {
	sm.mu.Lock()
	sm.state = s
	sm.version++
	sm.mu.Unlock()
}

// Update applies fn to the current state and stores the result.
// It returns the previous and the new state.
func (sm *StateManager[S]) Update(fn func(S) S) (prev, next S) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	prev = sm.state
	sm.state = fn(prev)
	sm.version++
	return prev, sm.state
}
