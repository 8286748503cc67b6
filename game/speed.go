package game

import "time"

// Speed tiers keyed on cobra length
const (
	SlowDelay   = 120 * time.Millisecond
	MediumDelay = 110 * time.Millisecond
	FastDelay   = 100 * time.Millisecond
)

// TickDelay returns how long to wait before the next tick for a cobra of
// the given length.
func TickDelay(length int) time.Duration {
	switch {
	case length <= 5:
		return SlowDelay
	case length <= 10:
		return MediumDelay
	default:
		return FastDelay
	}
}
