package sequence

import "time"

// Step is one entry of a scripted sequence.
type Step[T any] struct {
	Index    int
	Duration time.Duration
	Payload  T
}

// Snapshot is an immutable view of the player handed to observers.
type Snapshot struct {
	Index    int
	Total    int
	Playing  bool
	Complete bool
}

// Progress returns Index/Total in [0, 1]. An empty sequence is fully done.
func (s Snapshot) Progress() float64 {
	if s.Total == 0 {
		return 1
	}
	return float64(s.Index) / float64(s.Total)
}

// Status returns the state machine position of the snapshot.
func (s Snapshot) Status() Status {
	switch {
	case s.Complete:
		return StatusComplete
	case s.Playing:
		return StatusRunning
	case s.Index == 0:
		return StatusIdle
	default:
		return StatusPaused
	}
}
