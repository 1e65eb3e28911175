// internal/sequence/state.go
package sequence

// Status is the coarse player state derived from a Snapshot.
//
//	┌──────────┐    play     ┌──────────┐   timer (i+1 < N)
//	│   Idle   │ ──────────▶ │ Running  │ ◀─────────────┐
//	└──────────┘             └──────────┘ ──────────────┘
//	     ▲                    │   ▲    │
//	     │ reset        pause │   │    │ timer (i+1 == N)
//	     │                    ▼   │    ▼
//	     │               ┌──────────┐ ┌──────────┐
//	     └───────────────│  Paused  │ │ Complete │──── play ───▶ Running(0)
//	                     └──────────┘ └──────────┘
//
// Idle is Paused at index 0. Reset returns to Idle from any state.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusComplete
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusRunning:
		return "Running"
	case StatusPaused:
		return "Paused"
	case StatusComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// CanPlay reports whether Play changes anything in this status.
func (s Status) CanPlay() bool {
	return s != StatusRunning
}

// CanPause reports whether Pause changes anything in this status.
func (s Status) CanPause() bool {
	return s == StatusRunning
}
