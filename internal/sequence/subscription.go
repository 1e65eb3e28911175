package sequence

const eventBufferSize = 16

// Subscription delivers snapshots to one observer.
type Subscription struct {
	Changed <-chan Snapshot
	Done    <-chan struct{}

	changedCh chan Snapshot
	doneCh    chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		changedCh: make(chan Snapshot, eventBufferSize),
		doneCh:    make(chan struct{}),
	}
	s.Changed = s.changedCh
	s.Done = s.doneCh
	return s
}

// close signals the observer that no more snapshots will arrive.
func (s *Subscription) close() {
	close(s.doneCh)
}

// send delivers a snapshot without blocking the player.
func (s *Subscription) send(snap Snapshot) {
	select {
	case s.changedCh <- snap:
	default:
		// Drop if buffer full
	}
}
