package sequence

import (
	"testing"
	"testing/synctest"
)

func TestSubscription_Delivers(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := newSubscription()
		sub.send(Snapshot{Index: 1, Total: 2, Playing: true})

		got := <-sub.Changed
		if got.Index != 1 || !got.Playing {
			t.Errorf("Changed = %+v", got)
		}
	})
}

func TestSubscription_Close_SignalsDone(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		sub := newSubscription()
		sub.close()
		<-sub.Done
	})
}

func TestSubscription_NonBlocking_DropsWhenFull(t *testing.T) {
	sub := newSubscription()

	for range eventBufferSize + 5 {
		sub.send(Snapshot{})
	}

	if got := len(drain(sub)); got != eventBufferSize {
		t.Errorf("received %d snapshots, want %d (buffer size)", got, eventBufferSize)
	}
}
