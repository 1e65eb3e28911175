package demo

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/llehouerou/rentflow/internal/sequence"
)

func TestControlLabel(t *testing.T) {
	tests := []struct {
		name string
		snap sequence.Snapshot
		want string
	}{
		{"idle", sequence.Snapshot{Index: 0, Total: 7}, "Start Demo"},
		{"playing first step", sequence.Snapshot{Index: 0, Total: 7, Playing: true}, "Pause"},
		{"paused midway", sequence.Snapshot{Index: 3, Total: 7}, "Resume"},
		{"complete", sequence.Snapshot{Index: 7, Total: 7, Complete: true}, "Resume"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ControlLabel(tt.snap); got != tt.want {
				t.Errorf("ControlLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStepState(t *testing.T) {
	snap := sequence.Snapshot{Index: 2, Total: 4}
	want := []StepStatus{StepDone, StepDone, StepActive, StepPending}
	for i, w := range want {
		if got := StepState(i, snap); got != w {
			t.Errorf("StepState(%d) = %v, want %v", i, got, w)
		}
	}

	done := sequence.Snapshot{Index: 4, Total: 4, Complete: true}
	for i := range 4 {
		if got := StepState(i, done); got != StepDone {
			t.Errorf("complete: StepState(%d) = %v, want Done", i, got)
		}
	}
}

func TestPreview(t *testing.T) {
	s, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}

	tests := []struct {
		index      int
		wantTitles []string
	}{
		{0, []string{""}},
		{1, []string{"New Message Received"}},
		{3, []string{"Matching Properties"}},
		{4, []string{"AI Generated Response"}},
		{5, []string{"AI Generated Response", "Complexity Score: 75"}},
		{6, []string{"AI Generated Response", "Complexity Score: 75", "Sent to Review Queue"}},
		{7, []string{"Message Sent Successfully!"}},
	}
	for _, tt := range tests {
		snap := sequence.Snapshot{Index: tt.index, Total: 7, Complete: tt.index == 7}
		cards := Preview(s, snap)
		if len(cards) != len(tt.wantTitles) {
			t.Errorf("index %d: got %d cards, want %d", tt.index, len(cards), len(tt.wantTitles))
			continue
		}
		for i, c := range cards {
			if c.Title != tt.wantTitles[i] {
				t.Errorf("index %d card %d: Title = %q, want %q", tt.index, i, c.Title, tt.wantTitles[i])
			}
		}
	}

	idle := Preview(s, sequence.Snapshot{Total: 7})
	if idle[0].Lines[0] != s.IdleHint {
		t.Errorf("idle preview = %v, want hint", idle[0].Lines)
	}
}

func TestStepStatus_String(t *testing.T) {
	if StepDone.String() != "Done" || StepStatus(42).String() != "Unknown" {
		t.Error("unexpected StepStatus names")
	}
}

func TestNewPlayer_PlaysBuiltinToMetrics(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s, err := Builtin()
		if err != nil {
			t.Fatalf("Builtin() error = %v", err)
		}
		p := NewPlayer(s)
		defer p.Close()

		p.Play()
		time.Sleep(s.TotalDuration())
		synctest.Wait()

		snap := p.Snapshot()
		if !ShowMetrics(snap) {
			t.Errorf("snapshot = %+v, want metrics after full run", snap)
		}
		if ControlLabel(snap) != "Resume" {
			t.Errorf("ControlLabel() = %q after completion", ControlLabel(snap))
		}
	})
}
