package demo

import "github.com/llehouerou/rentflow/internal/sequence"

// StepStatus is how a step is drawn in the step list.
type StepStatus int

const (
	StepPending StepStatus = iota
	StepActive
	StepDone
)

// String returns the step status name.
func (s StepStatus) String() string {
	switch s {
	case StepPending:
		return "Pending"
	case StepActive:
		return "Active"
	case StepDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// StepState returns the status of step i at snap.
func StepState(i int, snap sequence.Snapshot) StepStatus {
	switch {
	case i < snap.Index:
		return StepDone
	case i == snap.Index:
		return StepActive
	default:
		return StepPending
	}
}

// ControlLabel is the caption of the play/pause control.
// A completed run shows "Resume", which restarts it.
func ControlLabel(snap sequence.Snapshot) string {
	switch {
	case snap.Playing:
		return "Pause"
	case snap.Index == 0:
		return "Start Demo"
	default:
		return "Resume"
	}
}

// ShowMetrics reports whether the summary replaces the step view.
func ShowMetrics(snap sequence.Snapshot) bool {
	return snap.Complete
}

// Card is one block of the live preview.
type Card struct {
	Title string
	Lines []string
}

// Preview returns the live preview at snap: the hint before the first
// step finishes, then the result of the last finished step stacked under
// the earlier results of its group.
func Preview(s *Script, snap sequence.Snapshot) []Card {
	if snap.Index == 0 || snap.Index > len(s.Steps) {
		return []Card{{Lines: []string{s.IdleHint}}}
	}

	last := snap.Index - 1
	first := last
	if g := s.Steps[last].Group; g != "" {
		for first > 0 && s.Steps[first-1].Group == g {
			first--
		}
	}

	cards := make([]Card, 0, last-first+1)
	for _, step := range s.Steps[first : last+1] {
		cards = append(cards, Card{Title: step.ResultTitle, Lines: step.Result})
	}
	return cards
}
