// Package demo describes the scripted product walkthrough shown in the
// dashboard's demo modal and derives what the modal displays from the
// sequence player's snapshots.
package demo

import (
	"time"

	"github.com/llehouerou/rentflow/internal/sequence"
)

// Script is a complete walkthrough.
type Script struct {
	Title         string   `koanf:"title"`
	Subtitle      string   `koanf:"subtitle"`
	IdleHint      string   `koanf:"idle_hint"`
	CompleteTitle string   `koanf:"complete_title"`
	CompleteNote  string   `koanf:"complete_note"`
	Steps         []Scene  `koanf:"steps"`
	Metrics       []Metric `koanf:"metrics"`
	Source        string   `koanf:"-"` // file path or "builtin"
}

// Scene is one step of the walkthrough.
type Scene struct {
	ID          int      `koanf:"id"`
	Title       string   `koanf:"title"`
	Description string   `koanf:"description"`
	DurationMs  int      `koanf:"duration_ms"`
	Group       string   `koanf:"group"` // consecutive scenes of a group stack their results
	ResultTitle string   `koanf:"result_title"`
	Result      []string `koanf:"result"`
}

// Duration returns how long the scene stays current.
func (s Scene) Duration() time.Duration {
	return time.Duration(s.DurationMs) * time.Millisecond
}

// Metric is a summary figure shown once the walkthrough completes.
type Metric struct {
	Label string `koanf:"label"`
	Value string `koanf:"value"`
	Note  string `koanf:"note"`
}

// NewPlayer creates a sequence player over the script's scenes.
func NewPlayer(s *Script) *sequence.Player[Scene] {
	return sequence.New(s.Steps, Scene.Duration)
}

// TotalDuration returns the run time of an uninterrupted playthrough.
func (s *Script) TotalDuration() time.Duration {
	var total time.Duration
	for _, step := range s.Steps {
		total += step.Duration()
	}
	return total
}
