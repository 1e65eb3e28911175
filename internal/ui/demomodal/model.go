// Package demomodal is the popup that plays the scripted walkthrough.
package demomodal

import (
	"github.com/llehouerou/rentflow/internal/demo"
	"github.com/llehouerou/rentflow/internal/keymap"
	"github.com/llehouerou/rentflow/internal/sequence"
	"github.com/llehouerou/rentflow/internal/ui/popup"
)

var (
	_ popup.Popup  = (*Model)(nil)
	_ popup.Closer = (*Model)(nil)
)

// Model is the demo walkthrough popup. It owns its player: the host must
// call Close when the popup is dismissed.
type Model struct {
	script *demo.Script
	player *sequence.Player[demo.Scene]
	sub    *sequence.Subscription
	snap   sequence.Snapshot
	keys   *keymap.Resolver

	width, height int
}

// New creates the popup with a fresh player over script, at the first step.
func New(script *demo.Script) *Model {
	player := demo.NewPlayer(script)
	return &Model{
		script: script,
		player: player,
		sub:    player.Subscribe(),
		snap:   player.Snapshot(),
		keys:   keymap.NewResolver(keymap.ByContext("demo")),
	}
}

// SetSize sets the available dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Snapshot returns the last state the popup rendered from.
func (m *Model) Snapshot() sequence.Snapshot {
	return m.snap
}

// Close disposes the player. Pending timers are cancelled and the watch
// command returns ClosedMsg.
func (m *Model) Close() error {
	return m.player.Close()
}
