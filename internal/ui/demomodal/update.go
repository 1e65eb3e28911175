package demomodal

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rentflow/internal/keymap"
	"github.com/llehouerou/rentflow/internal/ui/popup"
)

// Init starts watching the player.
func (m *Model) Init() tea.Cmd {
	return m.watch()
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		if msg.from != m {
			return m, nil
		}
		// Notifications can be dropped or arrive late; the player is the
		// source of truth.
		m.snap = m.player.Snapshot()
		return m, m.watch()
	case ClosedMsg:
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (popup.Popup, tea.Cmd) {
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionDemoToggle:
		if m.player.Snapshot().Playing {
			m.player.Pause()
		} else {
			m.player.Play()
		}
	case keymap.ActionDemoReset:
		m.player.Reset()
	case keymap.ActionClose:
		return m, closeCmd
	default:
		return m, nil
	}
	m.snap = m.player.Snapshot()
	return m, nil
}
