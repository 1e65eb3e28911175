package demomodal

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rentflow/internal/sequence"
	"github.com/llehouerou/rentflow/internal/ui/popup"
)

// SnapshotMsg carries a player state change into the update loop.
type SnapshotMsg struct {
	Snapshot sequence.Snapshot
	from     *Model
}

// ClosedMsg is returned by the watch command once the player is closed.
type ClosedMsg struct {
	from *Model
}

// watch waits for the next player notification. Messages are tagged with
// the popup that issued the watch so a reopened popup ignores its
// predecessor's.
func (m *Model) watch() tea.Cmd {
	sub := m.sub
	return func() tea.Msg {
		select {
		case snap := <-sub.Changed:
			return SnapshotMsg{Snapshot: snap, from: m}
		case <-sub.Done:
			return ClosedMsg{from: m}
		}
	}
}

func closeCmd() tea.Msg {
	return popup.CloseMsg{}
}
