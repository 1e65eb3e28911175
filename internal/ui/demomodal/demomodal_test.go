package demomodal

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/rentflow/internal/demo"
	"github.com/llehouerou/rentflow/internal/ui/popup"
	"github.com/llehouerou/rentflow/internal/ui/testutil"
)

func newHarness(t *testing.T) (*Model, *testutil.PopupHarness, *demo.Script) {
	t.Helper()
	script, err := demo.Builtin()
	require.NoError(t, err)

	m := New(script)
	t.Cleanup(func() { _ = m.Close() })

	h := testutil.NewPopupHarness(m)
	h.SetSize(80, 40)
	return m, h, script
}

// drain feeds pending watch results back into the popup until the
// subscription has nothing buffered.
func drain(h *testutil.PopupHarness, m *Model) {
	for {
		select {
		case snap := <-m.sub.Changed:
			h.SendMsg(SnapshotMsg{Snapshot: snap, from: m})
		default:
			return
		}
	}
}

func TestNew_RendersIdle(t *testing.T) {
	m, h, script := newHarness(t)

	assert.Equal(t, 0, m.Snapshot().Index)
	assert.False(t, m.Snapshot().Playing)
	assert.Len(t, h.Commands(), 1, "Init should start the watch")

	assert.True(t, h.ViewContains(script.Title))
	assert.True(t, h.ViewContains("Step 1 of 7"))
	assert.True(t, h.ViewContains("0%"))
	assert.True(t, h.ViewContains("▶ Incoming WhatsApp Message"))
	assert.True(t, h.ViewContains("○ Approval & Send"))
	assert.True(t, h.ViewContains(script.IdleHint))
	assert.True(t, h.ViewContains("[ Start Demo ]"))
	assert.True(t, h.ViewContains("space play/pause"))
	assert.True(t, h.ViewContains("esc/q close"))
}

func TestSpace_TogglesPlayback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, h, _ := newHarness(t)

		h.SendKey("space")
		assert.True(t, m.Snapshot().Playing)
		assert.True(t, h.ViewContains("[ Pause ]"))

		h.SendKey("space")
		assert.False(t, m.Snapshot().Playing)
		assert.Equal(t, 0, m.Snapshot().Index)
		assert.True(t, h.ViewContains("[ Start Demo ]"))
	})
}

func TestSnapshotMsg_AdvancesView(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, h, script := newHarness(t)

		h.SendKey("space")
		time.Sleep(script.Steps[0].Duration())
		synctest.Wait()

		msg, cmd := h.ExecuteAndSend(h.Commands()[0])
		require.IsType(t, SnapshotMsg{}, msg)
		assert.NotNil(t, cmd, "watch should be re-armed")

		assert.Equal(t, 1, m.Snapshot().Index)
		assert.True(t, h.ViewContains("✓ Incoming WhatsApp Message"))
		assert.True(t, h.ViewContains("▶ AI Processing"))
		assert.True(t, h.ViewContains("Step 2 of 7"))
		assert.True(t, h.ViewContains("New Message Received"))
		assert.True(t, h.ViewContains("[ Pause ]"))
	})
}

func TestRunToCompletion_ShowsMetrics(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, h, script := newHarness(t)

		h.SendKey("space")
		time.Sleep(script.TotalDuration())
		synctest.Wait()
		drain(h, m)

		snap := m.Snapshot()
		assert.True(t, snap.Complete)
		assert.False(t, snap.Playing)

		assert.True(t, h.ViewContains("Complete"))
		assert.True(t, h.ViewContains("100%"))
		assert.True(t, h.ViewContains(script.CompleteTitle))
		assert.True(t, h.ViewContains("Time Saved"))
		assert.True(t, h.ViewContains("+42%"))
		assert.False(t, h.ViewContains("Live Preview"))
		assert.True(t, h.ViewContains("[ Resume ]"))

		// Resume restarts the walkthrough.
		h.SendKey("space")
		assert.Equal(t, 0, m.Snapshot().Index)
		assert.True(t, m.Snapshot().Playing)
	})
}

func TestGroupedResultsStack(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, h, script := newHarness(t)

		h.SendKey("space")
		var elapsed time.Duration
		for _, step := range script.Steps[:6] {
			elapsed += step.Duration()
		}
		time.Sleep(elapsed)
		synctest.Wait()
		drain(h, m)

		assert.Equal(t, 6, m.Snapshot().Index)
		assert.True(t, h.ViewContains("AI Generated Response"))
		assert.True(t, h.ViewContains("Complexity Score: 75"))
		assert.True(t, h.ViewContains("Sent to Review Queue"))
		assert.False(t, h.ViewContains("Matching Properties"))
	})
}

func TestReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, h, script := newHarness(t)

		h.SendKey("space")
		time.Sleep(script.Steps[0].Duration() + script.Steps[1].Duration())
		synctest.Wait()
		drain(h, m)
		require.Equal(t, 2, m.Snapshot().Index)

		h.SendKey("r")
		snap := m.Snapshot()
		assert.Equal(t, 0, snap.Index)
		assert.False(t, snap.Playing)
		assert.True(t, h.ViewContains("[ Start Demo ]"))

		// No timer survives the reset.
		time.Sleep(script.TotalDuration())
		synctest.Wait()
		drain(h, m)
		assert.Equal(t, 0, m.Snapshot().Index)
	})
}

func TestCloseKey(t *testing.T) {
	for _, key := range []string{"esc", "q"} {
		t.Run(key, func(t *testing.T) {
			_, h, _ := newHarness(t)
			cmd := h.SendKey(key)
			require.NotNil(t, cmd)
			assert.Equal(t, popup.CloseMsg{}, cmd())
		})
	}
}

func TestClose_EndsWatch(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m, h, _ := newHarness(t)
		watch := h.Commands()[0]

		h.SendKey("space")
		drain(h, m)
		require.NoError(t, m.Close())

		// The buffered snapshot from Play is gone; only Done remains.
		msg := watch()
		assert.IsType(t, ClosedMsg{}, msg)

		_, cmd := m.Update(msg)
		assert.Nil(t, cmd)

		// A closed player ignores controls.
		h.SendKey("space")
		assert.False(t, m.Snapshot().Playing)
		assert.NoError(t, m.Close())
	})
}

func TestForeignSnapshotIgnored(t *testing.T) {
	_, h, _ := newHarness(t)
	other, _, _ := newHarness(t)

	cmd := h.SendMsg(SnapshotMsg{from: other})
	assert.Nil(t, cmd, "a snapshot from another popup must not re-arm the watch")
}

func TestUnboundKeyIgnored(t *testing.T) {
	m, h, _ := newHarness(t)
	cmd := h.SendKey("x")
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Snapshot().Index)
}
