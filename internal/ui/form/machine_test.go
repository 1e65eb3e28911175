package form

import "testing"

func TestNewMachine(t *testing.T) {
	m := NewMachine(2)

	if m.Current() != 2 {
		t.Errorf("Current() = %d, want 2", m.Current())
	}
	if m.HistoryDepth() != 0 {
		t.Errorf("HistoryDepth() = %d, want 0", m.HistoryDepth())
	}
	if m.CanGoBack() {
		t.Error("CanGoBack() should be false without history")
	}
}

func TestMachine_AdvanceAndBack(t *testing.T) {
	m := NewMachine(0)
	m.Advance(1)
	m.Advance(4) // steps in between were skipped

	if m.HistoryDepth() != 2 {
		t.Errorf("HistoryDepth() = %d, want 2", m.HistoryDepth())
	}
	if !m.Back() {
		t.Fatal("Back() should return true")
	}
	if m.Current() != 1 {
		t.Errorf("Current() = %d after Back, want 1", m.Current())
	}
	if !m.Back() || m.Current() != 0 {
		t.Errorf("Current() = %d after second Back, want 0", m.Current())
	}
	if m.Back() {
		t.Error("Back() on the first step should return false")
	}
	if m.Current() != 0 {
		t.Errorf("Current() = %d, want 0", m.Current())
	}
}

func TestMachine_Reset(t *testing.T) {
	m := NewMachine(0)
	m.Advance(1)
	m.Advance(2)

	m.Reset(5)

	if m.Current() != 5 {
		t.Errorf("Current() = %d, want 5", m.Current())
	}
	if m.HistoryDepth() != 0 {
		t.Errorf("HistoryDepth() = %d after Reset, want 0", m.HistoryDepth())
	}
}
