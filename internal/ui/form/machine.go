package form

// Machine tracks the current step of a form with the history of steps
// shown before it, so Back returns to the step the user actually saw.
type Machine[S any] struct {
	current S
	history []S
}

// NewMachine creates a machine starting at initial.
func NewMachine[S any](initial S) *Machine[S] {
	return &Machine[S]{
		current: initial,
		history: make([]S, 0, 8),
	}
}

// Current returns the active step.
func (m *Machine[S]) Current() S {
	return m.current
}

// Advance moves to next, pushing the current step to history.
func (m *Machine[S]) Advance(next S) {
	m.history = append(m.history, m.current)
	m.current = next
}

// Back returns to the previous step. It reports false on the first step.
func (m *Machine[S]) Back() bool {
	if !m.CanGoBack() {
		return false
	}
	m.current = m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	return true
}

// CanGoBack reports whether a previous step exists.
func (m *Machine[S]) CanGoBack() bool {
	return len(m.history) > 0
}

// HistoryDepth returns the number of steps behind the current one.
func (m *Machine[S]) HistoryDepth() int {
	return len(m.history)
}

// Reset clears history and restarts at initial.
func (m *Machine[S]) Reset(initial S) {
	m.current = initial
	m.history = m.history[:0]
}
