// Package selection gates region creation behind a pointer-driven
// selection flow:
//
//	Idle --down--> Selecting --up, non-empty--> SelectionReady --commit--> Idle
//	                   |                              |
//	                   +--up, empty--> Idle           +--clear--> Idle
//
// Only SelectionReady enables the create-region action. The state is a UI
// affordance and is never persisted.
package selection

import "github.com/dshills/annotext/internal/engine/buffer"

// State is a selection flow state.
type State uint8

const (
	Idle State = iota
	Selecting
	SelectionReady
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Selecting:
		return "selecting"
	case SelectionReady:
		return "selection-ready"
	default:
		return "unknown"
	}
}

// Machine tracks the selection flow over character offsets.
type Machine struct {
	state  State
	anchor int
	head   int

	onChange func(from, to State)
}

// New creates a machine in Idle.
func New() *Machine {
	return &Machine{}
}

// OnChange registers a function called on every state transition.
func (m *Machine) OnChange(fn func(from, to State)) {
	m.onChange = fn
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// CanCommit reports whether the create-region action is enabled.
func (m *Machine) CanCommit() bool {
	return m.state == SelectionReady
}

// Selection returns the ordered selected span while selecting or ready.
func (m *Machine) Selection() (buffer.Span, bool) {
	if m.state == Idle {
		return buffer.Span{}, false
	}
	return buffer.Span{Start: m.anchor, End: m.head}.Normalize(), true
}

// Head returns the moving end of the selection.
func (m *Machine) Head() int {
	return m.head
}

// PointerDown starts a new selection at offset, discarding any previous
// one.
func (m *Machine) PointerDown(offset int) {
	m.anchor, m.head = offset, offset
	m.set(Selecting)
}

// PointerDrag moves the selection head while selecting.
func (m *Machine) PointerDrag(offset int) {
	if m.state == Selecting {
		m.head = offset
	}
}

// PointerUp ends a drag. A non-empty selection becomes ready; an empty
// one returns to Idle.
func (m *Machine) PointerUp(offset int) State {
	if m.state != Selecting {
		return m.state
	}
	m.head = offset
	if m.anchor == m.head {
		m.set(Idle)
	} else {
		m.set(SelectionReady)
	}
	return m.state
}

// Select sets a complete selection directly, as a keyboard selection
// would.
func (m *Machine) Select(start, end int) State {
	m.anchor, m.head = start, end
	if start == end {
		m.set(Idle)
	} else {
		m.set(SelectionReady)
	}
	return m.state
}

// Commit consumes a ready selection and returns to Idle.
func (m *Machine) Commit() (buffer.Span, bool) {
	if m.state != SelectionReady {
		return buffer.Span{}, false
	}
	span, _ := m.Selection()
	m.set(Idle)
	return span, true
}

// Clear drops any selection.
func (m *Machine) Clear() {
	m.set(Idle)
}

func (m *Machine) set(s State) {
	from := m.state
	m.state = s
	if from != s && m.onChange != nil {
		m.onChange(from, s)
	}
}
