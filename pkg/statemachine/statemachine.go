package statemachine

import (
	"context"
	"sync"
)

// State is a named state in the machine.
type State string

// Event is a named trigger for a transition.
type Event string

// Action executes side effects during a transition. Returning an error
// aborts the transition and leaves the machine in its current state.
type Action func(ctx context.Context, from, to State, event Event) error

type transition struct {
	to      State
	actions []Action
}

// Machine is a small thread-safe finite state machine. Transitions are
// registered per (state, event) pair; firing an event with no
// registered transition from the current state is an error, which is
// how invalid transitions are kept impossible rather than ignored.
type Machine struct {
	mu          sync.RWMutex
	initial     State
	current     State
	transitions map[State]map[Event]transition
}

// New creates a machine starting in the given state.
func New(initial State) *Machine {
	return &Machine{
		initial:     initial,
		current:     initial,
		transitions: make(map[State]map[Event]transition),
	}
}

// AddTransition registers the transition taken when event fires while
// the machine is in from. Registering the same (from, event) pair twice
// replaces the earlier transition.
func (m *Machine) AddTransition(from, to State, event Event, actions ...Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transitions[from]; !ok {
		m.transitions[from] = make(map[Event]transition)
	}
	m.transitions[from][event] = transition{to: to, actions: actions}
}

// Current returns the machine's current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Can reports whether firing event from the current state would be a
// valid transition.
func (m *Machine) Can(event Event) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.transitions[m.current][event]
	return ok
}

// Fire triggers event. All transition actions run, in order, before the
// state changes; the first action error aborts the transition.
func (m *Machine) Fire(ctx context.Context, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tr, ok := m.transitions[m.current][event]
	if !ok {
		return &NoTransitionError{From: m.current, Event: event}
	}

	for _, action := range tr.actions {
		if err := action(ctx, m.current, tr.to, event); err != nil {
			return err
		}
	}

	m.current = tr.to
	return nil
}

// Reset returns the machine to its initial state without running any
// actions.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

// Force sets the current state directly, bypassing transitions and
// actions. Intended for rehydrating a machine from persisted state.
func (m *Machine) Force(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = s
}
