package app

import (
	"fmt"

	"github.com/ionut-t/tino/pkg/note"
)

// maxSteps bounds the effect/event round trips of a single dispatch.
const maxSteps = 16

// Machine owns the application state and runs every effect of an event to completion
// before returning, so the view never sees a partially updated state.
type Machine struct {
	state State
	exec  Executor
}

// New performs the initial scan and returns a machine ready for input.
// A failing initial scan is fatal.
func New(dirs note.Directories, exec Executor) (*Machine, error) {
	entries, err := exec.Scan()
	if err != nil {
		return nil, fmt.Errorf("initial scan failed: %w", err)
	}

	return &Machine{
		state: NewState(dirs, entries),
		exec:  exec,
	}, nil
}

// NewWithState returns a machine starting from s without scanning.
func NewWithState(s State, exec Executor) *Machine {
	return &Machine{state: s, exec: exec}
}

func (m *Machine) State() State {
	return m.state
}

// Dispatch applies ev and every effect it causes. It returns the effects that were carried out.
func (m *Machine) Dispatch(ev Event) []Effect {
	var done []Effect

	pending := []Event{ev}

	for steps := 0; len(pending) > 0 && steps < maxSteps; steps++ {
		next := pending[0]
		pending = pending[1:]

		var effects []Effect
		m.state, effects = Update(m.state, next)

		for _, effect := range effects {
			done = append(done, effect)

			if result := m.exec.Run(effect); result != nil {
				pending = append(pending, result)
			}
		}
	}

	return done
}
