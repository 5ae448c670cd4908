package mode

import (
	"errors"
	"fmt"
)

// Errors returned by the mode package.
var (
	ErrUnknownMode       = errors.New("mode: unknown mode")
	ErrIllegalTransition = errors.New("mode: illegal transition")
)

// ChangeCallback is called after the mode changes.
type ChangeCallback func(from, to Mode)

// Machine holds the current mode and enforces legal transitions.
type Machine struct {
	current   Mode
	callbacks []ChangeCallback
}

// NewMachine creates a machine in Normal mode.
func NewMachine() *Machine {
	return &Machine{current: Normal}
}

// Current returns the current mode.
func (m *Machine) Current() Mode {
	return m.current
}

// OnChange registers a callback invoked after every mode change.
func (m *Machine) OnChange(cb ChangeCallback) {
	m.callbacks = append(m.callbacks, cb)
}

// CanTransition reports whether from -> to is a legal transition.
// Staying in the same mode is always legal.
func CanTransition(from, to Mode) bool {
	if from == to {
		return true
	}
	switch from {
	case Normal:
		return to == Insert || to == Visual || to == CommandLine
	case Insert, Visual, CommandLine:
		return to == Normal
	}
	return false
}

// Transition moves to mode to. Illegal transitions leave the machine
// unchanged and return ErrIllegalTransition.
func (m *Machine) Transition(to Mode) error {
	if int(to) >= len(modeNames) {
		return fmt.Errorf("%w: %d", ErrUnknownMode, to)
	}
	from := m.current
	if from == to {
		return nil
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}
	m.current = to
	for _, cb := range m.callbacks {
		cb(from, to)
	}
	return nil
}
