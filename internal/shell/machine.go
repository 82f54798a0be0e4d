// Package shell tracks the hover/open interaction of the two egg shells.
//
// Both shells share one [Machine]; a hover on either half highlights both.
// In the default [OneWay] variant a click opens the egg for good and hover
// input is ignored from then on. The [Toggle] variant lets a second click
// close the egg again and re-enables hover.
package shell

import (
	"fmt"
	"strings"
)

type State int

const (
	Idle State = iota
	Hovered
	Open
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Hovered:
		return "hovered"
	case Open:
		return "open"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

type Event int

const (
	PointerEnter Event = iota
	PointerLeave
	Click
)

func (e Event) String() string {
	switch e {
	case PointerEnter:
		return "enter"
	case PointerLeave:
		return "leave"
	case Click:
		return "click"
	}
	return fmt.Sprintf("event(%d)", int(e))
}

type Variant int

const (
	OneWay Variant = iota
	Toggle
)

func (v Variant) String() string {
	if v == Toggle {
		return "toggle"
	}
	return "oneway"
}

func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "", "oneway", "one-way":
		return OneWay, nil
	case "toggle":
		return Toggle, nil
	}
	return OneWay, fmt.Errorf("shell: unknown variant %q", s)
}

// Snapshot is the state both shells render from.
type Snapshot struct {
	Hovered bool
	Open    bool
}

type Machine struct {
	state   State
	variant Variant
	onOpen  []func(open bool)
}

func NewMachine(v Variant) *Machine {
	return &Machine{variant: v}
}

func (m *Machine) State() State     { return m.state }
func (m *Machine) Variant() Variant { return m.variant }

func (m *Machine) Snapshot() Snapshot {
	return Snapshot{Hovered: m.state == Hovered, Open: m.state == Open}
}

// HoverEnabled reports whether pointer enter/leave is still delivered.
func (m *Machine) HoverEnabled() bool { return m.state != Open }

// Active is the particle field's active flag.
func (m *Machine) Active() bool { return m.state == Open }

// OnOpenChange registers fn to run whenever a click changes the open state.
// Hover transitions never call it.
func (m *Machine) OnOpenChange(fn func(open bool)) {
	m.onOpen = append(m.onOpen, fn)
}

// Fire applies ev and reports whether the state changed.
func (m *Machine) Fire(ev Event) bool {
	prev := m.state
	switch ev {
	case PointerEnter:
		if m.state == Idle {
			m.state = Hovered
		}
	case PointerLeave:
		if m.state == Hovered {
			m.state = Idle
		}
	case Click:
		switch {
		case m.state != Open:
			m.state = Open
		case m.variant == Toggle:
			m.state = Idle
		}
	}

	if m.state == prev {
		return false
	}
	if ev == Click {
		open := m.state == Open
		for _, fn := range m.onOpen {
			fn(open)
		}
	}
	return true
}
