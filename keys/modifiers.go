package keys

import "strings"

// Modifiers is the modifier state that applies to every key-down until the
// next flags-changed event. Option and caps lock are not tracked.
type Modifiers struct {
	Shift   bool
	Control bool
	Command bool
}

// ModifiersFromFlags decodes a CGEventFlags bitmask.
func ModifiersFromFlags(f Flags) Modifiers {
	return Modifiers{
		Shift:   f&FlagShift != 0,
		Control: f&FlagControl != 0,
		Command: f&FlagCommand != 0,
	}
}

// Update overwrites all three modifiers from f and returns the new state.
func (m *Modifiers) Update(f Flags) Modifiers {
	*m = ModifiersFromFlags(f)
	return *m
}

// Flags encodes m back into a CGEventFlags bitmask.
func (m Modifiers) Flags() Flags {
	var f Flags
	if m.Shift {
		f |= FlagShift
	}
	if m.Control {
		f |= FlagControl
	}
	if m.Command {
		f |= FlagCommand
	}
	return f
}

func (m Modifiers) String() string {
	var parts []string
	if m.Shift {
		parts = append(parts, "shift")
	}
	if m.Control {
		parts = append(parts, "control")
	}
	if m.Command {
		parts = append(parts, "command")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}
