// Package layout holds the per-layout glyph tables for the primary keycode
// range and the selector that picks one of them from an input-source id.
package layout

import (
	"errors"
	"fmt"
)

// PrimaryKeyCount is the number of keycodes covered by a Table (0x00-0x35).
const PrimaryKeyCount = 54

// ErrRowCount is returned by NewTable when the row count does not match PrimaryKeyCount.
var ErrRowCount = errors.New("layout table row count mismatch")

// Entry is one physical key position: the glyph without and with Shift.
// An empty string means no glyph is assigned.
type Entry struct {
	Plain   string
	Shifted string
}

// Table maps keycodes 0..PrimaryKeyCount-1 to glyphs. It is immutable once built.
type Table struct {
	name    string
	entries [PrimaryKeyCount]Entry
}

// NewTable validates rows and builds a Table.
func NewTable(name string, rows []Entry) (*Table, error) {
	if len(rows) != PrimaryKeyCount {
		return nil, fmt.Errorf("%w: %s has %d rows, want %d", ErrRowCount, name, len(rows), PrimaryKeyCount)
	}
	t := &Table{name: name}
	copy(t.entries[:], rows)
	return t, nil
}

// MustTable is like NewTable but panics on invalid input.
// It is meant for package-level tables.
func MustTable(name string, rows []Entry) *Table {
	t, err := NewTable(name, rows)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the human-readable table name.
func (t *Table) Name() string {
	return t.name
}

// Lookup returns the glyph for code. ok is false when code is outside the
// primary range; the glyph itself may still be empty for unassigned keys.
func (t *Table) Lookup(code uint16, shift bool) (glyph string, ok bool) {
	if int(code) >= PrimaryKeyCount {
		return "", false
	}
	e := t.entries[code]
	if shift {
		return e.Shifted, true
	}
	return e.Plain, true
}

// Entry returns the row for code, or false when code is out of range.
func (t *Table) Entry(code uint16) (Entry, bool) {
	if int(code) >= PrimaryKeyCount {
		return Entry{}, false
	}
	return t.entries[code], true
}
