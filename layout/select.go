package layout

// Input-source ids as reported by the macOS Text Input Sources API.
const (
	UnicodeHexInputID = "com.apple.keylayout.UnicodeHexInput"
	ColemakID         = "com.apple.keylayout.Colemak"
)

// Layout selects which Table translates the primary keycode range.
type Layout uint8

const (
	Primary   Layout = iota // Unicode Hex Input
	Secondary               // Colemak
)

// Select returns Primary only for an exact UnicodeHexInputID match.
// Any other id, including the empty string, selects Secondary.
func Select(inputSourceID string) Layout {
	if inputSourceID == UnicodeHexInputID {
		return Primary
	}
	return Secondary
}

// Table returns the glyph table for l.
func (l Layout) Table() *Table {
	if l == Primary {
		return UnicodeHex
	}
	return Colemak
}

func (l Layout) String() string {
	switch l {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return "unknown"
	}
}
