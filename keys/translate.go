package keys

import (
	"strconv"

	"github.com/Alia5/keyglyph/layout"
)

// insensitive maps keys whose glyph ignores both layout and shift.
var insensitive = map[Code]string{
	KeyForwardDelete: "⌦",
	KeyLeftArrow:     "←",
	KeyRightArrow:    "→",
	KeyDownArrow:     "↓",
	KeyUpArrow:       "↑",
}

// Translate returns the glyph for code under layout l.
// An empty result means the key has no registered glyph.
func Translate(code Code, l layout.Layout, shift bool) string {
	if glyph, ok := l.Table().Lookup(uint16(code), shift); ok {
		return glyph
	}
	return insensitive[code]
}

// Format decorates a translated token for the log.
//
// Command wins over control when both are held. Shift adds no prefix since
// it already selected the table column. An empty token is replaced by a
// placeholder naming the raw keycode, without any prefix.
func Format(code Code, token string, control, command bool) string {
	if token == "" {
		return "[unregistered keycode " + strconv.FormatUint(uint64(code), 10) + "]"
	}
	switch {
	case command:
		return GlyphCommand + token
	case control:
		return GlyphControl + token
	default:
		return token
	}
}

// Render translates code with the given state and formats the result.
func Render(code Code, l layout.Layout, m Modifiers) string {
	return Format(code, Translate(code, l, m.Shift), m.Control, m.Command)
}
