package keys

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyName maps keycodes to their ANSI key-cap names.
var KeyName = map[Code]string{
	// Letters
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",

	// Numbers
	Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",

	// Punctuation
	KeyEqual:        "Equal",
	KeyMinus:        "Minus",
	KeyRightBracket: "RightBracket",
	KeyLeftBracket:  "LeftBracket",
	KeyQuote:        "Quote",
	KeySemicolon:    "Semicolon",
	KeyBackslash:    "Backslash",
	KeyComma:        "Comma",
	KeySlash:        "Slash",
	KeyPeriod:       "Period",
	KeyGrave:        "Grave",
	KeyISOSection:   "ISOSection",

	// Editing
	KeyReturn: "Return",
	KeyTab:    "Tab",
	KeySpace:  "Space",
	KeyDelete: "Delete",
	KeyEscape: "Escape",

	// Layout insensitive
	KeyForwardDelete: "ForwardDelete",
	KeyLeftArrow:     "Left",
	KeyRightArrow:    "Right",
	KeyDownArrow:     "Down",
	KeyUpArrow:       "Up",
}

var nameToKey = func() map[string]Code {
	m := make(map[string]Code, len(KeyName))
	for code, name := range KeyName {
		m[strings.ToLower(name)] = code
	}
	return m
}()

// Name returns the key-cap name for c, or its hex value if unnamed.
func (c Code) Name() string {
	if n, ok := KeyName[c]; ok {
		return n
	}
	return fmt.Sprintf("0x%02X", uint16(c))
}

// ParseCode accepts a decimal or 0x-prefixed keycode, or a key-cap name
// from KeyName (case-insensitive).
func ParseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty keycode")
	}
	if n, err := strconv.ParseUint(s, 0, 16); err == nil {
		return Code(n), nil
	}
	if c, ok := nameToKey[strings.ToLower(s)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown keycode %q", s)
}
