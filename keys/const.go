// Package keys translates macOS virtual keycodes into printable tokens and
// tracks the modifier state that decorates them.
package keys

// Code is a macOS virtual keycode naming a physical key position.
type Code uint16

// Primary range, ANSI positions. Glyphs depend on the active layout.
const (
	KeyA            Code = 0x00
	KeyS            Code = 0x01
	KeyD            Code = 0x02
	KeyF            Code = 0x03
	KeyH            Code = 0x04
	KeyG            Code = 0x05
	KeyZ            Code = 0x06
	KeyX            Code = 0x07
	KeyC            Code = 0x08
	KeyV            Code = 0x09
	KeyISOSection   Code = 0x0A
	KeyB            Code = 0x0B
	KeyQ            Code = 0x0C
	KeyW            Code = 0x0D
	KeyE            Code = 0x0E
	KeyR            Code = 0x0F
	KeyY            Code = 0x10
	KeyT            Code = 0x11
	Key1            Code = 0x12
	Key2            Code = 0x13
	Key3            Code = 0x14
	Key4            Code = 0x15
	Key6            Code = 0x16
	Key5            Code = 0x17
	KeyEqual        Code = 0x18
	Key9            Code = 0x19
	Key7            Code = 0x1A
	KeyMinus        Code = 0x1B
	Key8            Code = 0x1C
	Key0            Code = 0x1D
	KeyRightBracket Code = 0x1E
	KeyO            Code = 0x1F
	KeyU            Code = 0x20
	KeyLeftBracket  Code = 0x21
	KeyI            Code = 0x22
	KeyP            Code = 0x23
	KeyReturn       Code = 0x24
	KeyL            Code = 0x25
	KeyJ            Code = 0x26
	KeyQuote        Code = 0x27
	KeyK            Code = 0x28
	KeySemicolon    Code = 0x29
	KeyBackslash    Code = 0x2A
	KeyComma        Code = 0x2B
	KeySlash        Code = 0x2C
	KeyN            Code = 0x2D
	KeyM            Code = 0x2E
	KeyPeriod       Code = 0x2F
	KeyTab          Code = 0x30
	KeySpace        Code = 0x31
	KeyGrave        Code = 0x32
	KeyDelete       Code = 0x33 // backspace
	KeyEscape       Code = 0x35
)

// Layout-insensitive keys outside the primary range.
const (
	KeyForwardDelete Code = 0x75 // 117
	KeyLeftArrow     Code = 0x7B // 123
	KeyRightArrow    Code = 0x7C // 124
	KeyDownArrow     Code = 0x7D // 125
	KeyUpArrow       Code = 0x7E // 126
)

// Flags is the CGEventFlags bitmask carried by a flags-changed event.
type Flags uint64

// Device-independent modifier bits.
const (
	FlagAlphaShift Flags = 0x00010000 // caps lock
	FlagShift      Flags = 0x00020000
	FlagControl    Flags = 0x00040000
	FlagAlternate  Flags = 0x00080000 // option
	FlagCommand    Flags = 0x00100000
)

// Modifier glyphs used as token prefixes.
const (
	GlyphCommand = "⌘"
	GlyphControl = "⌃"
)
