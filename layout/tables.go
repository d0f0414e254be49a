package layout

// Rows are indexed by macOS virtual keycode (ANSI positions).
// Keycode 10 (ISO section) and 52 carry no glyph.

// UnicodeHex is the table used while the Unicode Hex Input source is active.
var UnicodeHex = MustTable("Unicode Hex Input", []Entry{
	{"a", "A"}, {"s", "S"}, {"d", "D"}, {"f", "F"}, {"h", "H"}, {"g", "G"},
	{"z", "Z"}, {"x", "X"}, {"c", "C"}, {"v", "V"}, {"", ""}, {"b", "B"},
	{"q", "Q"}, {"w", "W"}, {"e", "E"}, {"r", "R"}, {"y", "Y"}, {"t", "T"},
	{"1", "!"}, {"2", "@"}, {"3", "#"}, {"4", "$"}, {"6", "^"}, {"5", "%"},
	{"=", "+"}, {"9", "("}, {"7", "&"}, {"-", "_"}, {"8", "*"}, {"0", ")"},
	{"]", "}"}, {"o", "O"}, {"u", "U"}, {"[", "{"}, {"i", "I"}, {"p", "P"},
	{"⏎", "⏎"}, {"l", "L"}, {"j", "J"}, {"'", "\""}, {"k", "K"}, {";", ":"},
	{"\\", "|"}, {",", "<"}, {"/", "?"}, {"n", "N"}, {"m", "M"}, {".", ">"},
	{"⇥", "⇤"}, {" ", " "}, {"`", "~"}, {"⌫", "⌫"}, {"", ""}, {"⎋", "⎋"},
})

// Colemak is the table used for every other input source.
var Colemak = MustTable("Colemak", []Entry{
	{"a", "A"}, {"r", "R"}, {"s", "S"}, {"t", "T"}, {"h", "H"}, {"d", "D"},
	{"z", "Z"}, {"x", "X"}, {"c", "C"}, {"v", "V"}, {"", ""}, {"b", "B"},
	{"q", "Q"}, {"w", "W"}, {"f", "F"}, {"p", "P"}, {"j", "J"}, {"g", "G"},
	{"1", "!"}, {"2", "@"}, {"3", "#"}, {"4", "$"}, {"6", "^"}, {"5", "%"},
	{"=", "+"}, {"9", "("}, {"7", "&"}, {"-", "_"}, {"8", "*"}, {"0", ")"},
	{"]", "}"}, {"y", "Y"}, {"l", "L"}, {"[", "{"}, {"u", "U"}, {";", ":"},
	{"⏎", "⏎"}, {"i", "I"}, {"n", "N"}, {"'", "\""}, {"e", "E"}, {"o", "O"},
	{"\\", "|"}, {",", "<"}, {"/", "?"}, {"k", "K"}, {"m", "M"}, {".", ">"},
	{"⇥", "⇤"}, {" ", " "}, {"`", "~"}, {"⌫", "⌫"}, {"", ""}, {"⎋", "⎋"},
})
