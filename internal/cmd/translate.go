package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Alia5/keyglyph/keys"
	"github.com/Alia5/keyglyph/layout"
)

type Translate struct {
	Codes       []string `arg:"" help:"Keycodes as decimal, 0x-prefixed hex or key names (a, left, forwarddelete)"`
	Shift       bool     `help:"Hold shift"`
	Control     bool     `help:"Hold control"`
	Command     bool     `help:"Hold command"`
	InputSource string   `help:"Input-source id used for layout selection" default:"com.apple.keylayout.UnicodeHexInput" env:"KEYGLYPH_INPUT_SOURCE"`
}

// Run is called by Kong when the translate command is executed.
func (c *Translate) Run() error {
	return c.write(os.Stdout)
}

func (c *Translate) write(w io.Writer) error {
	mods := keys.Modifiers{Shift: c.Shift, Control: c.Control, Command: c.Command}
	l := layout.Select(c.InputSource)

	var b strings.Builder
	for _, arg := range c.Codes {
		code, err := keys.ParseCode(arg)
		if err != nil {
			return err
		}
		b.WriteString(keys.Render(code, l, mods))
	}
	_, err := fmt.Fprintln(w, b.String())
	return err
}
