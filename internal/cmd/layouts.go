package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Alia5/keyglyph/keys"
	"github.com/Alia5/keyglyph/layout"
)

type Layouts struct{}

// Run is called by Kong when the layouts command is executed.
func (l *Layouts) Run() error {
	return writeLayouts(os.Stdout)
}

// visible makes whitespace and unassigned glyphs readable in a table.
func visible(g string) string {
	switch g {
	case "":
		return "-"
	case " ":
		return "␣"
	default:
		return g
	}
}

func writeLayouts(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "CODE\tKEY\t%s\t\t%s\t\n", layout.UnicodeHex.Name(), layout.Colemak.Name())
	for code := uint16(0); code < layout.PrimaryKeyCount; code++ {
		u, _ := layout.UnicodeHex.Entry(code)
		c, _ := layout.Colemak.Entry(code)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			code, keys.Code(code).Name(),
			visible(u.Plain), visible(u.Shifted),
			visible(c.Plain), visible(c.Shifted))
	}
	for _, code := range []keys.Code{keys.KeyForwardDelete, keys.KeyLeftArrow, keys.KeyRightArrow, keys.KeyDownArrow, keys.KeyUpArrow} {
		g := keys.Translate(code, layout.Primary, false)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", code, code.Name(), g, g, g, g)
	}
	return tw.Flush()
}
