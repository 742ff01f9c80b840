package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/richinsley/goshadertweak/bindings"
	"github.com/richinsley/goshadertweak/inputs"
)

// Console prints help and status lines to a terminal.
type Console struct {
	out *termenv.Output
}

// New writes to w. The color profile is detected from w unless overridden
// with termenv.WithProfile.
func New(w io.Writer, opts ...termenv.OutputOption) *Console {
	return &Console{out: termenv.NewOutput(w, opts...)}
}

// Help prints the key bindings of t followed by the viewer's own keys.
func (c *Console) Help(t bindings.Table) {
	fmt.Fprintln(c.out, c.out.String("Controls").Bold())
	lines := bindings.HelpLines(t)
	if len(lines) == 0 {
		fmt.Fprintln(c.out, c.out.String("  no tweakable uniforms").Faint())
	}
	for _, line := range lines {
		keys, name, _ := strings.Cut(line, ": ")
		c.entry(keys, name)
	}
	c.entry(inputs.KeyHelp.String(), "help")
	c.entry(inputs.KeySnapshot.String(), "save snapshot")
	c.entry(inputs.KeyQuit.String(), "quit")
	fmt.Fprintln(c.out, c.out.String("  drag pans x/y, scroll zooms").Faint())
}

func (c *Console) entry(keys, what string) {
	fmt.Fprintf(c.out, "  %s: %s\n", c.out.String(keys).Foreground(c.out.Color("6")), what)
}

// Status prints the current value of one parameter.
func (c *Console) Status(name string, d *bindings.Descriptor) {
	line := bindings.StatusLine(name, d)
	label, value, _ := strings.Cut(line, ": ")
	fmt.Fprintf(c.out, "%s: %s\n", c.out.String(label).Bold(), value)
}

// Values prints the current value of every parameter in t.
func (c *Console) Values(t bindings.Table) {
	if len(t) == 0 {
		return
	}
	fmt.Fprintln(c.out, c.out.String("Values").Bold())
	for _, line := range bindings.StatusLines(t) {
		label, value, _ := strings.Cut(line, ": ")
		fmt.Fprintf(c.out, "  %s: %s\n", c.out.String(label).Bold(), value)
	}
}

// Warn prints a highlighted one-line message.
func (c *Console) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.out, c.out.String(msg).Foreground(c.out.Color("3")))
}
