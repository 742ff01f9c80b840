package bindings

import (
	"fmt"
	"strings"
)

// HelpLine formats the keys bound to d as "q/w: name", listing roles in
// increment, decrement, toggle, shuffle order. ok is false when d has no
// keys.
func HelpLine(name string, d *Descriptor) (line string, ok bool) {
	var keys []string
	for _, role := range roleOrder {
		if k, bound := d.Controls[role]; bound {
			keys = append(keys, k.String())
		}
	}
	if len(keys) == 0 {
		return "", false
	}
	return fmt.Sprintf("%s: %s", strings.Join(keys, "/"), name), true
}

// HelpLines returns one help line per bound parameter, sorted by name.
func HelpLines(t Table) []string {
	var lines []string
	for _, name := range t.Names() {
		if line, ok := HelpLine(name, t[name]); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// StatusLine formats the current value of a parameter. Long arrays are
// abbreviated to their first three and last elements.
func StatusLine(name string, d *Descriptor) string {
	if d.Default == nil {
		return name + ": <unset>"
	}
	return name + ": " + d.Default.String()
}

// StatusLines returns one status line per parameter, sorted by name.
func StatusLines(t Table) []string {
	lines := make([]string, 0, len(t))
	for _, name := range t.Names() {
		lines = append(lines, StatusLine(name, t[name]))
	}
	return lines
}
