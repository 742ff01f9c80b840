package bindings

import (
	"fmt"
	"slices"
	"strings"

	"github.com/richinsley/goshadertweak/inputs"
)

// Table maps uniform names to their descriptors. One table belongs to one
// shader program and is only touched from the render thread.
type Table map[string]*Descriptor

// Names returns the parameter names in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// UsedKeys is the used-symbols view: every claimed key mapped to the name
// of the parameter that claims it. It is derived from the table on each
// call, so deleting a descriptor releases its keys.
func (t Table) UsedKeys() map[inputs.Key]string {
	used := make(map[inputs.Key]string)
	for _, name := range t.Names() {
		for _, k := range t[name].Controls {
			if _, taken := used[k]; !taken {
				used[k] = name
			}
		}
	}
	return used
}

// Owner returns the parameter that claims k.
func (t Table) Owner(k inputs.Key) (string, *Descriptor, bool) {
	for _, name := range t.Names() {
		d := t[name]
		if _, ok := d.RoleOf(k); ok {
			return name, d, true
		}
	}
	return "", nil, false
}

// Validate reports keys claimed by more than one parameter. Hand-edited
// sidecar files are the only way to get there.
func (t Table) Validate() error {
	claims := make(map[inputs.Key][]string)
	for _, name := range t.Names() {
		seen := make(map[inputs.Key]bool)
		for _, k := range t[name].Controls {
			if seen[k] {
				continue
			}
			seen[k] = true
			claims[k] = append(claims[k], name)
		}
	}
	var problems []string
	for k, names := range claims {
		if len(names) > 1 {
			problems = append(problems, fmt.Sprintf("key %s claimed by %s", k, strings.Join(names, ", ")))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	slices.Sort(problems)
	return fmt.Errorf("conflicting bindings: %s", strings.Join(problems, "; "))
}

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	c := make(Table, len(t))
	for name, d := range t {
		c[name] = d.Clone()
	}
	return c
}
