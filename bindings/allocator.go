package bindings

import (
	"github.com/richinsley/goshadertweak/inputs"
)

// Allocator hands out unclaimed keys in inputs.PreferenceOrder.
type Allocator struct {
	table Table
	order []inputs.Key
}

func NewAllocator(t Table) *Allocator {
	return &Allocator{
		table: t,
		order: inputs.PreferenceOrder(),
	}
}

// Allocate claims the first free key for role on d and returns it. d may or
// may not already be in the table; keys it holds count as claimed either
// way. ok is false when every key is taken, in which case d is unchanged.
func (a *Allocator) Allocate(d *Descriptor, role Role) (k inputs.Key, ok bool) {
	used := a.table.UsedKeys()
	for _, held := range d.Controls {
		used[held] = ""
	}
	for _, k := range a.order {
		if _, taken := used[k]; taken {
			continue
		}
		if d.Controls == nil {
			d.Controls = make(map[Role]inputs.Key)
		}
		d.Controls[role] = k
		return k, true
	}
	return inputs.KeyUnknown, false
}
