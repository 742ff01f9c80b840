package bindings

import (
	"log"

	"github.com/richinsley/goshadertweak/shader"
)

// Reconcile merges freshly scanned declarations into t. New names get a
// fresh descriptor, names whose kind is unchanged are left alone so edited
// defaults, steps and keys survive, and names whose kind changed are
// replaced, which releases their old keys first. Declarations from several
// shader stages can be reconciled into the same table one after another.
//
// The first unsupported kind aborts reconciliation with ErrNotImplemented.
func Reconcile(decls []shader.Declaration, t Table) error {
	alloc := NewAllocator(t)
	for _, decl := range decls {
		if old, ok := t[decl.Name]; ok {
			if old.Type == decl.Kind {
				continue
			}
			log.Printf("Uniform %s changed from %s to %s, rebinding.", decl.Name, old.Type, decl.Kind)
			delete(t, decl.Name)
		}
		d, err := newDescriptor(decl, alloc)
		if err != nil {
			return err
		}
		t[decl.Name] = d
		log.Printf("Binding added for uniform %s (%s).", decl.Name, decl.Kind)
	}
	return nil
}
