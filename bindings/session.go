package bindings

import (
	"log"

	"github.com/richinsley/goshadertweak/shader"
)

// Session ties a binding table to its sidecar file and the shader sources
// it was inferred from.
type Session struct {
	Path       string
	Table      Table
	Dispatcher *Dispatcher
}

// Open loads the sidecar at path, reconciles it against every source in
// order and writes the result back once.
func Open(path string, sources ...string) (*Session, error) {
	t, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		log.Printf("Warning: %s: %v", path, err)
	}
	s := &Session{
		Path:       path,
		Table:      t,
		Dispatcher: NewDispatcher(t),
	}
	if err := s.Reload(sources...); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-scans the sources after an edit and saves the merged table.
// Parameters whose kind is unchanged keep their current values and keys.
func (s *Session) Reload(sources ...string) error {
	declared := false
	for _, src := range sources {
		decls, found := shader.Scan(src)
		declared = declared || found
		if err := Reconcile(shader.Tweakable(decls), s.Table); err != nil {
			return err
		}
	}
	if !declared {
		log.Println("No uniform declarations found in shader source.")
	}
	return Save(s.Path, s.Table)
}
