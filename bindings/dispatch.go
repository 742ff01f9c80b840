package bindings

import (
	"errors"
	"fmt"
	"math"

	"github.com/richinsley/goshadertweak/inputs"
)

var (
	// ErrUnbound means the key is not claimed by any parameter.
	ErrUnbound = errors.New("key is not bound")
	// ErrNoAction means the key is claimed but its role cannot be applied
	// to the owning parameter. It points at a bookkeeping bug or a
	// hand-edited sidecar.
	ErrNoAction = errors.New("key is used but not bound to an action")
)

// Names of the parameters driven by mouse drag and scroll.
const (
	PanX = "x"
	PanY = "y"
	Zoom = "zoom"
)

// Dispatcher applies input events to a table.
type Dispatcher struct {
	table Table
}

func NewDispatcher(t Table) *Dispatcher {
	return &Dispatcher{table: t}
}

// KeyReleased applies the action bound to k and returns the name of the
// parameter it changed. The table is untouched when an error is returned.
func (d *Dispatcher) KeyReleased(k inputs.Key) (string, error) {
	name, desc, ok := d.table.Owner(k)
	if !ok {
		return "", fmt.Errorf("%s: %w", k, ErrUnbound)
	}
	role, _ := desc.RoleOf(k)

	switch role {
	case RoleToggle:
		if v, ok := desc.Default.(Bool); ok {
			desc.Default = !v
			return name, nil
		}
	case RoleIncrement:
		if next, ok := add(desc.Default, desc.Step, 1); ok {
			desc.Default = next
			return name, nil
		}
	case RoleDecrement:
		if next, ok := add(desc.Default, desc.Step, -1); ok {
			desc.Default = next
			return name, nil
		}
	case RoleShuffle:
		if err := Reshuffle(desc); err == nil {
			return name, nil
		}
	}
	return name, fmt.Errorf("%s (%s of %s): %w", k, role, name, ErrNoAction)
}

// add returns v + sign*step for matching scalar types.
func add(v, step Value, sign int64) (Value, bool) {
	switch v := v.(type) {
	case Int:
		if s, ok := step.(Int); ok {
			return v + Int(sign)*s, true
		}
	case Float:
		if s, ok := step.(Float); ok {
			return v + Float(sign)*s, true
		}
	}
	return nil, false
}

// Drag pans the x and y parameters, if present, by the pointer delta
// scaled by the current zoom. It reports whether anything changed.
func (d *Dispatcher) Drag(dx, dy float64) bool {
	scale := 1.0
	if z, ok := d.scalar(Zoom); ok {
		scale = z
	}
	movedX := d.offset(PanX, -dx*scale)
	movedY := d.offset(PanY, -dy*scale)
	return movedX || movedY
}

// Scroll zooms by amount steps of the zoom parameter's step.
func (d *Dispatcher) Scroll(amount float64) bool {
	desc, ok := d.table[Zoom]
	if !ok {
		return false
	}
	step := 1.0
	switch s := desc.Step.(type) {
	case Int:
		step = float64(s)
	case Float:
		step = float64(s)
	}
	return d.offset(Zoom, -amount*step)
}

func (d *Dispatcher) scalar(name string) (float64, bool) {
	desc, ok := d.table[name]
	if !ok {
		return 0, false
	}
	switch v := desc.Default.(type) {
	case Int:
		return float64(v), true
	case Float:
		return float64(v), true
	}
	return 0, false
}

// offset adds delta to a numeric parameter; Int parameters round to the
// nearest integer.
func (d *Dispatcher) offset(name string, delta float64) bool {
	desc, ok := d.table[name]
	if !ok {
		return false
	}
	switch v := desc.Default.(type) {
	case Int:
		desc.Default = v + Int(math.Round(delta))
	case Float:
		desc.Default = v + Float(delta)
	default:
		return false
	}
	return true
}
