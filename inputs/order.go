package inputs

import "slices"

// priorityKeys walk the top two letter rows column by column so that an
// increment/decrement pair lands on vertically adjacent keys (q/a, w/s, ...),
// then the bottom row, then the digit row.
var priorityKeys = []Key{
	KeyQ, KeyA, KeyW, KeyS, KeyE, KeyD, KeyR, KeyF, KeyT, KeyG,
	KeyY, KeyH, KeyU, KeyJ, KeyI, KeyK, KeyO, KeyL, KeyP,
	KeyZ, KeyX, KeyC, KeyV, KeyB, KeyN, KeyM,
	Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9, Key0,
}

// preferenceOrder is built once so repeated allocations see the same
// sequence within a process.
var preferenceOrder = buildPreferenceOrder()

func buildPreferenceOrder() []Key {
	order := slices.Clone(priorityKeys)
	seen := make(map[Key]bool, len(order))
	for _, k := range order {
		seen[k] = true
	}
	for _, k := range allKeys() {
		if seen[k] || !Allocatable(k) {
			continue
		}
		seen[k] = true
		order = append(order, k)
	}
	return order
}

// allKeys lists every symbol in the universe in ascending key-code order.
func allKeys() []Key {
	var keys []Key
	for k := KeySpace; k <= KeyGraveAccent; k++ {
		if k.known() {
			keys = append(keys, k)
		}
	}
	for k := KeyEscape; k <= KeyMenu; k++ {
		if k.known() {
			keys = append(keys, k)
		}
	}
	return keys
}

func (k Key) known() bool {
	switch {
	case k >= KeyA && k <= KeyZ, k >= Key0 && k <= Key9:
		return true
	case k >= KeyF1 && k <= KeyF12, k >= KeyKP0 && k <= KeyKP9:
		return true
	}
	_, ok := namedKeys[k]
	return ok
}

// Allocatable reports whether k may be handed out to a parameter. Reserved
// viewer keys, modifiers and lock keys are excluded.
func Allocatable(k Key) bool {
	if !k.known() {
		return false
	}
	switch k {
	case KeyQuit, KeyHelp, KeySnapshot,
		KeyCapsLock, KeyScrollLock, KeyNumLock, KeyPrintScreen,
		KeyLeftShift, KeyLeftControl, KeyLeftAlt, KeyLeftSuper,
		KeyRightShift, KeyRightControl, KeyRightAlt, KeyRightSuper, KeyMenu:
		return false
	}
	return true
}

// PreferenceOrder returns the allocation order: the priority keys followed
// by every other allocatable key in ascending key-code order. The returned
// slice is a copy.
func PreferenceOrder() []Key {
	return slices.Clone(preferenceOrder)
}
