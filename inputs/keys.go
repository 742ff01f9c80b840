package inputs

import (
	"fmt"
	"strings"
)

// Key is a physical input symbol. The numeric values match GLFW key codes
// (printable keys use their ASCII value) so a glfw.Key converts directly,
// but this package does not import glfw.
type Key int

const KeyUnknown Key = -1

const (
	KeySpace        Key = 32
	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	Key0            Key = 48
	Key1            Key = 49
	Key2            Key = 50
	Key3            Key = 51
	Key4            Key = 52
	Key5            Key = 53
	Key6            Key = 54
	Key7            Key = 55
	Key8            Key = 56
	Key9            Key = 57
	KeySemicolon    Key = 59
	KeyEqual        Key = 61
	KeyA            Key = 65
	KeyB            Key = 66
	KeyC            Key = 67
	KeyD            Key = 68
	KeyE            Key = 69
	KeyF            Key = 70
	KeyG            Key = 71
	KeyH            Key = 72
	KeyI            Key = 73
	KeyJ            Key = 74
	KeyK            Key = 75
	KeyL            Key = 76
	KeyM            Key = 77
	KeyN            Key = 78
	KeyO            Key = 79
	KeyP            Key = 80
	KeyQ            Key = 81
	KeyR            Key = 82
	KeyS            Key = 83
	KeyT            Key = 84
	KeyU            Key = 85
	KeyV            Key = 86
	KeyW            Key = 87
	KeyX            Key = 88
	KeyY            Key = 89
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyGraveAccent  Key = 96

	KeyEscape      Key = 256
	KeyEnter       Key = 257
	KeyTab         Key = 258
	KeyBackspace   Key = 259
	KeyInsert      Key = 260
	KeyDelete      Key = 261
	KeyRight       Key = 262
	KeyLeft        Key = 263
	KeyDown        Key = 264
	KeyUp          Key = 265
	KeyPageUp      Key = 266
	KeyPageDown    Key = 267
	KeyHome        Key = 268
	KeyEnd         Key = 269
	KeyCapsLock    Key = 280
	KeyScrollLock  Key = 281
	KeyNumLock     Key = 282
	KeyPrintScreen Key = 283
	KeyPause       Key = 284
	KeyF1          Key = 290
	KeyF2          Key = 291
	KeyF12         Key = 301

	KeyKP0        Key = 320
	KeyKP9        Key = 329
	KeyKPDecimal  Key = 330
	KeyKPDivide   Key = 331
	KeyKPMultiply Key = 332
	KeyKPSubtract Key = 333
	KeyKPAdd      Key = 334
	KeyKPEnter    Key = 335
	KeyKPEqual    Key = 336

	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
	KeyMenu         Key = 348
)

// Reserved keys are handled by the viewer itself and never allocated.
const (
	KeyQuit     = KeyEscape
	KeyHelp     = KeyF1
	KeySnapshot = KeyF2
)

var namedKeys = map[Key]string{
	KeySpace:        "space",
	KeyApostrophe:   "apostrophe",
	KeyComma:        "comma",
	KeyMinus:        "minus",
	KeyPeriod:       "period",
	KeySlash:        "slash",
	KeySemicolon:    "semicolon",
	KeyEqual:        "equal",
	KeyLeftBracket:  "left_bracket",
	KeyBackslash:    "backslash",
	KeyRightBracket: "right_bracket",
	KeyGraveAccent:  "grave",
	KeyEscape:       "escape",
	KeyEnter:        "enter",
	KeyTab:          "tab",
	KeyBackspace:    "backspace",
	KeyInsert:       "insert",
	KeyDelete:       "delete",
	KeyRight:        "right",
	KeyLeft:         "left",
	KeyDown:         "down",
	KeyUp:           "up",
	KeyPageUp:       "page_up",
	KeyPageDown:     "page_down",
	KeyHome:         "home",
	KeyEnd:          "end",
	KeyCapsLock:     "caps_lock",
	KeyScrollLock:   "scroll_lock",
	KeyNumLock:      "num_lock",
	KeyPrintScreen:  "print_screen",
	KeyPause:        "pause",
	KeyKPDecimal:    "kp_decimal",
	KeyKPDivide:     "kp_divide",
	KeyKPMultiply:   "kp_multiply",
	KeyKPSubtract:   "kp_subtract",
	KeyKPAdd:        "kp_add",
	KeyKPEnter:      "kp_enter",
	KeyKPEqual:      "kp_equal",
	KeyLeftShift:    "left_shift",
	KeyLeftControl:  "left_control",
	KeyLeftAlt:      "left_alt",
	KeyLeftSuper:    "left_super",
	KeyRightShift:   "right_shift",
	KeyRightControl: "right_control",
	KeyRightAlt:     "right_alt",
	KeyRightSuper:   "right_super",
	KeyMenu:         "menu",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(namedKeys))
	for k, name := range namedKeys {
		m[name] = k
	}
	return m
}()

// String returns the lowercase symbol name used in sidecar files and help
// text: letters and digits as themselves, "f5", "kp_3", and named keys
// such as "left" or "page_up".
func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('a' + k - KeyA))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("f%d", k-KeyF1+1)
	case k >= KeyKP0 && k <= KeyKP9:
		return fmt.Sprintf("kp_%d", k-KeyKP0)
	}
	if name, ok := namedKeys[k]; ok {
		return name
	}
	return fmt.Sprintf("key_%d", int(k))
}

// ParseKey is the inverse of Key.String. It is case-insensitive.
func ParseKey(name string) (Key, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if len(s) == 1 {
		c := s[0]
		switch {
		case c >= 'a' && c <= 'z':
			return KeyA + Key(c-'a'), nil
		case c >= '0' && c <= '9':
			return Key0 + Key(c-'0'), nil
		}
	}
	if k, ok := keysByName[s]; ok {
		return k, nil
	}
	var n int
	if _, err := fmt.Sscanf(s, "kp_%d", &n); err == nil && n >= 0 && n <= 9 {
		return KeyKP0 + Key(n), nil
	}
	if _, err := fmt.Sscanf(s, "f%d", &n); err == nil && n >= 1 && n <= 12 {
		return KeyF1 + Key(n-1), nil
	}
	if _, err := fmt.Sscanf(s, "key_%d", &n); err == nil {
		return Key(n), nil
	}
	return KeyUnknown, fmt.Errorf("unknown key name %q", name)
}

// MarshalText lets keys appear by name in YAML and TOML documents.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
