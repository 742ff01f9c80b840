package shader

import "fmt"

// Kind is the closed set of uniform shapes the scanner can report.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindBool
	KindVec2
	KindVec3
	KindVec4
	KindIntArray
	KindFloatArray
	// Array kinds below are recognised but have no initializer.
	KindBoolArray
	KindVec2Array
	KindVec3Array
	KindVec4Array
)

var kindNames = map[Kind]string{
	KindInt:        "int",
	KindFloat:      "float",
	KindBool:       "bool",
	KindVec2:       "vec2",
	KindVec3:       "vec3",
	KindVec4:       "vec4",
	KindIntArray:   "int[]",
	KindFloatArray: "float[]",
	KindBoolArray:  "bool[]",
	KindVec2Array:  "vec2[]",
	KindVec3Array:  "vec3[]",
	KindVec4Array:  "vec4[]",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts the names produced by Kind.String.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("unknown uniform kind %q", name)
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("cannot marshal invalid uniform kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// IsArray reports whether the kind holds a sized sequence.
func (k Kind) IsArray() bool {
	return k >= KindIntArray && k <= KindVec4Array
}

// Arity is the number of components of a vector kind, 0 otherwise.
func (k Kind) Arity() int {
	switch k {
	case KindVec2:
		return 2
	case KindVec3:
		return 3
	case KindVec4:
		return 4
	}
	return 0
}

// scalarKind maps a GLSL type token to its non-array kind.
func scalarKind(glslType string) Kind {
	switch glslType {
	case "int":
		return KindInt
	case "float":
		return KindFloat
	case "bool":
		return KindBool
	case "vec2":
		return KindVec2
	case "vec3":
		return KindVec3
	case "vec4":
		return KindVec4
	}
	return KindInvalid
}

// arrayKind maps a GLSL element type token to its array kind.
func arrayKind(glslType string) Kind {
	switch glslType {
	case "int":
		return KindIntArray
	case "float":
		return KindFloatArray
	case "bool":
		return KindBoolArray
	case "vec2":
		return KindVec2Array
	case "vec3":
		return KindVec3Array
	case "vec4":
		return KindVec4Array
	}
	return KindInvalid
}
