package bindings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/richinsley/goshadertweak/inputs"
	"github.com/richinsley/goshadertweak/shader"
)

func TestHelpLines(t *testing.T) {
	table := Table{}
	reconcileSource(t, table, `uniform int count = 5; // diff 2
uniform vec2 offset;
uniform bool glow;
uniform float arr[10]; // permutation 5 seed 50
`)
	assert.Equal(t, []string{
		"r: arr",
		"q/w: count",
		"e: glow",
	}, HelpLines(table))
}

func TestHelpLineRoleOrder(t *testing.T) {
	d := &Descriptor{
		Type:    shader.KindInt,
		Default: Int(0),
		Controls: map[Role]inputs.Key{
			RoleDecrement: inputs.KeyDown,
			RoleIncrement: inputs.KeyUp,
		},
	}
	line, ok := HelpLine("level", d)
	assert.True(t, ok)
	assert.Equal(t, "up/down: level", line)

	_, ok = HelpLine("tint", &Descriptor{Type: shader.KindVec3, Default: Vector{0, 0, 0}})
	assert.False(t, ok)
}

func TestStatusLines(t *testing.T) {
	table := Table{
		"count": {Type: shader.KindInt, Default: Int(7)},
		"gain":  {Type: shader.KindFloat, Default: Float(0.25)},
		"glow":  {Type: shader.KindBool, Default: Bool(true)},
		"tint":  {Type: shader.KindVec3, Default: Vector{1, 0.5, 0}},
		"short": {Type: shader.KindIntArray, Default: IntArray{3, 1, 2}},
		"long":  {Type: shader.KindFloatArray, Default: FloatArray{4, 0, 2, 1, 3, 9}},
	}
	assert.Equal(t, []string{
		"count: 7",
		"gain: 0.25",
		"glow: true",
		"long: [4, 0, 2, ..., 9]",
		"short: [3, 1, 2]",
		"tint: (1, 0.5, 0)",
	}, StatusLines(table))
}
