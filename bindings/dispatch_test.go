package bindings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/goshadertweak/inputs"
	"github.com/richinsley/goshadertweak/shader"
)

func TestKeyReleasedIncrementDecrement(t *testing.T) {
	table := Table{}
	reconcileSource(t, table, "uniform int count = 5; // diff 2\nuniform float gain = 0.5; // diff 0.25\n")
	d := NewDispatcher(table)

	name, err := d.KeyReleased(inputs.KeyQ)
	require.NoError(t, err)
	assert.Equal(t, "count", name)
	assert.Equal(t, Int(7), table["count"].Default)

	_, err = d.KeyReleased(inputs.KeyA)
	require.NoError(t, err)
	_, err = d.KeyReleased(inputs.KeyA)
	require.NoError(t, err)
	assert.Equal(t, Int(3), table["count"].Default)

	name, err = d.KeyReleased(inputs.KeyW)
	require.NoError(t, err)
	assert.Equal(t, "gain", name)
	assert.Equal(t, Float(0.75), table["gain"].Default)

	_, err = d.KeyReleased(inputs.KeyS)
	require.NoError(t, err)
	assert.Equal(t, Float(0.5), table["gain"].Default)
}

func TestKeyReleasedToggle(t *testing.T) {
	table := Table{}
	reconcileSource(t, table, "uniform bool glow;\n")
	d := NewDispatcher(table)

	_, err := d.KeyReleased(inputs.KeyQ)
	require.NoError(t, err)
	assert.Equal(t, Bool(true), table["glow"].Default)

	_, err = d.KeyReleased(inputs.KeyQ)
	require.NoError(t, err)
	assert.Equal(t, Bool(false), table["glow"].Default)
}

func TestKeyReleasedShuffleKeepsPeriod(t *testing.T) {
	table := Table{}
	reconcileSource(t, table, "uniform int cells[12]; // permutation 4 seed 3\n")
	d := NewDispatcher(table)

	for range 5 {
		name, err := d.KeyReleased(inputs.KeyQ)
		require.NoError(t, err)
		assert.Equal(t, "cells", name)

		v := table["cells"].Default.(IntArray)
		require.Len(t, v, 12)
		for i := 0; i+4 < len(v); i++ {
			assert.Equal(t, v[i], v[i+4], "index %d", i)
		}
		assert.ElementsMatch(t, []int64{0, 1, 2, 3}, []int64(v[:4]))
	}
}

func TestKeyReleasedUnbound(t *testing.T) {
	table := Table{}
	reconcileSource(t, table, "uniform int count = 5;\n")
	before := table.Clone()

	name, err := NewDispatcher(table).KeyReleased(inputs.KeyM)
	assert.ErrorIs(t, err, ErrUnbound)
	assert.NotErrorIs(t, err, ErrNoAction)
	assert.Empty(t, name)
	assert.Equal(t, before, table)
}

func TestKeyReleasedInconsistentBinding(t *testing.T) {
	table := Table{
		"glow": {
			Type:     shader.KindBool,
			Default:  Bool(false),
			Controls: map[Role]inputs.Key{RoleIncrement: inputs.KeyQ},
		},
		"count": {
			Type:     shader.KindInt,
			Default:  Int(1),
			Step:     Int(1),
			Controls: map[Role]inputs.Key{"spin": inputs.KeyW},
		},
		"speed": {
			Type:     shader.KindFloat,
			Default:  Float(1),
			Step:     Int(1),
			Controls: map[Role]inputs.Key{RoleIncrement: inputs.KeyE},
		},
		"tint": {
			Type:     shader.KindVec3,
			Default:  Vector{0, 0, 0},
			Controls: map[Role]inputs.Key{RoleShuffle: inputs.KeyR},
		},
	}
	before := table.Clone()
	d := NewDispatcher(table)

	for _, k := range []inputs.Key{inputs.KeyQ, inputs.KeyW, inputs.KeyE, inputs.KeyR} {
		_, err := d.KeyReleased(k)
		assert.ErrorIs(t, err, ErrNoAction, k.String())
		assert.NotErrorIs(t, err, ErrUnbound, k.String())
	}
	assert.Equal(t, before, table)
}

func TestDragPansByZoom(t *testing.T) {
	table := Table{
		PanX: {Type: shader.KindFloat, Default: Float(0), Step: Float(1)},
		PanY: {Type: shader.KindFloat, Default: Float(0), Step: Float(1)},
		Zoom: {Type: shader.KindFloat, Default: Float(2), Step: Float(0.5)},
	}
	d := NewDispatcher(table)

	assert.True(t, d.Drag(1, -2))
	assert.Equal(t, Float(-2), table[PanX].Default)
	assert.Equal(t, Float(4), table[PanY].Default)

	assert.True(t, d.Scroll(2))
	assert.Equal(t, Float(1), table[Zoom].Default)

	assert.True(t, d.Drag(0.5, 0))
	assert.Equal(t, Float(-2.5), table[PanX].Default)
}

func TestDragRoundsIntegers(t *testing.T) {
	table := Table{
		PanX: {Type: shader.KindInt, Default: Int(0), Step: Int(1)},
	}
	d := NewDispatcher(table)

	assert.True(t, d.Drag(1.4, 3))
	assert.Equal(t, Int(-1), table[PanX].Default)

	assert.True(t, d.Drag(-2.6, 0))
	assert.Equal(t, Int(2), table[PanX].Default)
}

func TestDragAndScrollWithoutTargets(t *testing.T) {
	table := Table{
		"glow": {Type: shader.KindBool, Default: Bool(false)},
		PanX:   {Type: shader.KindBool, Default: Bool(true)},
	}
	d := NewDispatcher(table)

	assert.False(t, d.Drag(1, 1))
	assert.False(t, d.Scroll(1))
	assert.Equal(t, Bool(true), table[PanX].Default)
}
