package shader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanScalarWithDefaultAndStep(t *testing.T) {
	decls, found := Scan("uniform int count = 5; // diff 2\n")
	assert.True(t, found)
	require.Len(t, decls, 1)
	assert.Equal(t, Declaration{Name: "count", Kind: KindInt, Default: "5", Step: "2", Line: 1}, decls[0])
}

func TestScanScalarVariants(t *testing.T) {
	src := `#version 410 core
uniform float speed;
uniform highp float gain = -1.5e2f;   //   diff .25
uniform float ratio=0.5;
uniform float angle = 2.0 * PI;
uniform int
    spread
    = 3 ;
`
	decls, _ := Scan(src)
	require.Len(t, decls, 4)

	assert.Equal(t, "speed", decls[0].Name)
	assert.Equal(t, KindFloat, decls[0].Kind)
	assert.Empty(t, decls[0].Default)
	assert.Empty(t, decls[0].Step)
	assert.Equal(t, 2, decls[0].Line)

	assert.Equal(t, "gain", decls[1].Name)
	assert.Equal(t, "-1.5e2", decls[1].Default)
	assert.Equal(t, ".25", decls[1].Step)

	assert.Equal(t, "ratio", decls[2].Name)
	assert.Equal(t, "0.5", decls[2].Default)

	// angle has a non-literal initializer and is skipped
	assert.Equal(t, "spread", decls[3].Name)
	assert.Equal(t, KindInt, decls[3].Kind)
	assert.Equal(t, "3", decls[3].Default)
	assert.Equal(t, 6, decls[3].Line)
}

func TestScanStepMustBeOnSameLine(t *testing.T) {
	decls, _ := Scan("uniform float a;\n// diff 3\n")
	require.Len(t, decls, 1)
	assert.Empty(t, decls[0].Step)
}

func TestScanVectorsIgnoreDefaults(t *testing.T) {
	decls, _ := Scan("uniform vec3 tint = vec3(1.0, 0.5, 0.0);\nuniform vec2 offset;\n")
	require.Len(t, decls, 2)
	assert.Equal(t, KindVec3, decls[0].Kind)
	assert.Empty(t, decls[0].Default)
	assert.Equal(t, KindVec2, decls[1].Kind)
}

func TestScanBooleans(t *testing.T) {
	decls, _ := Scan("uniform bool invert;\nuniform bool glow = true;\nuniform bool fog = false;\n")
	require.Len(t, decls, 3)
	assert.Equal(t, Declaration{Name: "invert", Kind: KindBool, Line: 1}, decls[0])
	assert.Equal(t, "true", decls[1].Default)
	assert.Equal(t, "false", decls[2].Default)
}

func TestScanArrays(t *testing.T) {
	src := `uniform float arr[10]; // permutation 5 seed 50
uniform int steps[8];   // linear 4
uniform int plain[3];
uniform int both[6]; // permutation 3 // linear 2
uniform int named[4]; // permutation 2 seed banana
uniform int empty[0];
uniform int spaced [4];
`
	decls, _ := Scan(src)
	require.Len(t, decls, 6)

	arr := decls[0]
	assert.Equal(t, "arr", arr.Name)
	assert.Equal(t, KindFloatArray, arr.Kind)
	assert.Equal(t, 10, arr.Size)
	assert.Equal(t, GeneratePermutation, arr.Generator.Mode)
	assert.Equal(t, 5, arr.Generator.Period)
	require.NotNil(t, arr.Generator.Seed)
	assert.Equal(t, int64(50), *arr.Generator.Seed)

	assert.Equal(t, Generator{Mode: GenerateLinear, Period: 4}, decls[1].Generator)
	assert.Equal(t, KindIntArray, decls[1].Kind)

	assert.Equal(t, Generator{}, decls[2].Generator)
	assert.Equal(t, 3, decls[2].Size)

	// linear takes precedence when both annotations are present
	assert.Equal(t, Generator{Mode: GenerateLinear, Period: 2}, decls[3].Generator)

	require.NotNil(t, decls[4].Generator.Seed)
	assert.Equal(t, parseSeed("banana"), *decls[4].Generator.Seed)

	// whitespace before the brackets is allowed
	assert.Equal(t, Declaration{Name: "spaced", Kind: KindIntArray, Size: 4, Line: 7}, decls[5])
}

func TestScanUnsupportedArrayKinds(t *testing.T) {
	decls, _ := Scan("uniform bool flags[4];\nuniform vec3 points[2];\n")
	require.Len(t, decls, 2)
	assert.Equal(t, KindBoolArray, decls[0].Kind)
	assert.Equal(t, KindVec3Array, decls[1].Kind)
}

func TestScanPassOrder(t *testing.T) {
	src := "uniform int list[2];\nuniform bool on;\nuniform float f;\n"
	decls, _ := Scan(src)
	require.Len(t, decls, 3)
	assert.Equal(t, []string{"f", "on", "list"}, []string{decls[0].Name, decls[1].Name, decls[2].Name})
}

func TestScanSkipsComments(t *testing.T) {
	src := `// uniform float old;
/* uniform int hidden = 2;
   uniform bool gone; */
uniform float kept; // uniform int trailing;
`
	decls, found := Scan(src)
	assert.True(t, found)
	require.Len(t, decls, 1)
	assert.Equal(t, "kept", decls[0].Name)
}

func TestScanFoundWithoutTweakables(t *testing.T) {
	decls, found := Scan("uniform sampler2D tex;\nuniform mat4 mvp;\n")
	assert.Empty(t, decls)
	assert.True(t, found)

	decls, found = Scan("void main() {}\n")
	assert.Empty(t, decls)
	assert.False(t, found)
}

func TestParseSeedIsStable(t *testing.T) {
	assert.Equal(t, int64(-7), parseSeed("-7"))
	assert.Equal(t, parseSeed("abc"), parseSeed("abc"))
	assert.NotEqual(t, parseSeed("abc"), parseSeed("abd"))
}

func TestTweakableDropsBuiltins(t *testing.T) {
	decls, _ := Scan("uniform float iTime;\nuniform vec3 iResolution;\nuniform float zoom;\n")
	kept := Tweakable(decls)
	require.Len(t, kept, 1)
	assert.Equal(t, "zoom", kept[0].Name)
	assert.Len(t, decls, 3)
}

func TestKindText(t *testing.T) {
	for k := range kindNames {
		text, err := k.MarshalText()
		require.NoError(t, err)
		var back Kind
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, k, back)
	}
	_, err := KindInvalid.MarshalText()
	assert.Error(t, err)
	assert.True(t, KindVec4Array.IsArray())
	assert.False(t, KindVec4.IsArray())
	assert.Equal(t, 3, KindVec3.Arity())
}
