package shader

import (
	"hash/fnv"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// GeneratorMode selects how an array uniform's initial contents are built.
type GeneratorMode int

const (
	GenerateNone GeneratorMode = iota
	// GenerateLinear fills element i with i mod Period.
	GenerateLinear
	// GeneratePermutation tiles a seeded shuffle of the first Period indices.
	GeneratePermutation
)

// Generator is the array annotation of a declaration. Linear and
// permutation are exclusive; when a line carries both, linear wins.
type Generator struct {
	Mode   GeneratorMode
	Period int
	// Seed is only meaningful for GeneratePermutation; nil means unseeded.
	Seed *int64
}

// Declaration is one tweakable uniform found in shader source.
type Declaration struct {
	Name string
	Kind Kind
	// Size is the element count for array kinds and 0 otherwise.
	Size int
	// Default is the literal after '=' with any GLSL f/u suffix removed.
	// Empty when the declaration has no initializer.
	Default string
	// Step is the value of a trailing "// diff N" comment.
	Step      string
	Generator Generator
	// Line is the 1-based line of the uniform keyword.
	Line int
}

const (
	precision  = `(?:(?:lowp|mediump|highp)\s+)?`
	identifier = `([A-Za-z_]\w*)`
	number     = `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?[fFuU]?`
)

var (
	// scalarRegex matches `uniform float name [= lit]; [// diff N]`
	scalarRegex = regexp.MustCompile(`\buniform\s+` + precision + `(int|float|vec[234])\s+` + identifier +
		`\s*(?:=\s*([^;]*?)\s*)?;(?:[ \t]*//[ \t]*diff[ \t]+(` + number + `))?`)

	// boolRegex matches `uniform bool name [= token];`
	boolRegex = regexp.MustCompile(`\buniform\s+` + precision + `bool\s+` + identifier +
		`\s*(?:=\s*([^;\s]+)\s*)?;`)

	// arrayRegex matches `uniform int name[N]; [// permutation P [seed S]] [// linear P]`
	arrayRegex = regexp.MustCompile(`\buniform\s+` + precision + `(int|float|bool|vec[234])\s+` + identifier +
		`\s*\[\s*(\d+)\s*\]\s*;` +
		`(?:[ \t]*//[ \t]*permutation[ \t]+(\d+)(?:[ \t]+seed[ \t]+([^\s/]+))?)?` +
		`(?:[ \t]*//[ \t]*linear[ \t]+(\d+))?`)

	// anyUniformRegex matches any uniform declaration, tweakable or not.
	anyUniformRegex = regexp.MustCompile(`\buniform\s+\w+`)

	numberRegex       = regexp.MustCompile(`^` + number + `$`)
	blockCommentRegex = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// Scan extracts tweakable uniform declarations from GLSL source. Scalar,
// boolean and array declarations are found by separate passes whose results
// are concatenated in that order. Text that looks like a declaration but
// does not fit a pattern is skipped without error. found reports whether the
// source declares any uniform at all, tweakable or not.
func Scan(src string) (decls []Declaration, found bool) {
	comments := commentSpans(src)

	for _, m := range anyUniformRegex.FindAllStringIndex(src, -1) {
		if !comments.contains(src, m[0]) {
			found = true
			break
		}
	}

	decls = append(decls, scanScalars(src, comments)...)
	decls = append(decls, scanBools(src, comments)...)
	decls = append(decls, scanArrays(src, comments)...)
	return decls, found
}

func scanScalars(src string, comments spans) []Declaration {
	var out []Declaration
	for _, m := range scalarRegex.FindAllStringSubmatchIndex(src, -1) {
		if comments.contains(src, m[0]) {
			continue
		}
		kind := scalarKind(group(src, m, 1))
		d := Declaration{
			Name: group(src, m, 2),
			Kind: kind,
			Line: lineOf(src, m[0]),
		}
		if kind == KindInt || kind == KindFloat {
			def := group(src, m, 3)
			if def != "" && !numberRegex.MatchString(def) {
				// initializers such as `2.0 * PI` are not literals
				continue
			}
			d.Default = trimLiteral(def)
			d.Step = trimLiteral(group(src, m, 4))
		}
		out = append(out, d)
	}
	return out
}

func scanBools(src string, comments spans) []Declaration {
	var out []Declaration
	for _, m := range boolRegex.FindAllStringSubmatchIndex(src, -1) {
		if comments.contains(src, m[0]) {
			continue
		}
		out = append(out, Declaration{
			Name:    group(src, m, 1),
			Kind:    KindBool,
			Default: group(src, m, 2),
			Line:    lineOf(src, m[0]),
		})
	}
	return out
}

func scanArrays(src string, comments spans) []Declaration {
	var out []Declaration
	for _, m := range arrayRegex.FindAllStringSubmatchIndex(src, -1) {
		if comments.contains(src, m[0]) {
			continue
		}
		size, err := strconv.Atoi(group(src, m, 3))
		if err != nil || size <= 0 {
			continue
		}
		d := Declaration{
			Name: group(src, m, 2),
			Kind: arrayKind(group(src, m, 1)),
			Size: size,
			Line: lineOf(src, m[0]),
		}
		if p := positive(group(src, m, 6)); p > 0 {
			d.Generator = Generator{Mode: GenerateLinear, Period: p}
		} else if p := positive(group(src, m, 4)); p > 0 {
			d.Generator = Generator{Mode: GeneratePermutation, Period: p}
			if tok := group(src, m, 5); tok != "" {
				seed := parseSeed(tok)
				d.Generator.Seed = &seed
			}
		}
		out = append(out, d)
	}
	return out
}

// group returns submatch i of an index match, or "" if it did not
// participate.
func group(src string, m []int, i int) string {
	if 2*i+1 >= len(m) || m[2*i] < 0 {
		return ""
	}
	return src[m[2*i]:m[2*i+1]]
}

func lineOf(src string, offset int) int {
	return strings.Count(src[:offset], "\n") + 1
}

func trimLiteral(lit string) string {
	return strings.TrimRight(strings.TrimSpace(lit), "fFuU")
}

func positive(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// parseSeed accepts any token after "seed". Integers are used as-is, other
// tokens are hashed with 64-bit FNV-1a.
func parseSeed(tok string) int64 {
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return n
	}
	h := fnv.New64a()
	h.Write([]byte(tok))
	return int64(h.Sum64())
}

// spans holds sorted [start, end) offsets of block comments.
type spans [][2]int

func commentSpans(src string) spans {
	var s spans
	for _, m := range blockCommentRegex.FindAllStringIndex(src, -1) {
		s = append(s, [2]int{m[0], m[1]})
	}
	return s
}

// contains reports whether offset sits inside a block comment or after a
// "//" on its own line.
func (s spans) contains(src string, offset int) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i][1] > offset })
	if i < len(s) && s[i][0] <= offset {
		return true
	}
	lineStart := strings.LastIndexByte(src[:offset], '\n') + 1
	return strings.Contains(src[lineStart:offset], "//")
}
