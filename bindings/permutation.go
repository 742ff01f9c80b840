package bindings

import (
	"fmt"
	"math/rand/v2"
)

// pcgStream is the fixed PCG increment; together with the seed it fully
// determines the shuffle.
const pcgStream = 0x9E3779B97F4A7C15

// Reshuffle permutes the first Loop elements of an array descriptor and
// tiles that block over the whole array, so Default[i] == Default[i+Loop].
// Loop falls back to the array length when unset or too large and Seed
// falls back to 1. The same seed and block always give the same result.
func Reshuffle(d *Descriptor) error {
	seed := int64(1)
	if d.Seed != nil {
		seed = *d.Seed
	}
	switch v := d.Default.(type) {
	case IntArray:
		d.Default = IntArray(permute(v, d.Loop, seed))
	case FloatArray:
		d.Default = FloatArray(permute(v, d.Loop, seed))
	default:
		return fmt.Errorf("cannot shuffle a %s uniform", d.Type)
	}
	return nil
}

// permute shuffles values[:period] with Fisher-Yates driven by PCG-DXSM
// and returns a new slice of the same length with the block repeated.
func permute[T any](values []T, period int, seed int64) []T {
	n := len(values)
	if n == 0 {
		return values
	}
	if period <= 0 || period > n {
		period = n
	}
	block := make([]T, period)
	copy(block, values[:period])

	src := rand.NewPCG(uint64(seed), pcgStream)
	for i := period - 1; i > 0; i-- {
		j := int(src.Uint64() % uint64(i+1))
		block[i], block[j] = block[j], block[i]
	}

	out := make([]T, n)
	for i := range out {
		out[i] = block[i%period]
	}
	return out
}
