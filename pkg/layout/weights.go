package layout

import "math"

// weightStream is the deterministic pseudo-random source for link opacity.
// It is the classic sine-fraction trick: w = frac(sin(counter) * 10000)
// with the counter starting at the seed and advancing by one per value.
// It is reproducible and re-rollable, not a vetted PRNG, and that is all
// the visual variation needs. The exact formula and consumption order are
// load-bearing: golden opacity sequences depend on them.
type weightStream struct {
	counter float64
}

// maxExactCounter bounds the counter to float64's exact integer range.
// Above 2^53 the per-link increment would stop changing the counter and
// every weight in the stream would collapse to one value.
const maxExactCounter = 1 << 53

func newWeightStream(seed int64) *weightStream {
	return &weightStream{counter: float64(seed % maxExactCounter)}
}

// next returns the next value in [0, 1) and advances the counter.
func (w *weightStream) next() float64 {
	v := math.Sin(w.counter) * 10000
	w.counter++
	return v - math.Floor(v)
}
