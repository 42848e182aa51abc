package headlines

import "math/rand/v2"

// Shuffle permutes hs in place with a Fisher-Yates shuffle. If r is nil the
// global source is used.
func Shuffle(hs []*Headline, r *rand.Rand) {
	swap := func(i, j int) { hs[i], hs[j] = hs[j], hs[i] }
	if r == nil {
		rand.Shuffle(len(hs), swap)
		return
	}
	r.Shuffle(len(hs), swap)
}
