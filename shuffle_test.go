package headlines_test

import (
	"math/rand/v2"
	"testing"

	"github.com/fwojciec/headlines"
	"github.com/stretchr/testify/assert"
)

func TestShuffle(t *testing.T) {
	t.Parallel()

	t.Run("keeps every element", func(t *testing.T) {
		t.Parallel()

		hs := headlines.Fallback()
		orig := append([]*headlines.Headline(nil), hs...)

		headlines.Shuffle(hs, rand.New(rand.NewPCG(1, 2)))

		assert.ElementsMatch(t, orig, hs)
	})

	t.Run("is deterministic for a seeded source", func(t *testing.T) {
		t.Parallel()

		a, b := headlines.Fallback(), headlines.Fallback()

		headlines.Shuffle(a, rand.New(rand.NewPCG(7, 7)))
		headlines.Shuffle(b, rand.New(rand.NewPCG(7, 7)))

		for i := range a {
			assert.Equal(t, a[i].Text, b[i].Text)
		}
	})

	t.Run("places every element first roughly equally often", func(t *testing.T) {
		t.Parallel()

		r := rand.New(rand.NewPCG(42, 42))
		counts := map[string]int{}
		const rounds = 4000
		for range rounds {
			hs := headlines.Fallback()
			headlines.Shuffle(hs, r)
			counts[hs[0].Text]++
		}

		for text, n := range counts {
			assert.InDelta(t, rounds/4, n, rounds/10, text)
		}
		assert.Len(t, counts, 4)
	})

	t.Run("handles empty slice with global source", func(t *testing.T) {
		t.Parallel()

		assert.NotPanics(t, func() { headlines.Shuffle(nil, nil) })
	})
}
