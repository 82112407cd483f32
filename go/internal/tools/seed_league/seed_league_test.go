package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRobin(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 6, 7} {
		rounds := roundRobin(n)

		met := map[[2]int]int{}
		for _, pairs := range rounds {
			seen := map[int]bool{}
			for _, p := range pairs {
				assert.NotEqual(t, p[0], p[1])
				assert.False(t, seen[p[0]] || seen[p[1]], "team plays twice in one round")
				seen[p[0]], seen[p[1]] = true, true

				a, b := min(p[0], p[1]), max(p[0], p[1])
				met[[2]int{a, b}]++
			}
		}

		assert.Len(t, met, n*(n-1)/2, "n=%d", n)
		for pair, count := range met {
			assert.Equal(t, 1, count, "n=%d pair=%v", n, pair)
		}
	}
}
