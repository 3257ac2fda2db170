package partsp_test

// Shared test helpers: deterministic geometry, brute-force oracle, and
// matrix builders. Grounded on tsp/testutil_test.go's convention of
// centralizing small cross-file helpers in one file, and on
// tsp/bench_test.go's "prebuild inputs outside the timer, fixed seeds"
// discipline for benchmarks.

import (
	"math"
	"math/rand"
)

// symmetricMatrix builds a deterministic n×n symmetric, zero-diagonal,
// non-negative distance matrix from a fixed seed.
func symmetricMatrix(n int, seed int64, maxDist int) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := float64(1 + r.Intn(maxDist))
			d[i][j] = v
			d[j][i] = v
		}
	}
	return d
}

// bruteForceOptimalCost computes the exact minimum closed-cycle cost over
// all (n-1)! permutations fixing city 0 first, by recursive enumeration.
// Intended only for small n (property test "Optimality", spec §8.2).
func bruteForceOptimalCost(d [][]float64) float64 {
	n := len(d)
	if n == 1 {
		return 0
	}
	rest := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		rest = append(rest, i)
	}
	best := math.Inf(1)
	perm := make([]int, len(rest))
	copy(perm, rest)
	var permute func(k int)
	permute = func(k int) {
		if k == len(perm) {
			cost := d[0][perm[0]]
			for i := 0; i+1 < len(perm); i++ {
				cost += d[perm[i]][perm[i+1]]
			}
			cost += d[perm[len(perm)-1]][0]
			if cost < best {
				best = cost
			}
			return
		}
		for i := k; i < len(perm); i++ {
			perm[k], perm[i] = perm[i], perm[k]
			permute(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	permute(0)
	return best
}

// isPermutationTour reports whether tour is a valid result shape for an
// n-city instance: length n, starts at 0, each city appears exactly once.
func isPermutationTour(cities []int, n int) bool {
	if len(cities) != n || cities[0] != 0 {
		return false
	}
	seen := make([]bool, n)
	for _, c := range cities {
		if c < 0 || c >= n || seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}
