// Package bubble implements an in-place bubble sort and the random input
// generator used by the sort command.
package bubble

import (
	"cmp"
	"math/rand"
)

// Sort orders s ascending in place using bubble sort.
// Each pass bubbles the largest remaining element to the end of the
// unsorted prefix. Equal elements keep their relative order.
// Complexity: O(n²) comparisons, O(1) extra space.
func Sort[T cmp.Ordered](s []T) {
	n := len(s)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if s[j] > s[j+1] {
				s[j], s[j+1] = s[j+1], s[j]
			}
		}
	}
}

// Random returns n integers drawn uniformly from [lo, hi] using rng.
// A non-positive n yields an empty slice.
func Random(rng *rand.Rand, n, lo, hi int) []int {
	if n <= 0 {
		return []int{}
	}
	out := make([]int, n)
	for i := range out {
		out[i] = lo + rng.Intn(hi-lo+1)
	}

	return out
}
