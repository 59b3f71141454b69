// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small element-wise kernels shared by the convolution kernel and
//     by callers that need a Hadamard product or a total.
//   - Keep all loops deterministic and cache-friendly on the flat buffer.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 or a→b inside a window).
//   - No hidden allocations beyond the output Dense.

package matrix

const (
	opHadamard = "Hadamard"
	opSum      = "Sum"
)

// Hadamard returns the element-wise product a∘b of two same-shape matrices.
//
// Errors:
//   - ErrNilMatrix if either operand is nil.
//   - ErrDimensionMismatch wrapped with both shapes when shapes differ.
//
// Complexity: Time O(r*c), Space O(r*c).
func Hadamard(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res := &Dense{r: a.r, c: a.c, data: make([]int, len(a.data))}
	for i := range a.data {
		res.data[i] = a.data[i] * b.data[i]
	}

	return res, nil
}

// Sum returns the total of all entries of m.
// Complexity: Time O(r*c), Space O(1).
func Sum(m *Dense) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opSum, err)
	}
	total := 0
	for _, v := range m.data {
		total += v
	}

	return total, nil
}

// windowDot returns Σ_a Σ_b s[i0+a][j0+b]*k[a][b] for the k-sized window of s
// anchored at (i0, j0). The caller guarantees the window fits inside s.
// Complexity: Time O(kr*kc), Space O(1).
func windowDot(s, k *Dense, i0, j0 int) int {
	sum := 0
	for a := 0; a < k.r; a++ {
		sRow := (i0+a)*s.c + j0
		kRow := a * k.c
		for b := 0; b < k.c; b++ {
			sum += s.data[sRow+b] * k.data[kRow+b]
		}
	}

	return sum
}
