// SPDX-License-Identifier: MIT
// Package matrix provides the dense integer kernels: matrix multiplication,
// 2-D convolution (cross-correlation) and a few small helpers. All kernels
// perform strict fail-fast validation through validators.go and return
// freshly allocated results; operands are never mutated.
//
// Determinism:
//   - Fixed loop orders (Multiply: i→j→k; Convolve: i→j→a→b).
//   - No I/O, no shared state; same inputs always give the same output.
//
// Overflow:
//   - Accumulation uses Go int. Sums beyond the platform word wrap in two's
//     complement; callers accept native-width overflow semantics.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMultiply  = "Multiply"
	opConvolve  = "Convolve"
	opTranspose = "Transpose"
	opIdentity  = "Identity"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Multiply returns left×right for left m×n and right n×p (result m×p).
//
// Implementation:
//   - Stage 1: ValidateForMultiply (nil, then left.Cols == right.Rows).
//   - Stage 2: allocate m×p result.
//   - Stage 3: result[i][j] = Σ_k left[i][k]*right[k][j], loop order i→j→k.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Multiply:").
//
// Complexity:
//   - Time O(m*n*p), Space O(m*p).
func Multiply(left, right *Dense) (*Dense, error) {
	if err := ValidateForMultiply(left, right); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	m, n, p := left.r, left.c, right.c
	res := &Dense{r: m, c: p, data: make([]int, m*p)}
	var (
		i, j, k int // loop iterators
		sum     int // accumulator for one output cell
		rowA    int // offset of row i in left.data
	)
	for i = 0; i < m; i++ {
		rowA = i * n
		for j = 0; j < p; j++ {
			sum = 0
			for k = 0; k < n; k++ {
				sum += left.data[rowA+k] * right.data[k*p+j]
			}
			res.data[i*p+j] = sum
		}
	}

	return res, nil
}

// Convolve slides kernel over signal without flipping it (cross-correlation),
// with no padding and stride 1.
//
// Implementation:
//   - Stage 1: ValidateForConvolve (nil, then kernel fits in signal).
//   - Stage 2: derive output shape (r-kr+1)×(c-kc+1).
//   - Stage 3: result[i][j] = Σ_a Σ_b signal[i+a][j+b]*kernel[a][b].
//
// Behavior highlights:
//   - A kernel the size of the signal yields a 1×1 matrix holding the
//     elementwise-product sum.
//
// Errors:
//   - ErrNilMatrix, ErrKernelTooLarge (wrapped with "Convolve:").
//
// Complexity:
//   - Time O(outR*outC*kr*kc), Space O(outR*outC).
func Convolve(signal, kernel *Dense) (*Dense, error) {
	if err := ValidateForConvolve(signal, kernel); err != nil {
		return nil, matrixErrorf(opConvolve, err)
	}

	// Output shape is derived, never supplied.
	outR, outC := signal.r-kernel.r+1, signal.c-kernel.c+1
	res := &Dense{r: outR, c: outC, data: make([]int, outR*outC)}
	for i := 0; i < outR; i++ {
		for j := 0; j < outC; j++ {
			res.data[i*outC+j] = windowDot(signal, kernel, i, j)
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped.
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := &Dense{r: m.c, c: m.r, data: make([]int, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		res.data[i*n+i] = 1
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and identical values.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}
