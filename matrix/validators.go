// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels minimal by delegating rectangularity/compatibility guards here.
//  - Return sentinels wrapped with a validator tag so call sites can match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; ValidateRectangular is O(rows),
//    the pairwise checks are O(1).
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil -> compatibility.
//  - Rectangularity is checked on raw rows (FromRows) before any pairwise check,
//    so a ragged operand is always reported ahead of a mismatch.

package matrix

import "fmt"

// Validator tags (no magic strings at call sites).
const (
	tagRectangular = "ValidateRectangular"
	tagMultiply    = "ValidateForMultiply"
	tagConvolve    = "ValidateForConvolve"
	tagNotNil      = "ValidateNotNil"
	tagSameShape   = "ValidateSameShape"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf(tagNotNil, ErrNilMatrix)
	}

	return nil
}

// ValidateRectangular ensures rows describe a non-empty rectangular matrix.
//
// Inputs: raw rows, as produced by a decoder.
// Errors:
//   - ErrInvalidDimensions if there are no rows or every row is empty.
//   - ErrRaggedRows naming the first row whose length differs from the first,
//     including an empty first row followed by non-empty ones.
//
// Complexity: O(rows).
func ValidateRectangular(rows [][]int) error {
	if allEmpty(rows) {
		return validatorErrorf(tagRectangular, ErrInvalidDimensions)
	}
	want := len(rows[0])
	for i, row := range rows {
		if len(row) != want {
			return validatorErrorf(tagRectangular,
				fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedRows, i+1, len(row), want))
		}
	}

	return nil
}

// allEmpty reports whether rows holds no values at all.
func allEmpty(rows [][]int) bool {
	for _, row := range rows {
		if len(row) > 0 {
			return false
		}
	}

	return true
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
//
// Errors: ErrNilMatrix, or ErrDimensionMismatch wrapped with both shapes.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf(tagSameShape,
			fmt.Errorf("%w: %s and %s", ErrDimensionMismatch, a.Shape(), b.Shape()))
	}

	return nil
}

// ValidateForMultiply checks left.Cols == right.Rows.
//
// Errors:
//   - ErrNilMatrix if either operand is nil.
//   - ErrDimensionMismatch wrapped as "dimension mismatch: AxB and CxD".
//
// Complexity: O(1).
func ValidateForMultiply(left, right *Dense) error {
	if err := ValidateNotNil(left); err != nil {
		return err
	}
	if err := ValidateNotNil(right); err != nil {
		return err
	}
	if left.c != right.r {
		return validatorErrorf(tagMultiply,
			fmt.Errorf("%w: %s and %s", ErrDimensionMismatch, left.Shape(), right.Shape()))
	}

	return nil
}

// ValidateForConvolve checks that kernel fits inside signal in both axes.
//
// Errors:
//   - ErrNilMatrix if either operand is nil.
//   - ErrKernelTooLarge when kernel.Rows > signal.Rows or kernel.Cols > signal.Cols.
//
// Complexity: O(1).
func ValidateForConvolve(signal, kernel *Dense) error {
	if err := ValidateNotNil(signal); err != nil {
		return err
	}
	if err := ValidateNotNil(kernel); err != nil {
		return err
	}
	if kernel.r > signal.r || kernel.c > signal.c {
		return validatorErrorf(tagConvolve,
			fmt.Errorf("%w: kernel %s, signal %s", ErrKernelTooLarge, kernel.Shape(), signal.Shape()))
	}

	return nil
}
