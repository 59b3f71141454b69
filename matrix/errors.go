// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with
// context) and tests MUST check them via errors.Is. No exported function
// panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Shape sentinels wrap ErrShape so callers can
// classify a failure by kind with a single errors.Is(err, ErrShape).
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape construction (ragged/empty) -> operand compatibility.

var (
	// ErrShape is the kind sentinel for every shape violation: ragged rows,
	// incompatible multiply operands, oversized convolution kernels.
	ErrShape = errors.New("matrix: shape error")

	// ErrRaggedRows reports a row whose length differs from the first row.
	ErrRaggedRows = fmt.Errorf("%w: ragged rows", ErrShape)

	// ErrDimensionMismatch reports left.Cols != right.Rows for Multiply.
	// Returned wrapped with the concrete shapes ("2x3 and 2x2").
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrShape)

	// ErrKernelTooLarge reports a convolution kernel that exceeds the signal
	// in either axis.
	ErrKernelTooLarge = fmt.Errorf("%w: kernel larger than signal", ErrShape)

	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive (zero rows or an empty first row).
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrShape)

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
