// Package matrix offers a fixed-shape dense integer matrix and the kernels
// built on it.
//
// The matrix package provides:
//
//   - Dense, a row-major rectangular store of native ints. FromRows enforces
//     rectangularity at construction, so every *Dense is well-formed.
//   - Shape validators (ValidateRectangular, ValidateForMultiply,
//     ValidateForConvolve) returning sentinels that wrap ErrShape.
//   - Kernels: Multiply (i→j→k triple loop) and Convolve (2-D
//     cross-correlation: no kernel flip, no padding, stride 1), plus
//     Transpose, Identity and Equal.
//
// All kernels are pure: operands are never mutated and results are freshly
// allocated. Integer overflow follows Go's int semantics (wrap-around).
//
// See package matrixtext for the two-block text format and package pipeline
// for the file-to-file driver.
package matrix
