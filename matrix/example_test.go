package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lablath/matrix"
)

// ExampleMultiply multiplies two 2×2 matrices.
func ExampleMultiply() {
	a := matrix.MustFromRows([][]int{{1, 2}, {3, 4}})
	b := matrix.MustFromRows([][]int{{5, 6}, {7, 8}})
	c, err := matrix.Multiply(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleConvolve slides a diagonal 2×2 kernel over a 3×3 signal.
func ExampleConvolve() {
	signal := matrix.MustFromRows([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	kernel := matrix.MustFromRows([][]int{{1, 0}, {0, 1}})
	out, err := matrix.Convolve(signal, kernel)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(out)
	// Output:
	// [6, 8]
	// [12, 14]
}

// ExampleValidateForMultiply shows the mismatch message.
func ExampleValidateForMultiply() {
	err := matrix.ValidateForMultiply(
		matrix.MustFromRows([][]int{{1, 2, 3}, {4, 5, 6}}),
		matrix.MustFromRows([][]int{{1, 2}, {3, 4}}),
	)
	fmt.Println(err)
	// Output:
	// ValidateForMultiply: matrix: shape error: dimension mismatch: 2x3 and 2x2
}
