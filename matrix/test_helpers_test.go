// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures for kernels and validators.
//   • Keep values small enough that no product overflows int on any platform.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lablath/matrix"
	"github.com/stretchr/testify/require"
)

// MustRows BUILDS a *Dense from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustDense ALLOCATES an r×c zero *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// RandomDense FILLS an r×c matrix with values in [-9, 9] from a seeded RNG.
// Determinism: same seed → same matrix.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int, r)
	for i := range rows {
		rows[i] = make([]int, c)
		for j := range rows[i] {
			rows[i][j] = rng.Intn(19) - 9
		}
	}

	return MustRows(t, rows)
}

// RequireSameRows compares two matrices row by row and prints a cmp diff.
func RequireSameRows(t testing.TB, want, got *matrix.Dense) {
	t.Helper()
	require.NotNil(t, got)
	if diff := cmp.Diff(want.ToRows(), got.ToRows()); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}
