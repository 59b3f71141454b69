package bubble_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lablath/bubble"
)

func TestSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []int
	}{
		{"nil", nil},
		{"single", []int{4}},
		{"sorted", []int{1, 2, 3}},
		{"reversed", []int{5, 4, 3, 2, 1}},
		{"duplicates", []int{3, 1, 3, -2, 0, 1}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := slices.Clone(tc.in)
			bubble.Sort(got)
			want := slices.Clone(tc.in)
			slices.Sort(want)
			require.Equal(t, want, got)
		})
	}
}

func TestSort_Random(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		s := bubble.Random(rng, 50, 1, 100)
		bubble.Sort(s)
		require.True(t, slices.IsSorted(s))
	}
}

func TestRandom_Range(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	s := bubble.Random(rng, 1000, 1, 100)
	require.Len(t, s, 1000)
	for _, v := range s {
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 100)
	}
	require.Empty(t, bubble.Random(rng, 0, 1, 100))
	require.Empty(t, bubble.Random(rng, -3, 1, 100))
}

func TestSort_Strings(t *testing.T) {
	t.Parallel()

	s := []string{"pear", "apple", "fig"}
	bubble.Sort(s)
	require.Equal(t, []string{"apple", "fig", "pear"}, s)
}
