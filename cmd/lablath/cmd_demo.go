package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lablath/bubble"
	"github.com/katalvlaran/lablath/pascal"
)

// Range of the random values printed by the sort command.
const (
	sortMin = 1
	sortMax = 100
)

// newSortCmd prints a random array and then the same array bubble-sorted.
func newSortCmd(a *app) *cobra.Command {
	var (
		n    int
		seed int64
	)

	cmd := &cobra.Command{
		Use:                "sort [-n N] [--seed S]",
		Short:              "Bubble-sort N random integers in [1,100]",
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: lenient,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			a.logger.Debug("sort", zap.Int("n", n), zap.Int64("seed", seed))

			values := bubble.Random(rand.New(rand.NewSource(seed)), n, sortMin, sortMax)
			fmt.Fprintln(a.stdout, joinInts(values))
			bubble.Sort(values)
			fmt.Fprintln(a.stdout, joinInts(values))
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "N", "n", 10, "number of values")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: current time)")

	return cmd
}

// newPascalCmd prints N centred rows of Pascal's triangle.
func newPascalCmd(a *app) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:                "pascal [-n N]",
		Short:              "Print N rows of Pascal's triangle",
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: lenient,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Debug("pascal", zap.Int("n", n))
			for _, line := range pascal.Format(pascal.Triangle(n)) {
				fmt.Fprintln(a.stdout, line)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "N", "n", 10, "number of rows")

	return cmd
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
