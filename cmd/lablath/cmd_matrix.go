package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lablath/config"
	"github.com/katalvlaran/lablath/pipeline"
)

var (
	matmulAliases = []string{"mul", "matmul"}
	convAliases   = []string{"conv"}
)

// newMatrixCmd builds the multiply or convolve command. name must be
// accepted by pipeline.ParseOperation.
func newMatrixCmd(a *app, name string, aliases []string, short string) *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:                name + " [-i input] [-o output]",
		Aliases:            aliases,
		Short:              short,
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: lenient,
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := pipeline.ParseOperation(name)
			if err != nil {
				return err
			}

			cfg := a.cfg
			if cmd.Flags().Changed("input") {
				cfg.Input = input
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = output
			}
			if len(args) > 0 {
				a.logger.Debug("ignoring extra arguments", zap.Strings("args", args))
			}

			out, err := pipeline.Run(cmd.Context(), op, cfg, a.logger)
			if err != nil {
				a.logger.Debug("run failed", zap.Stringer("kind", pipeline.KindOf(err)))
				return err
			}
			fmt.Fprintln(a.stdout, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", config.DefaultInput, "input file with two matrices")
	cmd.Flags().StringVarP(&output, "output", "o", config.DefaultOutput, "output file for the result")

	return cmd
}
