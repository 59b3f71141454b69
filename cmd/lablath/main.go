// Command lablath runs the numeric lab utilities: integer matrix
// multiplication and convolution over two-block text files, a bubble sort
// demo and a Pascal triangle printer.
//
// Usage:
//
//	lablath multiply [-i input.txt] [-o output.txt]
//	lablath convolve [-i input.txt] [-o output.txt]
//	lablath sort [-n 10] [--seed 0]
//	lablath pascal [-n 10]
//
// On success the matrix commands print only the output path. On failure
// they print "Error: <cause>" to stdout and exit with status 1. Unknown
// flags and extra arguments are ignored.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lablath/config"
	"github.com/katalvlaran/lablath/logging"
)

// app carries the state shared by one command tree: global flags, the
// resolved configuration and the logger.
type app struct {
	stdout io.Writer

	// Global flags
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

// lenient lets every command ignore flags it does not know.
var lenient = cobra.FParseErrWhitelist{UnknownFlags: true}

// newRootCmd builds the command tree writing results to stdout.
func newRootCmd(stdout io.Writer) *cobra.Command {
	a := &app{stdout: stdout, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "lablath",
		Short: "Numeric lab utilities: matrix multiply, convolution, sort, Pascal triangle",
		Long: `lablath runs small numeric utilities from the command line.

Matrix commands read two integer matrices from one text file. Rows are
whitespace-separated integers; the first line that is not made only of
digits, spaces and minus signs (usually a blank line) separates the two
matrices.`,
		SilenceErrors:      true,
		SilenceUsage:       true,
		FParseErrWhitelist: lenient,
		Args:               cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logger, err := logging.New(cfg.Logging, a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(stdout)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(
		newMatrixCmd(a, "multiply", matmulAliases, "Multiply two integer matrices"),
		newMatrixCmd(a, "convolve", convAliases, "Convolve a matrix with a kernel (no flip, no padding)"),
		newSortCmd(a),
		newPascalCmd(a),
	)

	return root
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout io.Writer) int {
	root := newRootCmd(stdout)
	root.SetArgs(args)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}
