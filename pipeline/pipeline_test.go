package pipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lablath/config"
	"github.com/katalvlaran/lablath/matrix"
	"github.com/katalvlaran/lablath/matrixtext"
	"github.com/katalvlaran/lablath/pipeline"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// setup writes input text into a temp dir and returns a config pointing at it.
func setup(t *testing.T, input string) config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Input = filepath.Join(dir, "input.txt")
	cfg.Output = filepath.Join(dir, "output.txt")
	require.NoError(t, os.WriteFile(cfg.Input, []byte(input), 0o644))

	return cfg
}

func TestRun_Multiply(t *testing.T) {
	cfg := setup(t, "1 2\n3 4\n\n5 6\n7 8\n")

	out, err := pipeline.Run(context.Background(), pipeline.Multiply, cfg, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, cfg.Output, out)

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	require.Equal(t, "19 22\n43 50\n", string(data))
}

func TestRun_Convolve(t *testing.T) {
	cfg := setup(t, "1 2 3\n4 5 6\n7 8 9\n\n1 0\n0 1\n")

	out, err := pipeline.Run(context.Background(), pipeline.Convolve, cfg, nil)
	require.NoError(t, err)
	require.Equal(t, cfg.Output, out)

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	require.Equal(t, "6 8\n12 14\n", string(data))
}

// TestRun_WideRow multiplies a 1×n row by an n×1 column where the row line
// is longer than 1 MiB.
func TestRun_WideRow(t *testing.T) {
	const n = 600000
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(strings.Repeat("1 ", n)))
	sb.WriteString("\n\n")
	sb.WriteString(strings.Repeat("2\n", n))
	cfg := setup(t, sb.String())

	_, err := pipeline.Run(context.Background(), pipeline.Multiply, cfg, nil)
	require.NoError(t, err)
	require.Equal(t, pipeline.KindNone, pipeline.KindOf(err))

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	require.Equal(t, "1200000\n", string(data))
}

func TestRun_OverwritesExistingOutput(t *testing.T) {
	cfg := setup(t, "2\n\n3\n")
	require.NoError(t, os.WriteFile(cfg.Output, []byte("stale contents\nmore\n"), 0o644))

	_, err := pipeline.Run(context.Background(), pipeline.Multiply, cfg, nil)
	require.NoError(t, err)
	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	require.Equal(t, "6\n", string(data))
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name  string
		op    pipeline.Operation
		input string
		want  error
		kind  pipeline.Kind
	}{
		{"no separator", pipeline.Multiply, "1 2\n3 4\n", matrixtext.ErrNoSeparator, pipeline.KindFormat},
		{"empty block", pipeline.Multiply, "1 2\n\n", matrixtext.ErrEmptyMatrix, pipeline.KindFormat},
		{"ragged", pipeline.Multiply, "1 2\n3\n\n1\n1\n", matrix.ErrRaggedRows, pipeline.KindShape},
		{"mismatch", pipeline.Multiply, "1 2 3\n4 5 6\n\n1 2\n3 4\n", matrix.ErrDimensionMismatch, pipeline.KindShape},
		{"kernel too large", pipeline.Convolve, "1 2\n3 4\n\n1 1 1\n1 1 1\n1 1 1\n", matrix.ErrKernelTooLarge, pipeline.KindShape},
		// The second blank line becomes an empty first row of the right matrix.
		{"double blank separator", pipeline.Multiply, "1 2\n3 4\n\n\n5 6\n7 8\n", matrix.ErrRaggedRows, pipeline.KindShape},
		// A ragged kernel is reported even though it is also larger than the signal.
		{"ragged before mismatch", pipeline.Convolve, "1\n\n1 1\n1\n", matrix.ErrRaggedRows, pipeline.KindShape},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := setup(t, tc.input)

			out, err := pipeline.Run(context.Background(), tc.op, cfg, zap.NewNop())
			require.Empty(t, out)
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
			require.Equal(t, tc.kind, pipeline.KindOf(err))

			_, statErr := os.Stat(cfg.Output)
			require.ErrorIs(t, statErr, os.ErrNotExist, "output must not be written on failure")
		})
	}
}

func TestRun_OutputMode(t *testing.T) {
	cfg := setup(t, "2\n\n3\n")

	_, err := pipeline.Run(context.Background(), pipeline.Multiply, cfg, nil)
	require.NoError(t, err)
	fi, err := os.Stat(cfg.Output)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o644), fi.Mode().Perm(), "new output file")

	// An existing destination keeps its permission bits across runs.
	require.NoError(t, os.Chmod(cfg.Output, 0o600))
	_, err = pipeline.Run(context.Background(), pipeline.Multiply, cfg, nil)
	require.NoError(t, err)
	fi, err = os.Stat(cfg.Output)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
}

func TestRun_MismatchMessage(t *testing.T) {
	cfg := setup(t, "1 2 3\n4 5 6\n\n1 2\n3 4\n")

	_, err := pipeline.Run(context.Background(), pipeline.Multiply, cfg, nil)
	require.ErrorContains(t, err, "2x3 and 2x2")
}

func TestRun_FailureKeepsExistingOutput(t *testing.T) {
	cfg := setup(t, "no separator? 1\n")
	// "no separator? 1" is itself non-numeric, so the first block is empty.
	require.NoError(t, os.WriteFile(cfg.Output, []byte("previous\n"), 0o644))

	_, err := pipeline.Run(context.Background(), pipeline.Multiply, cfg, nil)
	require.ErrorIs(t, err, matrixtext.ErrEmptyMatrix)

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	require.Equal(t, "previous\n", string(data))
}

func TestRun_MissingInput(t *testing.T) {
	cfg := config.Default()
	dir := t.TempDir()
	cfg.Input = filepath.Join(dir, "nope.txt")
	cfg.Output = filepath.Join(dir, "out.txt")

	_, err := pipeline.Run(context.Background(), pipeline.Multiply, cfg, nil)
	require.ErrorIs(t, err, pipeline.ErrIO)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Equal(t, pipeline.KindIO, pipeline.KindOf(err))
}

func TestRun_UnwritableOutput(t *testing.T) {
	cfg := setup(t, "1\n\n1\n")
	cfg.Output = filepath.Join(t.TempDir(), "missing-dir", "out.txt")

	_, err := pipeline.Run(context.Background(), pipeline.Multiply, cfg, nil)
	require.ErrorIs(t, err, pipeline.ErrIO)
}

func TestRun_CanceledContext(t *testing.T) {
	cfg := setup(t, "1\n\n1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pipeline.Run(ctx, pipeline.Multiply, cfg, nil)
	require.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(cfg.Output)
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Output = ""

	_, err := pipeline.Run(context.Background(), pipeline.Multiply, cfg, nil)
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestRun_LogsFailure(t *testing.T) {
	cfg := setup(t, "1 2\n3 4\n")
	core, logs := observer.New(zap.WarnLevel)

	_, err := pipeline.Run(context.Background(), pipeline.Multiply, cfg, zap.New(core))
	require.Error(t, err)
	require.Equal(t, 1, logs.FilterMessage("decode failed").Len())
}

func TestParseOperation(t *testing.T) {
	for name, want := range map[string]pipeline.Operation{
		"multiply": pipeline.Multiply,
		"MatMul":   pipeline.Multiply,
		"convolve": pipeline.Convolve,
		" conv ":   pipeline.Convolve,
	} {
		got, err := pipeline.ParseOperation(name)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := pipeline.ParseOperation("divide")
	require.ErrorIs(t, err, pipeline.ErrUnknownOperation)
	require.Equal(t, "multiply", pipeline.Multiply.String())
	require.Equal(t, "convolve", pipeline.Convolve.String())
}

func TestKindOf(t *testing.T) {
	require.Equal(t, pipeline.KindNone, pipeline.KindOf(nil))
	require.Equal(t, pipeline.KindOther, pipeline.KindOf(errors.New("x")))
	for kind, want := range map[pipeline.Kind]string{
		pipeline.KindNone:   "none",
		pipeline.KindFormat: "format",
		pipeline.KindShape:  "shape",
		pipeline.KindIO:     "io",
		pipeline.KindOther:  "other",
	} {
		require.Equal(t, want, kind.String())
	}
}
