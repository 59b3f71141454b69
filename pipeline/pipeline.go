// Package pipeline runs one matrix operation from an input file to an output
// file: read → decode → shape-check → compute → encode → write.
//
// Each run is a single sequential call chain with no state shared between
// runs. The input file is opened and closed before any computation; the
// output path is only touched after every earlier stage succeeded, and is
// replaced atomically so a failed write never leaves a partial file behind.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lablath/config"
	"github.com/katalvlaran/lablath/matrix"
	"github.com/katalvlaran/lablath/matrixtext"
)

// ErrIO is the kind sentinel for file open/read/write failures at the
// pipeline boundary.
var ErrIO = errors.New("pipeline: i/o error")

// ErrUnknownOperation reports an operation name that ParseOperation does not know.
var ErrUnknownOperation = errors.New("pipeline: unknown operation")

// Operation selects the kernel a run applies to its matrix pair.
type Operation int

const (
	// Multiply computes left×right.
	Multiply Operation = iota + 1
	// Convolve cross-correlates signal with kernel.
	Convolve
)

// String returns the command name of the operation.
func (op Operation) String() string {
	switch op {
	case Multiply:
		return "multiply"
	case Convolve:
		return "convolve"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// ParseOperation maps a command name to an Operation.
func ParseOperation(name string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "multiply", "mul", "matmul":
		return Multiply, nil
	case "convolve", "conv":
		return Convolve, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
}

// Kind classifies a pipeline error for reporting.
type Kind int

const (
	// KindNone is the kind of a nil error.
	KindNone Kind = iota
	// KindFormat marks malformed, undelimited or unparsable input text.
	KindFormat
	// KindShape marks ragged rows, incompatible operands or an oversized kernel.
	KindShape
	// KindIO marks file open, read or write failures.
	KindIO
	// KindOther marks any other non-nil error.
	KindOther
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindFormat:
		return "format"
	case KindShape:
		return "shape"
	case KindIO:
		return "io"
	default:
		return "other"
	}
}

// KindOf classifies err by the kind sentinel it wraps.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, matrixtext.ErrFormat):
		return KindFormat
	case errors.Is(err, matrix.ErrShape):
		return KindShape
	case errors.Is(err, ErrIO):
		return KindIO
	default:
		return KindOther
	}
}

// Run executes op with the paths from cfg and returns the output path.
//
// Stages:
//   - read the whole input file (scoped open/close),
//   - decode the two blocks,
//   - build both matrices (rectangularity, first block first),
//   - check operand compatibility and compute,
//   - encode and atomically replace the output file.
//
// ctx is checked between stages; kernels themselves are not interruptible.
// Errors from the codec, validator and kernels are returned unchanged apart
// from added context, so errors.Is against their sentinels keeps working.
func Run(ctx context.Context, op Operation, cfg config.Config, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.Stringer("op", op), zap.String("input", cfg.Input), zap.String("output", cfg.Output))

	if err := cfg.Validate(); err != nil {
		return "", err
	}

	text, err := readInput(cfg.Input)
	if err != nil {
		log.Warn("read failed", zap.Error(err))
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	pair, err := matrixtext.DecodeReader(bytes.NewReader(text))
	if err != nil {
		log.Warn("decode failed", zap.Error(err))
		return "", err
	}
	log.Debug("decoded", zap.Int("first_rows", len(pair.First)), zap.Int("second_rows", len(pair.Second)))

	result, err := compute(op, pair)
	if err != nil {
		log.Warn("compute failed", zap.Error(err))
		return "", err
	}
	log.Debug("computed", zap.Stringer("shape", result.Shape()))
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := writeOutput(cfg.Output, []byte(matrixtext.Encode(result))); err != nil {
		log.Warn("write failed", zap.Error(err))
		return "", err
	}
	log.Info("done")

	return cfg.Output, nil
}

// compute builds both operands and applies op. Rectangularity of both blocks
// is checked before any pairwise compatibility check.
func compute(op Operation, pair matrixtext.Pair) (*matrix.Dense, error) {
	first, err := matrix.FromRows(pair.First)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", firstRole(op), err)
	}
	second, err := matrix.FromRows(pair.Second)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", secondRole(op), err)
	}

	switch op {
	case Multiply:
		return matrix.Multiply(first, second)
	case Convolve:
		return matrix.Convolve(first, second)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
}

func firstRole(op Operation) string {
	if op == Convolve {
		return "signal"
	}
	return "left matrix"
}

func secondRole(op Operation) string {
	if op == Convolve {
		return "kernel"
	}
	return "right matrix"
}

// readInput returns the full contents of path; the file is closed on return.
func readInput(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, path, err)
	}

	return buf.Bytes(), nil
}

// newFileMode is the permission of an output file that did not exist before.
const newFileMode os.FileMode = 0o644

// writeOutput writes data to a temporary file next to path and renames it
// into place. An existing destination keeps its permission bits. On any
// failure the temporary file is removed and path is left untouched.
func writeOutput(path string, data []byte) (err error) {
	mode := newFileMode
	if fi, statErr := os.Stat(path); statErr == nil {
		mode = fi.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: write %s: %w", ErrIO, tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrIO, tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return nil
}
