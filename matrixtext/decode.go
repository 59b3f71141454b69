// SPDX-License-Identifier: MIT

// Package matrixtext reads and writes the two-block integer matrix text format.
//
// Format:
//   - Rows are whitespace-separated signed integers, one row per line.
//   - The first line that is not made only of digits, spaces and minus signs
//     (a blank line included) separates the first block from the second and
//     is discarded.
//   - Trailing blank lines at the end of the input are ignored.
//
// Known fragility: a row holding a stray non-numeric character is taken as
// the separator. The heuristic is kept as-is for compatibility with existing
// input files; callers wanting strict blank-line separation must pre-check.
//
// The codec does no shape validation. Ragged blocks are returned as decoded
// and rejected later by matrix.FromRows.
package matrixtext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Pair holds the two row blocks of one input, in file order.
// The role of each block depends on the operation: (left, right) for
// multiplication, (signal, kernel) for convolution.
type Pair struct {
	First  [][]int
	Second [][]int
}

// Left returns the left multiplication operand.
func (p Pair) Left() [][]int { return p.First }

// Right returns the right multiplication operand.
func (p Pair) Right() [][]int { return p.Second }

// Signal returns the convolution input.
func (p Pair) Signal() [][]int { return p.First }

// Kernel returns the convolution kernel.
func (p Pair) Kernel() [][]int { return p.Second }

// Decode parses text into a Pair. See DecodeReader.
func Decode(text string) (Pair, error) {
	return DecodeReader(strings.NewReader(text))
}

// DecodeReader reads all lines from r and splits them into two blocks.
//
// Errors:
//   - ErrNoSeparator if no line is non-numeric.
//   - ErrEmptyMatrix if either block has no rows.
//   - ErrInvalidToken (with line and token) for unparsable tokens.
//   - Any read error from r, wrapped.
func DecodeReader(r io.Reader) (Pair, error) {
	lines, err := readLines(r)
	if err != nil {
		return Pair{}, err
	}

	sep := -1
	for i, line := range lines {
		if !isNumeric(line) {
			sep = i
			break
		}
	}
	if sep < 0 {
		return Pair{}, ErrNoSeparator
	}

	// Drop trailing blank lines after the second block.
	end := len(lines)
	for end > sep+1 && lines[end-1] == "" {
		end--
	}

	first, err := parseRows(lines[:sep], 1)
	if err != nil {
		return Pair{}, err
	}
	second, err := parseRows(lines[sep+1:end], sep+2)
	if err != nil {
		return Pair{}, err
	}
	if len(first) == 0 || len(second) == 0 {
		return Pair{}, ErrEmptyMatrix
	}

	return Pair{First: first, Second: second}, nil
}

// readLines returns every line of r with surrounding whitespace trimmed.
// Lines have no length limit; a final line without a newline is kept.
func readLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	var lines []string
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strings.TrimSpace(line))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("matrixtext: read: %w", err)
		}
	}
}

// isNumeric reports whether line, with spaces and minus signs removed, is a
// non-empty run of ASCII digits.
func isNumeric(line string) bool {
	digits := 0
	for _, r := range line {
		switch {
		case r == ' ' || r == '-':
		case r >= '0' && r <= '9':
			digits++
		default:
			return false
		}
	}

	return digits > 0
}

// parseRows parses each line into a row of ints. firstLine is the 1-based
// number of lines[0] in the original input, used in error messages.
func parseRows(lines []string, firstLine int) ([][]int, error) {
	rows := make([][]int, 0, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		row := make([]int, 0, len(fields))
		for _, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w %q at line %d", ErrInvalidToken, tok, firstLine+i)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
