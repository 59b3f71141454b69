// SPDX-License-Identifier: MIT

package matrixtext

import (
	"errors"
	"fmt"
)

// ErrFormat is the kind sentinel for malformed, undelimited or unparsable
// input text. Every decode failure wraps it.
var ErrFormat = errors.New("matrixtext: format error")

var (
	// ErrNoSeparator reports input with no non-numeric line, so the two
	// matrices are not delimited.
	ErrNoSeparator = fmt.Errorf("%w: no separator", ErrFormat)

	// ErrEmptyMatrix reports a block with zero rows on either side of the separator.
	ErrEmptyMatrix = fmt.Errorf("%w: empty matrix", ErrFormat)

	// ErrInvalidToken reports a token that is not a signed integer.
	// Returned wrapped with the 1-based line number and the token.
	ErrInvalidToken = fmt.Errorf("%w: invalid token", ErrFormat)
)
