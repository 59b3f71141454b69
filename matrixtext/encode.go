// SPDX-License-Identifier: MIT

package matrixtext

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lablath/matrix"
)

// Encode renders m one row per line, values joined by single spaces, each
// line newline-terminated. There is no padding and no header.
func Encode(m *matrix.Dense) string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = EncodeTo(&sb, m)

	return sb.String()
}

// EncodeTo writes the Encode form of m to w.
func EncodeTo(w io.Writer, m *matrix.Dense) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("matrixtext: encode: %w", err)
	}

	bw := bufio.NewWriter(w)
	var buf []byte
	for _, row := range m.ToRows() {
		buf = buf[:0]
		for j, v := range row {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, int64(v), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("matrixtext: encode: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("matrixtext: encode: %w", err)
	}

	return nil
}
