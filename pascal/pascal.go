// Package pascal generates Pascal's triangle and lays it out as centred text.
package pascal

import (
	"strconv"
	"strings"
)

// Triangle returns the first n rows of Pascal's triangle. Row i has i+1
// entries; interior entries are the sum of the two entries above.
// A non-positive n yields nil.
func Triangle(n int) [][]int {
	if n <= 0 {
		return nil
	}
	rows := make([][]int, n)
	for i := range rows {
		row := make([]int, i+1)
		row[0], row[i] = 1, 1
		for j := 1; j < i; j++ {
			row[j] = rows[i-1][j-1] + rows[i-1][j]
		}
		rows[i] = row
	}

	return rows
}

// Format renders each row as space-separated values centred to the width of
// the last row. Odd padding goes to the right unless the target width is
// odd, matching the usual str-centre convention.
func Format(rows [][]int) []string {
	if len(rows) == 0 {
		return nil
	}
	plain := make([]string, len(rows))
	for i, row := range rows {
		plain[i] = join(row)
	}
	width := len(plain[len(plain)-1])

	out := make([]string, len(plain))
	for i, s := range plain {
		out[i] = center(s, width)
	}

	return out
}

func join(row []int) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}

func center(s string, width int) string {
	margin := width - len(s)
	if margin <= 0 {
		return s
	}
	left := margin/2 + (margin & width & 1)

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", margin-left)
}
