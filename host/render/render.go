// Package render draws 14-segment glyph codes as ASCII art.
package render

import (
	"strings"

	"segloop/core"
	"segloop/display/ht16k33"
)

// CellRows is the height of one rendered character
const CellRows = 5

func on(g, seg core.Glyph, c byte) byte {
	if g&seg != 0 {
		return c
	}
	return ' '
}

// Glyph renders one code as five rows of six columns:
//
//	 ---
//	|\|/|
//	 - -
//	|/|\|
//	 --- .
func Glyph(g core.Glyph) [CellRows]string {
	var rows [CellRows]string

	bar := func(seg core.Glyph) string {
		if g&seg != 0 {
			return "---"
		}
		return "   "
	}

	rows[0] = " " + bar(ht16k33.SegA) + "  "
	rows[1] = string([]byte{
		on(g, ht16k33.SegF, '|'),
		on(g, ht16k33.SegH, '\\'),
		on(g, ht16k33.SegJ, '|'),
		on(g, ht16k33.SegK, '/'),
		on(g, ht16k33.SegB, '|'),
		' ',
	})
	rows[2] = string([]byte{
		' ',
		on(g, ht16k33.SegG1, '-'),
		' ',
		on(g, ht16k33.SegG2, '-'),
		' ',
		' ',
	})
	rows[3] = string([]byte{
		on(g, ht16k33.SegE, '|'),
		on(g, ht16k33.SegL, '/'),
		on(g, ht16k33.SegM, '|'),
		on(g, ht16k33.SegN, '\\'),
		on(g, ht16k33.SegC, '|'),
		' ',
	})
	rows[4] = " " + bar(ht16k33.SegD) + string([]byte{' ', on(g, ht16k33.SegDP, '.')})

	return rows
}

// Frame renders a whole display buffer side by side, one line per row
func Frame(buf core.DisplayBuffer) string {
	var sb strings.Builder
	cells := make([][CellRows]string, len(buf))
	for i, g := range buf {
		cells[i] = Glyph(g)
	}
	for row := 0; row < CellRows; row++ {
		for i := range cells {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cells[i][row])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
