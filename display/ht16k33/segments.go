package ht16k33

import "segloop/core"

// Segment bits of one 14-segment digit, in HT16K33 row order.
//
//	  ---A---
//	 |\  |  /|
//	 F H J K B
//	 |  \|/  |
//	  G1- -G2
//	 |  /|\  |
//	 E L M N C
//	 |/  |  \|
//	  ---D---  DP
const (
	SegA  core.Glyph = 1 << 0
	SegB  core.Glyph = 1 << 1
	SegC  core.Glyph = 1 << 2
	SegD  core.Glyph = 1 << 3
	SegE  core.Glyph = 1 << 4
	SegF  core.Glyph = 1 << 5
	SegG1 core.Glyph = 1 << 6
	SegG2 core.Glyph = 1 << 7
	SegH  core.Glyph = 1 << 8
	SegJ  core.Glyph = 1 << 9
	SegK  core.Glyph = 1 << 10
	SegL  core.Glyph = 1 << 11
	SegM  core.Glyph = 1 << 12
	SegN  core.Glyph = 1 << 13
	SegDP core.Glyph = 1 << 14
)

// rotation lights one segment at a time, outer ring first
var rotation = [14]core.Glyph{
	SegA, SegB, SegC, SegD, SegE, SegF,
	SegG1, SegG2, SegH, SegJ, SegK, SegL,
	SegM, SegN,
}

// Rotation returns the 14-entry segment rotation table
func Rotation() core.GlyphTable {
	return rotation[:]
}

// font maps the printable characters the display can show
var font = map[byte]core.Glyph{
	' ': 0,
	'-': SegG1 | SegG2,
	'_': SegD,
	'0': SegA | SegB | SegC | SegD | SegE | SegF | SegK | SegL,
	'1': SegB | SegC,
	'2': SegA | SegB | SegG1 | SegG2 | SegE | SegD,
	'3': SegA | SegB | SegG2 | SegC | SegD,
	'4': SegF | SegG1 | SegG2 | SegB | SegC,
	'5': SegA | SegF | SegG1 | SegG2 | SegC | SegD,
	'6': SegA | SegF | SegE | SegD | SegC | SegG1 | SegG2,
	'7': SegA | SegB | SegC,
	'8': SegA | SegB | SegC | SegD | SegE | SegF | SegG1 | SegG2,
	'9': SegA | SegB | SegC | SegD | SegF | SegG1 | SegG2,
	'A': SegA | SegB | SegC | SegE | SegF | SegG1 | SegG2,
	'B': SegA | SegB | SegC | SegD | SegG2 | SegJ | SegM,
	'C': SegA | SegD | SegE | SegF,
	'D': SegA | SegB | SegC | SegD | SegJ | SegM,
	'E': SegA | SegD | SegE | SegF | SegG1,
	'F': SegA | SegE | SegF | SegG1,
	'G': SegA | SegC | SegD | SegE | SegF | SegG2,
	'H': SegB | SegC | SegE | SegF | SegG1 | SegG2,
	'I': SegA | SegD | SegJ | SegM,
	'J': SegB | SegC | SegD | SegE,
	'K': SegE | SegF | SegG1 | SegK | SegN,
	'L': SegD | SegE | SegF,
	'M': SegB | SegC | SegE | SegF | SegH | SegK,
	'N': SegB | SegC | SegE | SegF | SegH | SegN,
	'O': SegA | SegB | SegC | SegD | SegE | SegF,
	'P': SegA | SegB | SegE | SegF | SegG1 | SegG2,
	'Q': SegA | SegB | SegC | SegD | SegE | SegF | SegN,
	'R': SegA | SegB | SegE | SegF | SegG1 | SegG2 | SegN,
	'S': SegA | SegF | SegG1 | SegG2 | SegC | SegD,
	'T': SegA | SegJ | SegM,
	'U': SegB | SegC | SegD | SegE | SegF,
	'V': SegE | SegF | SegL | SegK,
	'W': SegB | SegC | SegE | SegF | SegL | SegN,
	'X': SegH | SegK | SegL | SegN,
	'Y': SegH | SegK | SegM,
	'Z': SegA | SegD | SegK | SegL,
}

// CharGlyph returns the segment pattern for c. Lowercase letters render as
// uppercase; anything without a pattern is blank.
func CharGlyph(c byte) core.Glyph {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return font[c]
}
