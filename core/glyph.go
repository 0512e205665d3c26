package core

// Glyph is an opaque code for one renderable segment pattern.
// Its meaning belongs to the display driver.
type Glyph uint32

// GlyphTable is the ordered animation sequence. It must not be modified
// after it is handed to an Animator.
type GlyphTable []Glyph

// DisplaySlots is the number of character positions on the display
const DisplaySlots = 6

// DisplayBuffer holds one glyph per physical display position
type DisplayBuffer [DisplaySlots]Glyph

// Fill writes g into every slot
func (b *DisplayBuffer) Fill(g Glyph) {
	for i := range b {
		b[i] = g
	}
}
