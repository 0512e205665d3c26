package core

// Animator cycles every display slot through a glyph table, one glyph per
// frame, forever.
type Animator struct {
	table    GlyphTable
	render   Renderer
	delay    DelayFunc
	interval uint32

	buffer DisplayBuffer
	index  uint32
}

// NewAnimator creates an animator over table. It panics on an empty table.
func NewAnimator(table GlyphTable, render Renderer, delay DelayFunc, interval uint32) *Animator {
	if len(table) == 0 {
		panic("animator: empty glyph table")
	}
	if delay == nil {
		delay = Delay
	}
	return &Animator{
		table:    table,
		render:   render,
		delay:    delay,
		interval: interval,
	}
}

// Step runs one animation cycle: fill, render, wait, advance.
func (a *Animator) Step() {
	g := a.table[a.index]
	a.buffer.Fill(g)

	if debugEnabled {
		DebugPrintln("frame idx=" + utoa(a.index) + " glyph=0x" + hex(uint32(g)))
	}

	a.render.WriteSegments(&a.buffer)
	a.delay(a.interval)

	a.index++
	if a.index >= uint32(len(a.table)) {
		a.index = 0
	}
}

// Run steps the animation forever. It never returns.
func (a *Animator) Run() {
	for {
		a.Step()
	}
}

// Index returns the rotation index of the next frame
func (a *Animator) Index() uint32 {
	return a.index
}

// Buffer returns a copy of the last rendered frame
func (a *Animator) Buffer() DisplayBuffer {
	return a.buffer
}
