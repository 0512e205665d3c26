package core

// Renderer accepts a full display frame. Failures stay inside the
// implementation; the caller never observes them.
type Renderer interface {
	WriteSegments(buf *DisplayBuffer)
}

// DisplayDriver is the segment display interface that core code uses.
// Platform-specific implementations handle the bus and pin mapping.
type DisplayDriver interface {
	Renderer

	// Init brings the display up and returns a status code (0 on success)
	Init() int32

	// WriteString shows text, one character per slot, truncated to fit
	WriteString(text string)

	// Clear blanks every slot
	Clear()

	// Glyphs returns the rotation table for the animation
	Glyphs() GlyphTable
}

// Global singleton used by core code.
var displayDriver DisplayDriver

// SetDisplayDriver is called by target-specific code to register its driver.
func SetDisplayDriver(d DisplayDriver) {
	displayDriver = d
}

// MustDisplay returns the configured driver or panics if missing.
func MustDisplay() DisplayDriver {
	if displayDriver == nil {
		panic("display driver not configured")
	}
	return displayDriver
}
