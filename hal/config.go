package hal

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width  int // framebuffer size in pixels
	Height int
	Scale  int // window pixels per framebuffer pixel
	TPS    int // updates per second
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	return c
}

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Width   int
	Height  int
	Hz      int
	Ticks   uint64 // stop after this many ticks; 0 runs until cancelled
	// ASCII prints the last frame as text when the run ends.
	ASCII bool
}
