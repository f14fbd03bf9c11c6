package hal

import "github.com/golang/glog"

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
}

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// New returns a host HAL with a width×height framebuffer. Non-positive
// sizes fall back to DefaultWidth and DefaultHeight.
func New(width, height int) HAL {
	return newHost(width, height)
}

func newHost(width, height int) *hostHAL {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &hostHAL{
		logger: &hostLogger{},
		fb:     newHostFramebuffer(width, height),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

// hostLogger sends every line to glog at INFO severity.
type hostLogger struct{}

func (hostLogger) WriteLineString(s string) { glog.InfoDepth(1, s) }

func (hostLogger) WriteLineBytes(b []byte) { glog.InfoDepth(1, string(b)) }
