// Package hal is the boundary between the renderer and the host: log
// output, a pixel buffer, keyboard state and a tick stream.
package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	// ErrStop is returned by a step function to end the run loop cleanly.
	ErrStop = errors.New("stop requested")
	// ErrNoWindow is returned by RunWindow in builds without a window backend.
	ErrNoWindow = errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyEscape
	KeyTab
	keyCount
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard reports key edges as events and the keys currently held.
type Keyboard interface {
	Events() <-chan KeyEvent
	Pressed(code KeyCode) bool
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices.
type Input interface {
	Keyboard() Keyboard
}

// TickDuration is the length of one tick on the Time stream.
const TickDuration = time.Millisecond

// Time provides a base tick stream. Each value received is the total
// number of TickDuration ticks since start; values only grow, and a
// reader that falls behind sees a jump rather than missing time.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the renderer and the host.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
