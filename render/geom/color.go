package geom

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

var (
	Black = RGB(0, 0, 0)
	White = RGB(0xFF, 0xFF, 0xFF)
)

// MulScalar scales the RGB channels by s, clamped to [0, 1]. Alpha is kept.
func (c Color) MulScalar(s float32) Color {
	if s < 0 {
		s = 0
	}
	if s > 1 {
		s = 1
	}
	t := uint32(s * 255)
	mul := func(ch uint8) uint8 {
		return uint8((uint32(ch) * t) / 255)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}

// Ramp maps a light intensity in [0, 1] to a face color.
type Ramp func(intensity float32) Color

// Smooth shades base continuously by intensity.
func Smooth(base Color) Ramp {
	return func(intensity float32) Color {
		return base.MulScalar(intensity)
	}
}

// Banded shades base in a fixed number of steps, giving the flat
// posterized look of a limited palette. levels < 2 falls back to Smooth.
func Banded(base Color, levels int) Ramp {
	if levels < 2 {
		return Smooth(base)
	}
	step := 1 / float32(levels-1)
	return func(intensity float32) Color {
		if intensity < 0 {
			intensity = 0
		}
		if intensity > 1 {
			intensity = 1
		}
		band := int(intensity/step + 0.5)
		return base.MulScalar(float32(band) * step)
	}
}
