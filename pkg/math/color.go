package math

// Color4 is an RGBA color with components nominally in [0, 1].
// Arithmetic does not clamp; call Clamp when a displayable value is needed.
type Color4 struct {
	R, G, B, A float32
}

// RGB returns an opaque color.
func RGB(r, g, b float32) Color4 {
	return Color4{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color with explicit alpha.
func RGBA(r, g, b, a float32) Color4 {
	return Color4{R: r, G: g, B: b, A: a}
}

// Add returns c + other, component-wise.
func (c Color4) Add(other Color4) Color4 {
	return Color4{c.R + other.R, c.G + other.G, c.B + other.B, c.A + other.A}
}

// Mul returns the component-wise product.
func (c Color4) Mul(other Color4) Color4 {
	return Color4{c.R * other.R, c.G * other.G, c.B * other.B, c.A * other.A}
}

// Scale multiplies every component, alpha included.
func (c Color4) Scale(s float32) Color4 {
	return Color4{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Clamp returns the color with every component limited to [0, 1].
func (c Color4) Clamp() Color4 {
	return Color4{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// Bytes returns the RGB components scaled to [0, 255].
func (c Color4) Bytes() (r, g, b uint8) {
	cc := c.Clamp()
	return uint8(cc.R * 255), uint8(cc.G * 255), uint8(cc.B * 255)
}

// Array returns the components as an array (for GL uploads).
func (c Color4) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

func clamp01(v float32) float32 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}
