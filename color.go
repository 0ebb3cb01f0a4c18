package astra

import (
	"fmt"
	"image/color"
)

// Color is an 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// HexColor parses "rgb", "rrggbb" or "#rrggbb".
func HexColor(x string) Color {
	if len(x) > 0 && x[0] == '#' {
		x = x[1:]
	}
	var r, g, b uint8
	switch len(x) {
	case 3:
		fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r = r*16 + r
		g = g*16 + g
		b = b*16 + b
	case 6:
		fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	}
	return Color{r, g, b}
}

// MulScalar scales each channel, clamping to the 8-bit range.
func (c Color) MulScalar(s float64) Color {
	return Color{
		uint8(Clamp(float64(c.R)*s, 0, 255)),
		uint8(Clamp(float64(c.G)*s, 0, 255)),
		uint8(Clamp(float64(c.B)*s, 0, 255)),
	}
}

// Lerp blends c toward b by t, with t clamped to [0, 1].
func (c Color) Lerp(b Color, t float64) Color {
	t = Clamp(t, 0, 1)
	return Color{
		uint8(float64(c.R) + (float64(b.R)-float64(c.R))*t),
		uint8(float64(c.G) + (float64(b.G)-float64(c.G))*t),
		uint8(float64(c.B) + (float64(b.B)-float64(c.B))*t),
	}
}

// Mean returns the mean channel value on 0..1.
func (c Color) Mean() float64 {
	return (float64(c.R) + float64(c.G) + float64(c.B)) / (3 * 255)
}

// Pack returns the color as 0x00RRGGBB.
func (c Color) Pack() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func UnpackColor(x uint32) Color {
	return Color{uint8(x >> 16), uint8(x >> 8), uint8(x)}
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, 255}
}
