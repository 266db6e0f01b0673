// Package rimage defines a color image buffer and simple utilities to
// manipulate and write it.
package rimage

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB color. There is no alpha channel; colors are
// assumed opaque.
type Color struct {
	R, G, B uint8
}

// Commonly used colors.
var (
	White = NewColor(255, 255, 255)
	Black = NewColor(0, 0, 0)
)

// NewColor returns a color for the given RGB values.
func NewColor(r, g, b uint8) Color {
	return Color{r, g, b}
}

// NewColorFromColor takes in a go Color and finds the best
// conversion to our Color.
func NewColorFromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

func (c Color) String() string {
	return c.Hex()
}

// Hex returns the RGB hexadecimal representation of the color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%.2x%.2x%.2x", c.R, c.G, c.B)
}

// RGBA returns the color as a color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(255)
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a |= a << 8
	return
}

func (c Color) toColorful() colorful.Color {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		panic(fmt.Errorf("bad color %v", c))
	}
	return cc
}

// DistanceLab returns the perceptual distance to the other color in
// CIE L*a*b* space.
func (c Color) DistanceLab(b Color) float64 {
	return c.toColorful().DistanceLab(b.toColorful())
}

// AverageColor returns the arithmetic mean of the given colors,
// channel by channel, rounding half up. The result does not depend on
// the order of the input.
func AverageColor(colors []Color) Color {
	n := uint64(len(colors))
	if n == 0 {
		return Black
	}
	var r, g, b uint64
	for _, c := range colors {
		r += uint64(c.R)
		g += uint64(c.G)
		b += uint64(c.B)
	}
	return Color{
		uint8((r + n/2) / n),
		uint8((g + n/2) / n),
		uint8((b + n/2) / n),
	}
}
