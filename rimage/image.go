package rimage

import (
	"image"
	"image/color"
)

// Image is a row-major RGB image. The zero-size image is valid and
// holds no pixels.
type Image struct {
	data          []Color
	width, height int
}

// NewImage returns an image of the given dimensions with all pixels
// black.
func NewImage(width, height int) *Image {
	return &Image{
		data:   make([]Color, width*height),
		width:  width,
		height: height,
	}
}

// NewImageFromStdImage copies a go image into an Image.
func NewImageFromStdImage(img image.Image) *Image {
	bounds := img.Bounds()
	out := NewImage(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.setXY(x-bounds.Min.X, y-bounds.Min.Y, NewColorFromColor(img.At(x, y)))
		}
	}
	return out
}

// ColorModel returns the image's color model.
func (i *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// In returns whether or not a point is within the image's bounds.
func (i *Image) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < i.width && y < i.height
}

func (i *Image) k(p image.Point) int {
	return i.kxy(p.X, p.Y)
}

func (i *Image) kxy(x, y int) int {
	return (y * i.width) + x
}

// Bounds returns the dimensions of the image.
func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.width, i.height)
}

// Width returns the horizontal width of the image.
func (i *Image) Width() int {
	return i.width
}

// Height returns the vertical height of the image.
func (i *Image) Height() int {
	return i.height
}

// At returns the color at the given point as a go color.
func (i *Image) At(x, y int) color.Color {
	return i.data[i.kxy(x, y)]
}

// Get returns the color at the given point.
func (i *Image) Get(p image.Point) Color {
	return i.data[i.k(p)]
}

// GetXY returns the color at the given position.
func (i *Image) GetXY(x, y int) Color {
	return i.data[i.kxy(x, y)]
}

func (i *Image) setXY(x, y int, c Color) {
	i.data[i.kxy(x, y)] = c
}

// SetXY sets the color at the given position.
func (i *Image) SetXY(x, y int, c Color) {
	i.setXY(x, y, c)
}

// Set sets the color at the given point.
func (i *Image) Set(p image.Point, c Color) {
	i.data[i.k(p)] = c
}

// Clone makes a deep copy of the image.
func (i *Image) Clone() *Image {
	out := NewImage(i.width, i.height)
	copy(out.data, i.data)
	return out
}

// SubImage returns a new image copied from the given region. Regions
// extending past the image bounds are clipped; an empty region yields
// a zero-size image.
func (i *Image) SubImage(r image.Rectangle) *Image {
	r = r.Intersect(i.Bounds())
	if r.Empty() {
		return NewImage(0, 0)
	}
	out := NewImage(r.Dx(), r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		copy(
			out.data[out.kxy(0, y-r.Min.Y):out.kxy(0, y-r.Min.Y)+r.Dx()],
			i.data[i.kxy(r.Min.X, y):i.kxy(r.Max.X, y)],
		)
	}
	return out
}

// WriteTo writes the image to the given file.
func (i *Image) WriteTo(fn string) error {
	return WriteImageToFile(fn, i)
}
