package rimage

import (
	"image/color"
	"testing"

	"go.viam.com/test"
)

func TestColorBasics(t *testing.T) {
	c := NewColor(17, 128, 255)
	test.That(t, c.Hex(), test.ShouldEqual, "#1180ff")
	test.That(t, c.String(), test.ShouldEqual, "#1180ff")

	test.That(t, NewColorFromColor(color.NRGBA{17, 128, 255, 255}), test.ShouldResemble, c)
	test.That(t, NewColorFromColor(c), test.ShouldResemble, c)

	r, g, b, a := White.RGBA()
	test.That(t, r, test.ShouldEqual, uint32(0xffff))
	test.That(t, g, test.ShouldEqual, uint32(0xffff))
	test.That(t, b, test.ShouldEqual, uint32(0xffff))
	test.That(t, a, test.ShouldEqual, uint32(0xffff))
}

func TestColorDistanceLab(t *testing.T) {
	test.That(t, Black.DistanceLab(Black), test.ShouldAlmostEqual, 0)
	test.That(t, White.DistanceLab(Black), test.ShouldBeGreaterThan, 0.5)

	red := NewColor(255, 0, 0)
	nearRed := NewColor(250, 5, 5)
	test.That(t, red.DistanceLab(nearRed), test.ShouldBeLessThan, red.DistanceLab(White))
}

func TestAverageColor(t *testing.T) {
	test.That(t, AverageColor(nil), test.ShouldResemble, Black)
	test.That(t, AverageColor([]Color{White}), test.ShouldResemble, White)

	avg := AverageColor([]Color{
		NewColor(100, 0, 10),
		NewColor(101, 0, 20),
	})
	test.That(t, avg, test.ShouldResemble, NewColor(101, 0, 15))

	// order independent
	avg2 := AverageColor([]Color{
		NewColor(101, 0, 20),
		NewColor(100, 0, 10),
	})
	test.That(t, avg2, test.ShouldResemble, avg)
}
