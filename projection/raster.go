package projection

import (
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/orthographic/rimage"
)

// rasterizeFace projects every normalized point onto one face of the
// cube and resolves pixel collisions by keeping the point nearest to
// the viewing plane. Points scan in input order and only a strictly
// smaller depth replaces an earlier write, so equal-depth collisions
// keep the first-seen point.
//
// Points whose floored plane coordinates fall outside the grid would
// indicate a normalizer defect; they are skipped, never written out of
// bounds.
func rasterizeFace(face Face, points []r3.Vector, colors []rimage.Color, size int) (*rimage.Image, *OccupancyMap) {
	img := rimage.NewImage(size, size)
	ocp := NewOccupancyMap(size, size)

	depths := make([]float64, size*size)
	for i := range depths {
		depths[i] = math.Inf(1)
	}

	a1, a2 := face.planeAxes()
	for i, p := range points {
		x := int(math.Floor(axisValue(p, a1)))
		y := int(math.Floor(axisValue(p, a2)))
		if !ocp.Contains(x, y) {
			continue
		}
		d := face.depth(p, size)
		k := y*size + x
		if d < depths[k] {
			depths[k] = d
			img.SetXY(x, y, colors[i])
			ocp.Set(x, y, true)
		}
	}

	// the background sentinel only exists in the public buffers;
	// pixel state is tracked by the occupancy flag above
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !ocp.Get(x, y) {
				img.SetXY(x, y, Background)
			}
		}
	}
	return img, ocp
}

// quantizeColors converts float color triples to 8-bit colors by
// flooring, clamping channels to [0, 255].
func quantizeColors(colors []r3.Vector) []rimage.Color {
	out := make([]rimage.Color, len(colors))
	for i, c := range colors {
		out[i] = rimage.NewColor(
			quantizeChannel(c.X),
			quantizeChannel(c.Y),
			quantizeChannel(c.Z),
		)
	}
	return out
}

func quantizeChannel(v float64) uint8 {
	v = math.Floor(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
