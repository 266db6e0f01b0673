package pointcloud

import (
	"github.com/golang/geo/r3"
)

// DefaultColor is used for points that carry no color of their own.
// Mid-gray keeps colorless clouds visible against the white projection
// background.
var DefaultColor = r3.Vector{X: 128, Y: 128, Z: 128}

// ToPositionsAndColors flattens a cloud into parallel position and
// color slices in the cloud's iteration order. Color channels are in
// [0, 255]; points without color data get DefaultColor.
func ToPositionsAndColors(cloud PointCloud) ([]r3.Vector, []r3.Vector) {
	positions := make([]r3.Vector, 0, cloud.Size())
	colors := make([]r3.Vector, 0, cloud.Size())
	cloud.Iterate(func(p r3.Vector, d Data) bool {
		positions = append(positions, p)
		if d != nil && d.HasColor() {
			r, g, b := d.RGB255()
			colors = append(colors, r3.Vector{X: float64(r), Y: float64(g), Z: float64(b)})
		} else {
			colors = append(colors, DefaultColor)
		}
		return true
	})
	return positions, colors
}
