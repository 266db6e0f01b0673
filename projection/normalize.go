package projection

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Supported precision range. The upper bound keeps 2^precision pixel
// index arithmetic comfortably inside int on all platforms.
const (
	MinPrecision = 1
	MaxPrecision = 16
)

// CheckPrecision errors if the given precision is outside the
// supported range.
func CheckPrecision(precision int) error {
	if precision < MinPrecision || precision > MaxPrecision {
		return errors.Errorf("precision must be in [%d, %d], got %d", MinPrecision, MaxPrecision, precision)
	}
	return nil
}

// GridSize returns the side length of the voxel grid and of the
// uncropped projection images for the given precision.
func GridSize(precision int) int {
	return 1 << precision
}

// Normalize maps the cloud into the voxel grid [0, 2^precision)^3
// with a single uniform scale and translation derived from the
// bounding box of the whole set, preserving relative geometry. The
// scale is (2^precision - 1) / largest extent, so every transformed
// coordinate lies in [0, 2^precision - 1] and flooring to the grid
// never leaves the cube. A cloud with zero extent on all axes maps to
// the grid center.
//
// The same transform serves all six views; callers must not rescale
// per view.
func Normalize(points []r3.Vector, precision int) ([]r3.Vector, error) {
	if err := CheckPrecision(precision); err != nil {
		return nil, err
	}
	out := make([]r3.Vector, len(points))
	if len(points) == 0 {
		return out, nil
	}

	min := points[0]
	max := points[0]
	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
		max.Z = math.Max(max.Z, p.Z)
	}

	size := GridSize(precision)
	extent := math.Max(max.X-min.X, math.Max(max.Y-min.Y, max.Z-min.Z))
	if extent == 0 {
		center := float64(size) / 2
		for i := range out {
			out[i] = r3.Vector{X: center, Y: center, Z: center}
		}
		return out, nil
	}

	scale := float64(size-1) / extent
	for i, p := range points {
		out[i] = r3.Vector{
			X: (p.X - min.X) * scale,
			Y: (p.Y - min.Y) * scale,
			Z: (p.Z - min.Z) * scale,
		}
	}
	return out, nil
}
