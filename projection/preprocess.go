package projection

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Preprocess prepares a raw cloud for projection: clouds with negative
// coordinates are displaced into the positive octant, colors given in
// [0, 1] are denormalized to [0, 255], and coincident points collapse
// to a single point whose color is the rounded mean of the duplicates
// (first-seen order, so output is deterministic). All output color
// channels are whole values.
//
// Preprocessing is optional; GenerateProjections accepts any finite
// cloud. It exists for clouds coming straight from files, whose color
// range and duplicate structure are unknown.
func Preprocess(points, colors []r3.Vector, logger golog.Logger) ([]r3.Vector, []r3.Vector, error) {
	if len(points) != len(colors) {
		return nil, nil, errors.Errorf("points and colors must align 1:1, got %d points and %d colors",
			len(points), len(colors))
	}
	if len(points) == 0 {
		return []r3.Vector{}, []r3.Vector{}, nil
	}

	points = displaceNegative(points, logger)
	colors = denormalizeColors(colors, logger)
	points, colors = mergeDuplicates(points, colors, logger)
	return points, colors, nil
}

// displaceNegative translates the cloud so no coordinate is negative.
func displaceNegative(points []r3.Vector, logger golog.Logger) []r3.Vector {
	min := points[0]
	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
	}
	if min.X >= 0 && min.Y >= 0 && min.Z >= 0 {
		return points
	}

	shift := r3.Vector{
		X: math.Min(min.X, 0),
		Y: math.Min(min.Y, 0),
		Z: math.Min(min.Z, 0),
	}
	out := make([]r3.Vector, len(points))
	for i, p := range points {
		out[i] = p.Sub(shift)
	}
	logger.Debugf("found negative points on cloud, displacement applied")
	return out
}

// denormalizeColors rescales colors to [0, 255] if every channel lies
// in [0, 1].
func denormalizeColors(colors []r3.Vector, logger golog.Logger) []r3.Vector {
	for _, c := range colors {
		if c.X < 0 || c.X > 1 || c.Y < 0 || c.Y > 1 || c.Z < 0 || c.Z > 1 {
			return colors
		}
	}
	out := make([]r3.Vector, len(colors))
	for i, c := range colors {
		out[i] = c.Mul(255)
	}
	logger.Debugf("cloud colors denormalized to the [0, 255] interval")
	return out
}

// mergeDuplicates collapses points at identical positions, averaging
// their colors channel by channel.
func mergeDuplicates(points, colors []r3.Vector, logger golog.Logger) ([]r3.Vector, []r3.Vector) {
	outPoints := make([]r3.Vector, 0, len(points))
	sums := make([]r3.Vector, 0, len(points))
	counts := make([]float64, 0, len(points))
	index := make(map[r3.Vector]int, len(points))

	for i, p := range points {
		at, seen := index[p]
		if !seen {
			at = len(outPoints)
			index[p] = at
			outPoints = append(outPoints, p)
			sums = append(sums, r3.Vector{})
			counts = append(counts, 0)
		}
		sums[at] = sums[at].Add(colors[i])
		counts[at]++
	}

	outColors := make([]r3.Vector, len(outPoints))
	for i := range outColors {
		mean := sums[i].Mul(1 / counts[i])
		outColors[i] = r3.Vector{
			X: math.Round(mean.X),
			Y: math.Round(mean.Y),
			Z: math.Round(mean.Z),
		}
	}
	if merged := len(points) - len(outPoints); merged > 0 {
		logger.Debugf("merged %d duplicate points", merged)
	}
	return outPoints, outColors
}
