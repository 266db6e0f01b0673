// Package projection converts an unordered 3D point cloud into six 2D
// orthographic projections, one per face of an enclosing cube, each
// paired with an occupancy map of which pixels received a point.
//
// The pipeline runs coordinate normalization, per-face z-buffered
// rasterization and an optional gap-filling pass, with cropping
// available inline or as a separate step. Every stage is a pure
// function of its inputs; identical inputs always produce
// byte-identical output.
package projection

import (
	"math"
	"sync"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"

	"go.viam.com/orthographic/pointcloud"
	"go.viam.com/orthographic/rimage"
)

// Background is the sentinel color of pixels that received no point,
// as in every pixel where the occupancy map reads false.
var Background = rimage.White

// Projection is one face's image together with its occupancy map. The
// two always have identical dimensions.
type Projection struct {
	Face      Face
	Image     *rimage.Image
	Occupancy *OccupancyMap
}

// ProjectionSet holds the six face projections of one cloud, ordered
// +X, -X, +Y, -Y, +Z, -Z.
type ProjectionSet struct {
	Projections [NumFaces]Projection
}

// GenerateProjections projects the cloud onto the six faces of its
// enclosing cube. points and colors are parallel slices; color
// channels are expected in [0, 255] (see Preprocess) and are floored
// to 8 bits. filtering is the gap-filling radius in pixels, 0 to
// disable. With crop set, each face is trimmed to its occupied
// bounding rectangle, exactly as ApplyCropping would.
//
// An empty cloud is valid and yields six all-background, all
// unoccupied projections of full grid size.
func GenerateProjections(points, colors []r3.Vector, precision, filtering int, crop bool) (*ProjectionSet, error) {
	if err := validateArgs(points, colors, precision, filtering); err != nil {
		return nil, err
	}

	normalized, err := Normalize(points, precision)
	if err != nil {
		return nil, err
	}
	quantized := quantizeColors(colors)
	size := GridSize(precision)

	// faces are mutually independent; each goroutine owns its own
	// buffers and scans points in input order, so this is observably
	// identical to a sequential run
	set := &ProjectionSet{}
	var wg sync.WaitGroup
	for i, face := range Faces {
		wg.Add(1)
		i, face := i, face
		goutils.PanicCapturingGo(func() {
			defer wg.Done()
			img, ocp := rasterizeFace(face, normalized, quantized, size)
			img, ocp = fillGaps(img, ocp, filtering)
			set.Projections[i] = Projection{Face: face, Image: img, Occupancy: ocp}
		})
	}
	wg.Wait()

	if crop {
		return ApplyCropping(set), nil
	}
	return set, nil
}

// GenerateFromPointCloud flattens the cloud in its iteration order and
// generates its projections.
func GenerateFromPointCloud(pc pointcloud.PointCloud, precision, filtering int, crop bool) (*ProjectionSet, error) {
	points, colors := pointcloud.ToPositionsAndColors(pc)
	return GenerateProjections(points, colors, precision, filtering, crop)
}

// validateArgs rejects malformed input before any processing begins.
func validateArgs(points, colors []r3.Vector, precision, filtering int) error {
	var err error
	if len(points) != len(colors) {
		err = multierr.Combine(err,
			errors.Errorf("points and colors must align 1:1, got %d points and %d colors", len(points), len(colors)))
	}
	err = multierr.Combine(err, CheckPrecision(precision))
	if filtering < 0 {
		err = multierr.Combine(err, errors.Errorf("filtering radius must be non-negative, got %d", filtering))
	}
	if err != nil {
		return err
	}

	for i, p := range points {
		if !isFinite(p) {
			return errors.Errorf("point %d has a non-finite coordinate: %v", i, p)
		}
	}
	for i, c := range colors {
		if !isFinite(c) {
			return errors.Errorf("color %d has a non-finite channel: %v", i, c)
		}
	}
	return nil
}

func isFinite(v r3.Vector) bool {
	for _, f := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
