package projection

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Face identifies one of the six axis-aligned views of the cube
// enclosing a normalized point cloud.
type Face uint8

// The six cube faces, in the order projections are returned.
const (
	FacePosX Face = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
)

// NumFaces is the number of faces in a projection set.
const NumFaces = 6

// Faces lists the cube faces in projection set order.
var Faces = [NumFaces]Face{FacePosX, FaceNegX, FacePosY, FaceNegY, FacePosZ, FaceNegZ}

// Axis returns the view axis of the face (0 for X, 1 for Y, 2 for Z).
func (f Face) Axis() int {
	return int(f) / 2
}

// Positive returns whether the viewer sits on the positive side of the
// view axis.
func (f Face) Positive() bool {
	return f%2 == 0
}

func (f Face) String() string {
	sign := "+"
	if !f.Positive() {
		sign = "-"
	}
	return sign + string(rune('X'+f.Axis()))
}

// Name returns a form of the face usable in file names.
func (f Face) Name() string {
	sign := "pos"
	if !f.Positive() {
		sign = "neg"
	}
	return fmt.Sprintf("%s%c", sign, rune('X'+f.Axis()))
}

// planeAxes returns the two axes spanning the face's pixel plane, in
// ascending axis order: X faces project onto (Y, Z), Y faces onto
// (X, Z), Z faces onto (X, Y).
func (f Face) planeAxes() (int, int) {
	switch f.Axis() {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// depth returns the distance of a normalized point from the face's
// viewing plane. Smaller is closer to the viewer.
func (f Face) depth(v r3.Vector, size int) float64 {
	c := axisValue(v, f.Axis())
	if f.Positive() {
		return float64(size-1) - c
	}
	return c
}

func axisValue(v r3.Vector, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
