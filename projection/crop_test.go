package projection

import (
	"image"
	"testing"

	"go.viam.com/test"
)

func TestCropMinimal(t *testing.T) {
	img, ocp := backgroundPair(8)
	occupy(img, ocp, 2, 3, red)
	occupy(img, ocp, 5, 6, green)

	cropped := Crop(Projection{Face: FacePosX, Image: img, Occupancy: ocp})
	test.That(t, cropped.Image.Width(), test.ShouldEqual, 4)
	test.That(t, cropped.Image.Height(), test.ShouldEqual, 4)
	test.That(t, cropped.Occupancy.Width(), test.ShouldEqual, 4)
	test.That(t, cropped.Occupancy.Height(), test.ShouldEqual, 4)

	// no occupied pixel lost, relative positions preserved
	test.That(t, cropped.Occupancy.Count(), test.ShouldEqual, 2)
	test.That(t, cropped.Image.GetXY(0, 0), test.ShouldResemble, red)
	test.That(t, cropped.Image.GetXY(3, 3), test.ShouldResemble, green)

	// minimal: the cropped bounding box touches all four edges
	box, ok := cropped.Occupancy.BoundingBox()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, box, test.ShouldResemble, image.Rect(0, 0, 4, 4))
}

func TestCropEmpty(t *testing.T) {
	img, ocp := backgroundPair(8)
	cropped := Crop(Projection{Face: FaceNegZ, Image: img, Occupancy: ocp})
	test.That(t, cropped.Image.Width(), test.ShouldEqual, 0)
	test.That(t, cropped.Image.Height(), test.ShouldEqual, 0)
	test.That(t, cropped.Occupancy.Count(), test.ShouldEqual, 0)
	test.That(t, cropped.Face, test.ShouldEqual, FaceNegZ)
}

func TestCropIdempotent(t *testing.T) {
	img, ocp := backgroundPair(8)
	occupy(img, ocp, 1, 1, red)
	occupy(img, ocp, 6, 2, blue)

	once := Crop(Projection{Face: FacePosY, Image: img, Occupancy: ocp})
	twice := Crop(once)
	test.That(t, twice, test.ShouldResemble, once)
}

func TestApplyCroppingIndependentPerFace(t *testing.T) {
	set := &ProjectionSet{}
	for i, face := range Faces {
		img, ocp := backgroundPair(8)
		// a different footprint per face
		occupy(img, ocp, i, i, red)
		if i%2 == 0 {
			occupy(img, ocp, i, (i+3)%8, green)
		}
		set.Projections[i] = Projection{Face: face, Image: img, Occupancy: ocp}
	}

	cropped := ApplyCropping(set)
	for i, p := range cropped.Projections {
		box, ok := p.Occupancy.BoundingBox()
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, box.Min, test.ShouldResemble, image.Point{0, 0})
		test.That(t, box.Max.X, test.ShouldEqual, p.Occupancy.Width())
		test.That(t, box.Max.Y, test.ShouldEqual, p.Occupancy.Height())
		test.That(t, p.Occupancy.Count(), test.ShouldEqual, set.Projections[i].Occupancy.Count())
	}
	// the original set is untouched
	test.That(t, set.Projections[0].Image.Width(), test.ShouldEqual, 8)
}
