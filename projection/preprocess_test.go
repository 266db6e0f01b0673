package projection

import (
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestPreprocessDisplacement(t *testing.T) {
	logger := golog.NewTestLogger(t)
	pts := []r3.Vector{
		{X: -4, Y: 2, Z: -1},
		{X: 0, Y: 3, Z: 5},
	}
	cols := []r3.Vector{
		{X: 10, Y: 10, Z: 10},
		{X: 20, Y: 20, Z: 20},
	}
	outPts, outCols, err := Preprocess(pts, cols, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, outPts[0], test.ShouldResemble, r3.Vector{X: 0, Y: 2, Z: 0})
	test.That(t, outPts[1], test.ShouldResemble, r3.Vector{X: 4, Y: 3, Z: 6})
	test.That(t, outCols, test.ShouldResemble, cols)
}

func TestPreprocessNoDisplacementNeeded(t *testing.T) {
	logger := golog.NewTestLogger(t)
	pts := []r3.Vector{
		{X: 1, Y: 2, Z: 3},
		{X: 4, Y: 5, Z: 6},
	}
	cols := []r3.Vector{
		{X: 10, Y: 10, Z: 10},
		{X: 20, Y: 20, Z: 20},
	}
	outPts, _, err := Preprocess(pts, cols, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, outPts, test.ShouldResemble, pts)
}

func TestPreprocessColorDenormalization(t *testing.T) {
	logger := golog.NewTestLogger(t)
	pts := []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 1},
	}
	cols := []r3.Vector{
		{X: 1, Y: 0.5, Z: 0},
		{X: 0.2, Y: 0.2, Z: 0.2},
	}
	_, outCols, err := Preprocess(pts, cols, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, outCols[0], test.ShouldResemble, r3.Vector{X: 255, Y: 128, Z: 0})
	test.That(t, outCols[1], test.ShouldResemble, r3.Vector{X: 51, Y: 51, Z: 51})

	// any channel outside [0, 1] means colors are already 8-bit range;
	// merging still rounds channels to whole values
	cols = []r3.Vector{
		{X: 1, Y: 0.5, Z: 0},
		{X: 200, Y: 0.2, Z: 0.2},
	}
	_, outCols, err = Preprocess(pts, cols, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, outCols, test.ShouldResemble, []r3.Vector{{X: 1, Y: 1, Z: 0}, {X: 200, Y: 0, Z: 0}})
}

func TestPreprocessDuplicateMerging(t *testing.T) {
	logger := golog.NewTestLogger(t)
	pts := []r3.Vector{
		{X: 1, Y: 1, Z: 1},
		{X: 2, Y: 2, Z: 2},
		{X: 1, Y: 1, Z: 1},
	}
	cols := []r3.Vector{
		{X: 100, Y: 10, Z: 0},
		{X: 50, Y: 50, Z: 50},
		{X: 101, Y: 20, Z: 0},
	}
	outPts, outCols, err := Preprocess(pts, cols, logger)
	test.That(t, err, test.ShouldBeNil)
	// first-seen order survives the merge
	test.That(t, outPts, test.ShouldResemble, []r3.Vector{{X: 1, Y: 1, Z: 1}, {X: 2, Y: 2, Z: 2}})
	// duplicate colors average with rounding half away from zero
	test.That(t, outCols[0], test.ShouldResemble, r3.Vector{X: 101, Y: 15, Z: 0})
	test.That(t, outCols[1], test.ShouldResemble, r3.Vector{X: 50, Y: 50, Z: 50})
}

func TestPreprocessValidation(t *testing.T) {
	logger := golog.NewTestLogger(t)
	_, _, err := Preprocess([]r3.Vector{{X: 1, Y: 1, Z: 1}}, nil, logger)
	test.That(t, err, test.ShouldNotBeNil)

	outPts, outCols, err := Preprocess(nil, nil, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, outPts, test.ShouldBeEmpty)
	test.That(t, outCols, test.ShouldBeEmpty)
}
