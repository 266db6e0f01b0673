// Package main is a command that renders the six orthographic
// projections of a point cloud file into an output directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"

	"go.viam.com/orthographic/pointcloud"
	"go.viam.com/orthographic/projection"
	"go.viam.com/orthographic/rimage"
)

func main() {
	goutils.ContextualMain(mainWithArgs, golog.NewDevelopmentLogger("projector"))
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	flags := flag.NewFlagSet("projector", flag.ContinueOnError)
	precision := flags.Int("precision", 10, "bits per axis of the voxel grid")
	filtering := flags.Int("filtering", 2, "gap-filling radius in pixels, 0 to disable")
	crop := flags.Bool("crop", false, "trim each projection to its occupied bounding box")
	scale := flags.Int("scale", 1, "integer upscale factor for written images")
	occupancy := flags.Bool("occupancy", false, "also write occupancy maps")
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}
	if flags.NArg() != 2 {
		return errors.New("usage: projector [flags] <cloud file> <output dir>")
	}
	if *scale < 1 {
		return errors.Errorf("scale must be at least 1, got %d", *scale)
	}

	pc, err := pointcloud.NewFromFile(flags.Arg(0), logger)
	if err != nil {
		return errors.Wrapf(err, "cannot load %q", flags.Arg(0))
	}
	logger.Infow("loaded cloud", "file", flags.Arg(0), "points", pc.Size())

	points, colors := pointcloud.ToPositionsAndColors(pc)
	points, colors, err = projection.Preprocess(points, colors, logger)
	if err != nil {
		return err
	}

	set, err := projection.GenerateProjections(points, colors, *precision, *filtering, *crop)
	if err != nil {
		return err
	}

	outDir := flags.Arg(1)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	for i, proj := range set.Projections {
		name := fmt.Sprintf("face_%d_%s.png", i, proj.Face.Name())
		if err := writeImage(filepath.Join(outDir, name), proj.Image, *scale); err != nil {
			return err
		}
		logger.Infow("wrote projection",
			"file", name,
			"width", proj.Image.Width(),
			"height", proj.Image.Height(),
			"occupied", proj.Occupancy.Count(),
		)
		if *occupancy {
			name := fmt.Sprintf("ocp_%d_%s.png", i, proj.Face.Name())
			if err := writeImage(filepath.Join(outDir, name), proj.Occupancy.ToImage(), *scale); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeImage(path string, img image.Image, scale int) error {
	bounds := img.Bounds()
	if scale > 1 && bounds.Dx() > 0 && bounds.Dy() > 0 {
		// nearest neighbor keeps voxel pixels crisp
		img = imaging.Resize(img, bounds.Dx()*scale, bounds.Dy()*scale, imaging.NearestNeighbor)
	}
	return rimage.WriteImageToFile(path, img)
}
