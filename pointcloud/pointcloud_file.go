package pointcloud

import (
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/chenzhekl/goply"
	"github.com/edaniels/golog"
	"github.com/edaniels/lidario"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/utils"
)

// NewFromFile returns a pointcloud read in from the given file.
func NewFromFile(fn string, logger golog.Logger) (PointCloud, error) {
	switch filepath.Ext(fn) {
	case ".ply":
		return NewFromPLYFile(fn, logger)
	case ".las":
		return NewFromLASFile(fn, logger)
	default:
		return nil, errors.Errorf("do not know how to read file %q", fn)
	}
}

// NewFromLASFile returns a point cloud from reading a LAS file.
func NewFromLASFile(fn string, logger golog.Logger) (PointCloud, error) {
	lf, err := lidario.NewLasFile(fn, "r")
	if err != nil {
		return nil, err
	}
	defer utils.UncheckedErrorFunc(lf.Close)

	pc := NewWithPrealloc(lf.Header.NumberPoints)
	for i := 0; i < lf.Header.NumberPoints; i++ {
		p, err := lf.LasPoint(i)
		if err != nil {
			return nil, err
		}
		data := p.PointData()

		v := r3.Vector{X: data.X, Y: data.Y, Z: data.Z}
		var dd Data
		if lf.Header.PointFormatID == 2 && p.RgbData() != nil {
			r := uint8(p.RgbData().Red / 256)
			g := uint8(p.RgbData().Green / 256)
			b := uint8(p.RgbData().Blue / 256)
			dd = NewColoredData(color.NRGBA{r, g, b, 255})
		}

		if err := pc.Set(v, dd); err != nil {
			return nil, err
		}
	}
	logger.Debugf("loaded %d points from %q", pc.Size(), fn)
	return pc, nil
}

// NewFromPLYFile returns a point cloud from reading a PLY file.
func NewFromPLYFile(fn string, logger golog.Logger) (PointCloud, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer utils.UncheckedErrorFunc(f.Close)
	return NewFromPLY(f, logger)
}

// NewFromPLY returns a point cloud from reading PLY data.
func NewFromPLY(r io.Reader, logger golog.Logger) (PointCloud, error) {
	ply := goply.New(r)
	vertices := ply.Elements("vertex")
	pc := NewWithPrealloc(len(vertices))
	for i, v := range vertices {
		x, err := plyFloat(v, "x")
		if err != nil {
			return nil, errors.Wrapf(err, "invalid vertex %d", i)
		}
		y, err := plyFloat(v, "y")
		if err != nil {
			return nil, errors.Wrapf(err, "invalid vertex %d", i)
		}
		z, err := plyFloat(v, "z")
		if err != nil {
			return nil, errors.Wrapf(err, "invalid vertex %d", i)
		}

		var dd Data
		if _, ok := v["red"]; ok {
			red, err := plyFloat(v, "red")
			if err != nil {
				return nil, errors.Wrapf(err, "invalid vertex %d", i)
			}
			green, err := plyFloat(v, "green")
			if err != nil {
				return nil, errors.Wrapf(err, "invalid vertex %d", i)
			}
			blue, err := plyFloat(v, "blue")
			if err != nil {
				return nil, errors.Wrapf(err, "invalid vertex %d", i)
			}
			dd = NewColoredData(color.NRGBA{uint8(red), uint8(green), uint8(blue), 255})
		}

		if err := pc.Set(r3.Vector{X: x, Y: y, Z: z}, dd); err != nil {
			return nil, err
		}
	}
	logger.Debugf("loaded %d points from PLY data", pc.Size())
	return pc, nil
}

// plyFloat pulls a numeric property off a PLY vertex regardless of the
// scalar type it was declared with.
func plyFloat(vertex map[string]interface{}, name string) (float64, error) {
	raw, ok := vertex[name]
	if !ok {
		return 0, errors.Errorf("vertex has no property %q", name)
	}
	switch val := raw.(type) {
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int:
		return float64(val), nil
	case int8:
		return float64(val), nil
	case int16:
		return float64(val), nil
	case int32:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case uint:
		return float64(val), nil
	case uint8:
		return float64(val), nil
	case uint16:
		return float64(val), nil
	case uint32:
		return float64(val), nil
	case uint64:
		return float64(val), nil
	default:
		return 0, errors.Errorf("property %q has non-numeric type %T", name, raw)
	}
}
