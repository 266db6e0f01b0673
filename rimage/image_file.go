package rimage

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/lmittmann/ppm"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// WriteImageToFile writes the image to the given file path, picking
// the encoding from the file extension (.png, .jpg/.jpeg, .ppm).
func WriteImageToFile(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()

	switch filepath.Ext(path) {
	case ".png":
		return png.Encode(f, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, nil)
	case ".ppm":
		return ppm.Encode(f, img)
	default:
		return errors.Errorf("rimage.WriteImageToFile unsupported format: %q", filepath.Ext(path))
	}
}
