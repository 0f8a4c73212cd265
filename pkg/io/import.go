package io

import (
	"io"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register the WebP decoder

	"github.com/matzehuels/pixelgrid/pkg/bitmap"
	"github.com/matzehuels/pixelgrid/pkg/errors"
)

// Decode reads an image in any registered format from r and converts it to
// an RGB bitmap. Decode does not close r.
func Decode(r io.Reader) (*bitmap.Bitmap, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileOpen, err, "decoding image")
	}
	return bitmap.FromImage(img), nil
}

// Open reads the image file at path. Missing files, unreadable files and
// undecodable data all return FILE_OPEN errors naming path.
func Open(path string) (*bitmap.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileOpen, err, "opening image file %q", path)
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileOpen, err, "opening image file %q", path)
	}
	return bitmap.FromImage(img), nil
}
