package io

import (
	"io"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/pixelgrid/pkg/bitmap"
	"github.com/matzehuels/pixelgrid/pkg/errors"
)

// Encode writes b to w in the named format ("png", "jpg", "bmp", ...).
func Encode(w io.Writer, b *bitmap.Bitmap, format string) error {
	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "format %q", format)
	}
	if err := imaging.Encode(w, b, f); err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "encoding %s", f)
	}
	return nil
}

// Save writes b to path, choosing the format from the file extension.
// An existing file is overwritten.
func Save(b *bitmap.Bitmap, path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "saving %q (extension %q)", path, filepath.Ext(path))
	}
	if err := imaging.Save(b, path); err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "saving image file %q", path)
	}
	return nil
}
