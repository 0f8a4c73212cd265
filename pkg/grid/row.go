package grid

import (
	"github.com/matzehuels/pixelgrid/pkg/bitmap"
	"github.com/matzehuels/pixelgrid/pkg/errors"
)

// RowSize returns the canvas size RenderRow allocates for n grids of
// width×height logical pixels: one block of margin on every side and one
// block between neighbours.
func RowSize(n, width, height, factor int) (w, h int) {
	return factor * ((width+1)*n + 1), factor * (height + 2)
}

// RenderRow lays out same-sized sources left to right on a white canvas,
// each rendered as a grid at the given factor. Grid i has its origin at
// (factor*(1+i*(width+1)), factor).
func RenderRow(factor int, sources ...*bitmap.Bitmap) (*bitmap.Bitmap, error) {
	if err := errors.ValidateFactor(factor); err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no bitmaps to render")
	}
	width, height := sources[0].Width(), sources[0].Height()
	for i, src := range sources[1:] {
		if src.Width() != width || src.Height() != height {
			return nil, errors.New(errors.ErrCodeDimensionMismatch,
				"grid %d is %dx%d, want %dx%d", i+1, src.Width(), src.Height(), width, height)
		}
	}

	cw, ch := RowSize(len(sources), width, height, factor)
	canvas := bitmap.NewFilled(cw, ch, bitmap.White)
	for i, src := range sources {
		if err := Render(canvas, src, factor*(1+i*(width+1)), factor, factor); err != nil {
			return nil, err
		}
	}
	return canvas, nil
}
