// Package mask splits a black/white image into two shares for visual secret
// sharing.
//
// [Split] draws one random bit r per pixel. The mask share is black where r
// is set; the unmask share is black where (source is black) XOR r. Neither
// share alone says anything about the source, but overlaying them with XOR
// recovers it exactly, which [Combine] does.
//
// Only equality with [bitmap.Black] matters in the source. Every other color,
// white or not, is treated as "not black".
//
//	m, u := mask.Split(src, mask.NewPCG(42))
//	overlay, _ := mask.Combine(m, u)
//	overlay.Equal(src) // true for black/white sources
package mask

import (
	"github.com/matzehuels/pixelgrid/pkg/bitmap"
	"github.com/matzehuels/pixelgrid/pkg/errors"
)

// Split returns the mask and unmask shares of source, both the same size as
// source. Pixels are visited column by column (x outer, y inner) and each
// consumes exactly one bit, so bit i lands on (i/height, i%height).
func Split(source *bitmap.Bitmap, bits BitSource) (mask, unmask *bitmap.Bitmap) {
	w, h := source.Width(), source.Height()
	mask = bitmap.New(w, h)
	unmask = bitmap.New(w, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			r := bits.Bool()
			mask.SetRGB(x, y, shade(r))
			unmask.SetRGB(x, y, shade((source.RGBAt(x, y) == bitmap.Black) != r))
		}
	}
	return mask, unmask
}

// Combine overlays two shares: a pixel is black when exactly one share is
// black there. For shares produced by Split it reconstructs the source.
func Combine(mask, unmask *bitmap.Bitmap) (*bitmap.Bitmap, error) {
	if mask.Width() != unmask.Width() || mask.Height() != unmask.Height() {
		return nil, errors.New(errors.ErrCodeDimensionMismatch,
			"shares differ in size (%dx%d != %dx%d)", mask.Width(), mask.Height(), unmask.Width(), unmask.Height())
	}
	out := bitmap.New(mask.Width(), mask.Height())
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			c := shade((mask.RGBAt(x, y) == bitmap.Black) != (unmask.RGBAt(x, y) == bitmap.Black))
			if err := out.Put(x, y, c); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Blank returns an all-white bitmap the size of source.
func Blank(source *bitmap.Bitmap) *bitmap.Bitmap {
	return bitmap.NewFilled(source.Width(), source.Height(), bitmap.White)
}

func shade(black bool) bitmap.RGB {
	if black {
		return bitmap.Black
	}
	return bitmap.White
}
