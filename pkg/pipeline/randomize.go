package pipeline

import (
	"github.com/matzehuels/pixelgrid/pkg/bitmap"
	"github.com/matzehuels/pixelgrid/pkg/errors"
	"github.com/matzehuels/pixelgrid/pkg/grid"
	"github.com/matzehuels/pixelgrid/pkg/mask"
)

// Randomize splits src into mask and unmask shares and renders them with
// [RenderShares].
func Randomize(src *bitmap.Bitmap, pixelSize int, bits mask.BitSource) (*bitmap.Bitmap, error) {
	m, u := mask.Split(src, bits)
	return RenderShares(pixelSize, m, u)
}

// RenderShares draws mask, unmask and a blank white grid side by side at the
// given pixel size. The canvas is pixelSize*((w+1)*3+1) wide and
// pixelSize*(h+2) tall.
func RenderShares(pixelSize int, m, u *bitmap.Bitmap) (*bitmap.Bitmap, error) {
	return grid.RenderRow(pixelSize, m, u, mask.Blank(m))
}

// VerifyShares checks that m and u recombine to src, reading every non-black
// source pixel as white.
func VerifyShares(src, m, u *bitmap.Bitmap) error {
	overlay, err := mask.Combine(m, u)
	if err != nil {
		return err
	}
	if overlay.Width() != src.Width() || overlay.Height() != src.Height() {
		return errors.New(errors.ErrCodeDimensionMismatch, "shares are %dx%d, source is %dx%d",
			overlay.Width(), overlay.Height(), src.Width(), src.Height())
	}
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			s, err := src.Get(x, y)
			if err != nil {
				return err
			}
			o, err := overlay.Get(x, y)
			if err != nil {
				return err
			}
			if (o == bitmap.Black) != (s == bitmap.Black) {
				return errors.New(errors.ErrCodeInternal, "shares do not reconstruct pixel (%d,%d)", x, y)
			}
		}
	}
	return nil
}
