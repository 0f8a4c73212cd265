// Package strip interleaves two same-sized images into alternating vertical
// strips.
//
// The source width is cut into segments. Each segment is copied from the
// first image and then from the second, side by side, so the output is twice
// as wide as the inputs. A short black tick at the top and bottom of the
// output marks the left edge of every copied strip.
//
// Segment widths use truncating division: every segment is width/n columns
// wide except the last, which also takes the remainder. A width-10 image cut
// into 3 segments yields widths 3, 3 and 4.
package strip

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/matzehuels/pixelgrid/pkg/bitmap"
	"github.com/matzehuels/pixelgrid/pkg/errors"
)

// TickLength is the number of rows below the top edge (and above the bottom
// edge) that a boundary tick covers, in addition to the edge row itself.
const TickLength = 10

// TickColor is the color of the boundary ticks.
var TickColor = bitmap.Black

// Segment is a column range [X, X+Width) of the source images.
type Segment struct {
	X     int
	Width int
}

// Segments cuts width into n segments, left to right. The last segment
// absorbs the remainder of the truncating division. n must be at least 1;
// when n exceeds width all segments but the last are empty.
func Segments(width, n int) ([]Segment, error) {
	if err := errors.ValidateSegments(n, width); err != nil {
		return nil, err
	}
	sw := width / n
	segs := make([]Segment, n)
	for i := range segs {
		segs[i] = Segment{X: i * sw, Width: sw}
	}
	segs[n-1].Width = width - sw*(n-1)
	return segs, nil
}

// Interleave builds a 2×width canvas alternating strips of image1 and image2.
// The images must share width and height; a mismatch is reported before any
// pixel is copied.
func Interleave(image1, image2 *bitmap.Bitmap, numSegments int) (*bitmap.Bitmap, error) {
	if err := CheckDimensions(image1, image2); err != nil {
		return nil, err
	}
	segs, err := Segments(image1.Width(), numSegments)
	if err != nil {
		return nil, err
	}

	h := image1.Height()
	out := bitmap.New(2*image1.Width(), h)
	for _, s := range segs {
		left := 2 * s.X
		right := left + s.Width
		if err := copyStrip(out, image1, s, left); err != nil {
			return nil, err
		}
		if err := drawTick(out, left); err != nil {
			return nil, err
		}
		if err := copyStrip(out, image2, s, right); err != nil {
			return nil, err
		}
		if err := drawTick(out, right); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// CheckDimensions returns DIMENSION_MISMATCH if a and b differ in width or
// height.
func CheckDimensions(a, b *bitmap.Bitmap) error {
	if a.Width() != b.Width() {
		return errors.New(errors.ErrCodeDimensionMismatch, "images must have the same width (%d != %d)", a.Width(), b.Width())
	}
	if a.Height() != b.Height() {
		return errors.New(errors.ErrCodeDimensionMismatch, "images must have the same height (%d != %d)", a.Height(), b.Height())
	}
	return nil
}

// copyStrip copies the columns of s from src into dst starting at column dx.
func copyStrip(dst, src *bitmap.Bitmap, s Segment, dx int) error {
	r := image.Rect(dx, 0, dx+s.Width, src.Height())
	if !dst.Contains(r) {
		return errors.Boundary("strip %v exceeds %dx%d canvas", r, dst.Width(), dst.Height())
	}
	xdraw.Draw(dst, r, src, image.Pt(s.X, 0), xdraw.Src)
	return nil
}

// drawTick marks column x at the top and bottom of dst. On images shorter
// than a tick the two marks overlap and are clipped to the image.
func drawTick(dst *bitmap.Bitmap, x int) error {
	h := dst.Height()
	top := image.Rect(x, 0, x+1, min(TickLength+1, h))
	bottom := image.Rect(x, max(h-TickLength-1, 0), x+1, h)
	if err := dst.FillRect(top, TickColor); err != nil {
		return err
	}
	return dst.FillRect(bottom, TickColor)
}
