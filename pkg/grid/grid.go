// Package grid draws magnified, gridlined copies of bitmaps.
//
// Each logical pixel of the source becomes a factor×factor block: a 1-pixel
// black gridline on its top and left edges and a (factor-1)×(factor-1)
// interior in the pixel's color. The closing gridlines on the right and bottom
// of the whole grid sit at offset+factor*size, so the written region is one
// pixel larger than factor*size in each direction.
//
// Rendering happens in two passes. All gridlines are drawn first, then every
// interior is filled starting one pixel past its block origin, so fills never
// land on a gridline. With factor 1 the interiors are empty and only gridlines
// are drawn.
//
//	canvas := bitmap.NewFilled(200, 100, bitmap.White)
//	if err := grid.Render(canvas, src, 10, 10, 8); err != nil {
//	    return err
//	}
package grid

import (
	"image"

	"github.com/matzehuels/pixelgrid/pkg/bitmap"
	"github.com/matzehuels/pixelgrid/pkg/errors"
)

// LineColor is the color of every gridline.
var LineColor = bitmap.Black

// Extent returns the rectangle Render writes for a width×height source at
// (offsetX, offsetY). It includes the closing gridlines.
func Extent(width, height, offsetX, offsetY, factor int) image.Rectangle {
	return image.Rect(offsetX, offsetY, offsetX+factor*width+1, offsetY+factor*height+1)
}

// Render draws source magnified by factor into target with its top-left
// gridline corner at (offsetX, offsetY).
//
// The whole written region is validated before any pixel changes: an
// out-of-range placement returns BOUNDARY_VIOLATION and leaves target
// untouched. factor below 1 returns INVALID_INPUT.
func Render(target, source *bitmap.Bitmap, offsetX, offsetY, factor int) error {
	if err := errors.ValidateFactor(factor); err != nil {
		return err
	}
	ext := Extent(source.Width(), source.Height(), offsetX, offsetY, factor)
	if !ext.In(target.Bounds()) {
		return errors.Boundary("grid %v for %dx%d source at factor %d exceeds %dx%d canvas",
			ext, source.Width(), source.Height(), factor, target.Width(), target.Height())
	}

	drawLines(target, source.Width(), source.Height(), offsetX, offsetY, factor)
	fillBlocks(target, source, offsetX, offsetY, factor)
	return nil
}

// drawLines is the first pass. Vertical lines span the magnified height and
// horizontal lines the magnified width; neither includes the far corner.
func drawLines(target *bitmap.Bitmap, w, h, ox, oy, factor int) {
	for x := 0; x <= w; x++ {
		cx := ox + x*factor
		for y := oy; y < oy+factor*h; y++ {
			target.SetRGB(cx, y, LineColor)
		}
	}
	for y := 0; y <= h; y++ {
		cy := oy + y*factor
		for x := ox; x < ox+factor*w; x++ {
			target.SetRGB(x, cy, LineColor)
		}
	}
}

// fillBlocks is the second pass. Interiors start one pixel in from each
// block origin so the gridlines from drawLines survive.
func fillBlocks(target, source *bitmap.Bitmap, ox, oy, factor int) {
	for y := 0; y < source.Height(); y++ {
		for x := 0; x < source.Width(); x++ {
			c := source.RGBAt(x, y)
			for py := oy + y*factor + 1; py < oy+(y+1)*factor; py++ {
				for px := ox + x*factor + 1; px < ox+(x+1)*factor; px++ {
					target.SetRGB(px, py, c)
				}
			}
		}
	}
}
