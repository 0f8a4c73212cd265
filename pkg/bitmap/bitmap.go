// Package bitmap provides the in-memory raster used by every pixelgrid
// transformation: a width×height grid of 8-bit RGB pixels.
//
// A [Bitmap] implements [image.Image] and [draw.Image], so it can be handed to
// encoders and compositing routines directly. Pixel access through [Bitmap.Get],
// [Bitmap.Put] and [Bitmap.FillRect] is bounds-checked and reports a
// BOUNDARY_VIOLATION error instead of panicking; the image.Image methods follow
// the standard library convention of ignoring out-of-range coordinates.
//
// # Colors
//
// Two sentinel colors drive the mask logic: [Black] (0,0,0) and [White]
// (255,255,255). Any other color is carried through verbatim.
//
// # Lifecycle
//
// Bitmaps are created with [New], [NewFilled] or [FromImage], populated by a
// single writer, then either copied into a larger canvas or persisted.
package bitmap

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/pixelgrid/pkg/errors"
)

// bytesPerPixel is the packed size of one RGB pixel.
const bytesPerPixel = 3

// RGB is an opaque 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Sentinel colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{0xff, 0xff, 0xff}
)

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Model converts any color to RGB, dropping alpha without blending.
var Model = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{n.R, n.G, n.B}
}

// Bitmap is a width×height grid of RGB pixels stored row-major.
// The zero value is an empty 0×0 bitmap.
type Bitmap struct {
	pix    []uint8
	width  int
	height int
}

var _ draw.Image = (*Bitmap)(nil)

// New returns a width×height bitmap with every pixel [Black].
// Negative dimensions are clamped to zero.
func New(width, height int) *Bitmap {
	width, height = max(width, 0), max(height, 0)
	return &Bitmap{
		pix:    make([]uint8, width*height*bytesPerPixel),
		width:  width,
		height: height,
	}
}

// NewFilled returns a width×height bitmap with every pixel set to c.
func NewFilled(width, height int, c RGB) *Bitmap {
	b := New(width, height)
	b.Fill(c)
	return b
}

// FromImage converts a decoded image into an RGB bitmap whose origin is (0,0).
// Alpha is discarded; colors are taken unpremultiplied.
func FromImage(img image.Image) *Bitmap {
	if b, ok := img.(*Bitmap); ok {
		return b.Clone()
	}
	src := imaging.Clone(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	out := New(w, h)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		dst := out.pix[y*w*bytesPerPixel : (y+1)*w*bytesPerPixel]
		for x := 0; x < w; x++ {
			dst[x*3+0] = row[x*4+0]
			dst[x*3+1] = row[x*4+1]
			dst[x*3+2] = row[x*4+2]
		}
	}
	return out
}

// Width returns the number of columns.
func (b *Bitmap) Width() int { return b.width }

// Height returns the number of rows.
func (b *Bitmap) Height() int { return b.height }

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model { return Model }

// Bounds implements image.Image. The origin is always (0,0).
func (b *Bitmap) Bounds() image.Rectangle { return image.Rect(0, 0, b.width, b.height) }

// At implements image.Image. Out-of-range coordinates yield the zero color.
func (b *Bitmap) At(x, y int) color.Color {
	if !b.InBounds(x, y) {
		return RGB{}
	}
	return b.RGBAt(x, y)
}

// Opaque reports that every pixel is fully opaque, which lets encoders skip
// the alpha channel.
func (b *Bitmap) Opaque() bool { return true }

// Set implements draw.Image. Out-of-range coordinates are ignored.
func (b *Bitmap) Set(x, y int, c color.Color) {
	if !b.InBounds(x, y) {
		return
	}
	b.SetRGB(x, y, Model.Convert(c).(RGB))
}

// InBounds reports whether (x,y) addresses a pixel of b.
func (b *Bitmap) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// Contains reports whether r lies entirely inside b. Empty rectangles are
// always contained.
func (b *Bitmap) Contains(r image.Rectangle) bool {
	return r.Empty() || r.In(b.Bounds())
}

// RGBAt returns the pixel at (x,y) without a bounds check.
// Callers must have validated the coordinates.
func (b *Bitmap) RGBAt(x, y int) RGB {
	i := b.offset(x, y)
	return RGB{b.pix[i], b.pix[i+1], b.pix[i+2]}
}

// SetRGB writes the pixel at (x,y) without a bounds check.
// Callers must have validated the coordinates.
func (b *Bitmap) SetRGB(x, y int, c RGB) {
	i := b.offset(x, y)
	b.pix[i], b.pix[i+1], b.pix[i+2] = c.R, c.G, c.B
}

// Get returns the pixel at (x,y) or a BOUNDARY_VIOLATION error.
func (b *Bitmap) Get(x, y int) (RGB, error) {
	if !b.InBounds(x, y) {
		return RGB{}, errors.Boundary("read at (%d,%d) outside %dx%d bitmap", x, y, b.width, b.height)
	}
	return b.RGBAt(x, y), nil
}

// Put writes the pixel at (x,y) or returns a BOUNDARY_VIOLATION error.
func (b *Bitmap) Put(x, y int, c RGB) error {
	if !b.InBounds(x, y) {
		return errors.Boundary("write at (%d,%d) outside %dx%d bitmap", x, y, b.width, b.height)
	}
	b.SetRGB(x, y, c)
	return nil
}

// FillRect paints every pixel of r with c. Empty rectangles are a no-op;
// a rectangle reaching outside b is rejected before anything is written.
func (b *Bitmap) FillRect(r image.Rectangle, c RGB) error {
	if r.Empty() {
		return nil
	}
	if !b.Contains(r) {
		return errors.Boundary("fill %v outside %dx%d bitmap", r, b.width, b.height)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			b.SetRGB(x, y, c)
		}
	}
	return nil
}

// Fill paints the whole bitmap with c.
func (b *Bitmap) Fill(c RGB) {
	for i := 0; i < len(b.pix); i += bytesPerPixel {
		b.pix[i], b.pix[i+1], b.pix[i+2] = c.R, c.G, c.B
	}
}

// Clone returns a deep copy of b.
func (b *Bitmap) Clone() *Bitmap {
	out := &Bitmap{
		pix:    make([]uint8, len(b.pix)),
		width:  b.width,
		height: b.height,
	}
	copy(out.pix, b.pix)
	return out
}

// Equal reports whether b and o have the same size and pixels.
func (b *Bitmap) Equal(o *Bitmap) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.pix {
		if b.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

func (b *Bitmap) offset(x, y int) int {
	return (y*b.width + x) * bytesPerPixel
}
