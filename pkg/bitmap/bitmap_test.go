package bitmap

import (
	"image"
	"image/color"
	"testing"

	"github.com/matzehuels/pixelgrid/pkg/errors"
)

func TestNew(t *testing.T) {
	b := New(3, 2)
	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", b.Width(), b.Height())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := b.RGBAt(x, y); got != Black {
				t.Errorf("RGBAt(%d,%d) = %v, want Black", x, y, got)
			}
		}
	}

	if got := New(-1, 4); got.Width() != 0 || got.Height() != 4 {
		t.Errorf("New(-1, 4) size = %dx%d, want 0x4", got.Width(), got.Height())
	}
}

func TestNewFilled(t *testing.T) {
	b := NewFilled(4, 4, White)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := b.RGBAt(x, y); got != White {
				t.Fatalf("RGBAt(%d,%d) = %v, want White", x, y, got)
			}
		}
	}
}

func TestGetPut(t *testing.T) {
	b := New(2, 2)
	red := RGB{R: 0xff}

	if err := b.Put(1, 0, red); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	got, err := b.Get(1, 0)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != red {
		t.Errorf("Get(1,0) = %v, want %v", got, red)
	}

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at width", 2, 0},
		{"y at height", 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := b.Put(tt.x, tt.y, red); !errors.Is(err, errors.ErrCodeBoundaryViolation) {
				t.Errorf("Put(%d,%d) error = %v, want BOUNDARY_VIOLATION", tt.x, tt.y, err)
			}
			if _, err := b.Get(tt.x, tt.y); !errors.Is(err, errors.ErrCodeBoundaryViolation) {
				t.Errorf("Get(%d,%d) error = %v, want BOUNDARY_VIOLATION", tt.x, tt.y, err)
			}
		})
	}
}

func TestFillRect(t *testing.T) {
	b := NewFilled(4, 3, White)

	if err := b.FillRect(image.Rect(1, 1, 3, 3), Black); err != nil {
		t.Fatalf("FillRect() error = %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			want := White
			if x >= 1 && x < 3 && y >= 1 {
				want = Black
			}
			if got := b.RGBAt(x, y); got != want {
				t.Errorf("RGBAt(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	if err := b.FillRect(image.Rect(2, 2, 2, 5), Black); err != nil {
		t.Errorf("empty FillRect() error = %v, want nil", err)
	}

	before := b.Clone()
	err := b.FillRect(image.Rect(0, 0, 5, 1), Black)
	if !errors.Is(err, errors.ErrCodeBoundaryViolation) {
		t.Errorf("FillRect() past edge error = %v, want BOUNDARY_VIOLATION", err)
	}
	if !b.Equal(before) {
		t.Error("rejected FillRect() modified the bitmap")
	}
}

func TestImageInterface(t *testing.T) {
	b := New(2, 1)
	b.Set(0, 0, color.White)
	b.Set(5, 5, color.White) // ignored

	if got := b.At(0, 0); got != White {
		t.Errorf("At(0,0) = %v, want White", got)
	}
	if got := b.At(9, 9); got != (RGB{}) {
		t.Errorf("At(9,9) = %v, want zero color", got)
	}
	if got := b.Bounds(); got != image.Rect(0, 0, 2, 1) {
		t.Errorf("Bounds() = %v, want (0,0)-(2,1)", got)
	}

	r, g, bl, a := White.RGBA()
	if r != 0xffff || g != 0xffff || bl != 0xffff || a != 0xffff {
		t.Errorf("White.RGBA() = %x,%x,%x,%x, want all ffff", r, g, bl, a)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 12, 21))
	src.SetNRGBA(10, 20, color.NRGBA{R: 1, G: 2, B: 3, A: 0xff})
	src.SetNRGBA(11, 20, color.NRGBA{R: 200, G: 100, B: 50, A: 0x80})

	b := FromImage(src)
	if b.Width() != 2 || b.Height() != 1 {
		t.Fatalf("size = %dx%d, want 2x1", b.Width(), b.Height())
	}
	if got := b.RGBAt(0, 0); got != (RGB{1, 2, 3}) {
		t.Errorf("RGBAt(0,0) = %v, want {1 2 3}", got)
	}
	if got := b.RGBAt(1, 0); got != (RGB{200, 100, 50}) {
		t.Errorf("RGBAt(1,0) = %v, want {200 100 50} with alpha dropped", got)
	}
}

func TestFromImageCopiesBitmap(t *testing.T) {
	orig := NewFilled(2, 2, White)
	cp := FromImage(orig)
	cp.SetRGB(0, 0, Black)
	if orig.RGBAt(0, 0) != White {
		t.Error("FromImage(*Bitmap) shares pixels with its input")
	}
}

func TestEqual(t *testing.T) {
	a := NewFilled(2, 2, White)
	if !a.Equal(a.Clone()) {
		t.Error("Equal(clone) = false, want true")
	}
	if a.Equal(NewFilled(2, 3, White)) {
		t.Error("Equal(different size) = true, want false")
	}
	c := a.Clone()
	c.SetRGB(1, 1, Black)
	if a.Equal(c) {
		t.Error("Equal(different pixel) = true, want false")
	}
}
