package strip

import (
	"testing"

	"github.com/matzehuels/pixelgrid/pkg/bitmap"
	"github.com/matzehuels/pixelgrid/pkg/errors"
)

// columns builds a w×h bitmap whose column x has color {base, x, y}.
func columns(w, h int, base uint8) *bitmap.Bitmap {
	b := bitmap.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.SetRGB(x, y, bitmap.RGB{R: base, G: uint8(x), B: uint8(y)})
		}
	}
	return b
}

func TestSegments(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		n      int
		widths []int
	}{
		{"remainder in last", 10, 3, []int{3, 3, 4}},
		{"even split", 12, 4, []int{3, 3, 3, 3}},
		{"single", 7, 1, []int{7}},
		{"one per column", 3, 3, []int{1, 1, 1}},
		{"large remainder", 10, 6, []int{1, 1, 1, 1, 1, 5}},
		{"more segments than columns", 3, 5, []int{0, 0, 0, 0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs, err := Segments(tt.width, tt.n)
			if err != nil {
				t.Fatalf("Segments() error = %v", err)
			}
			if len(segs) != len(tt.widths) {
				t.Fatalf("len(Segments()) = %d, want %d", len(segs), len(tt.widths))
			}
			x := 0
			for i, s := range segs {
				if s.X != x || s.Width != tt.widths[i] {
					t.Errorf("segment %d = %+v, want {X:%d Width:%d}", i, s, x, tt.widths[i])
				}
				x += s.Width
			}
			if x != tt.width {
				t.Errorf("segments cover %d columns, want %d", x, tt.width)
			}
		})
	}
}

func TestSegmentsInvalid(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := Segments(10, n); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Segments(10, %d) error = %v, want INVALID_INPUT", n, err)
		}
	}
}

func TestInterleaveRemainder(t *testing.T) {
	const w, h = 10, 30
	a, b := columns(w, h, 1), columns(w, h, 2)

	out, err := Interleave(a, b, 3)
	if err != nil {
		t.Fatalf("Interleave() error = %v", err)
	}
	if out.Width() != 2*w || out.Height() != h {
		t.Fatalf("output = %dx%d, want %dx%d", out.Width(), out.Height(), 2*w, h)
	}

	// Sample the middle row, away from the ticks.
	const y = 15
	segs := []Segment{{0, 3}, {3, 3}, {6, 4}}
	for _, s := range segs {
		left, right := 2*s.X, 2*s.X+s.Width
		for i := 0; i < s.Width; i++ {
			if got, want := out.RGBAt(left+i, y), a.RGBAt(s.X+i, y); got != want {
				t.Errorf("segment %+v image1 column %d = %v, want %v", s, i, got, want)
			}
			if got, want := out.RGBAt(right+i, y), b.RGBAt(s.X+i, y); got != want {
				t.Errorf("segment %+v image2 column %d = %v, want %v", s, i, got, want)
			}
		}
	}

	// The last segment's final column comes from source column 9.
	if got := out.RGBAt(2*w-1, y); got != b.RGBAt(9, y) {
		t.Errorf("last output column = %v, want image2 column 9", got)
	}
}

func TestInterleaveTicks(t *testing.T) {
	const w, h = 8, 40
	a := bitmap.NewFilled(w, h, bitmap.White)
	b := bitmap.NewFilled(w, h, bitmap.White)

	out, err := Interleave(a, b, 2)
	if err != nil {
		t.Fatalf("Interleave() error = %v", err)
	}

	ticks := map[int]bool{0: true, 4: true, 8: true, 12: true}
	for x := 0; x < 2*w; x++ {
		for y := 0; y < h; y++ {
			inTick := y <= TickLength || y >= h-TickLength-1
			want := bitmap.White
			if ticks[x] && inTick {
				want = bitmap.Black
			}
			if got := out.RGBAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestInterleaveShortImage(t *testing.T) {
	a := bitmap.NewFilled(4, 5, bitmap.White)
	b := bitmap.NewFilled(4, 5, bitmap.White)

	out, err := Interleave(a, b, 1)
	if err != nil {
		t.Fatalf("Interleave() error = %v", err)
	}
	for y := 0; y < 5; y++ {
		if got := out.RGBAt(0, y); got != bitmap.Black {
			t.Errorf("tick pixel (0,%d) = %v, want Black", y, got)
		}
		if got := out.RGBAt(4, y); got != bitmap.Black {
			t.Errorf("tick pixel (4,%d) = %v, want Black", y, got)
		}
	}
}

func TestInterleaveDimensionMismatch(t *testing.T) {
	tests := []struct {
		name string
		a, b *bitmap.Bitmap
	}{
		{"width", bitmap.New(10, 20), bitmap.New(11, 20)},
		{"height", bitmap.New(10, 20), bitmap.New(10, 21)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Interleave(tt.a, tt.b, 0)
			if !errors.Is(err, errors.ErrCodeDimensionMismatch) {
				t.Errorf("Interleave() error = %v, want DIMENSION_MISMATCH", err)
			}
			if out != nil {
				t.Error("Interleave() returned a canvas on mismatch")
			}
		})
	}
}

func TestInterleaveNarrowImage(t *testing.T) {
	const w, h = 4, 30
	a, b := columns(w, h, 1), columns(w, h, 2)

	out, err := Interleave(a, b, 16)
	if err != nil {
		t.Fatalf("Interleave() error = %v", err)
	}
	// Only the last segment has columns: image1 whole, then image2 whole.
	const y = 15
	for x := 0; x < w; x++ {
		if got, want := out.RGBAt(x, y), a.RGBAt(x, y); got != want {
			t.Errorf("column %d = %v, want image1 %v", x, got, want)
		}
		if got, want := out.RGBAt(w+x, y), b.RGBAt(x, y); got != want {
			t.Errorf("column %d = %v, want image2 %v", w+x, got, want)
		}
	}
	if got := out.RGBAt(0, 0); got != TickColor {
		t.Errorf("tick at column 0 = %v, want %v", got, TickColor)
	}
	if got := out.RGBAt(w, 0); got != TickColor {
		t.Errorf("tick at column %d = %v, want %v", w, got, TickColor)
	}
}

func TestInterleaveZeroSegments(t *testing.T) {
	_, err := Interleave(bitmap.New(4, 4), bitmap.New(4, 4), 0)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Interleave(n=0) error = %v, want INVALID_INPUT", err)
	}
}
