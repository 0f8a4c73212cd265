package grid

import (
	"testing"

	"github.com/matzehuels/pixelgrid/pkg/bitmap"
	"github.com/matzehuels/pixelgrid/pkg/errors"
)

func TestRowSize(t *testing.T) {
	tests := []struct {
		name         string
		n, w, h, p   int
		wantW, wantH int
	}{
		{"three grids default size", 3, 4, 2, 64, 64 * 16, 64 * 4},
		{"three grids factor one", 3, 1, 1, 1, 7, 3},
		{"single grid", 1, 5, 5, 2, 14, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := RowSize(tt.n, tt.w, tt.h, tt.p)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("RowSize() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenderRow(t *testing.T) {
	const p = 4
	a := bitmap.NewFilled(2, 1, red)
	b := bitmap.NewFilled(2, 1, green)
	c := bitmap.NewFilled(2, 1, bitmap.White)

	canvas, err := RenderRow(p, a, b, c)
	if err != nil {
		t.Fatalf("RenderRow() error = %v", err)
	}

	wantW, wantH := RowSize(3, 2, 1, p)
	if canvas.Width() != wantW || canvas.Height() != wantH {
		t.Fatalf("canvas = %dx%d, want %dx%d", canvas.Width(), canvas.Height(), wantW, wantH)
	}

	// Margin is white, grid origins are gridline corners, interiors carry color.
	checks := []struct {
		name string
		x, y int
		want bitmap.RGB
	}{
		{"top-left margin", 0, 0, bitmap.White},
		{"first grid origin", p, p, bitmap.Black},
		{"first grid interior", p + 1, p + 1, red},
		{"gap between grids", p*3 + 2, p + 1, bitmap.White},
		{"second grid origin", p * (2 + 2), p, bitmap.Black},
		{"second grid interior", p*(2+2) + p + 1, p + 1, green},
		{"third grid origin", p * (3 + 4), p, bitmap.Black},
		{"third grid interior", p*(3+4) + 1, p + 2, bitmap.White},
		{"third grid closing line", p*(3+4) + 2*p, p + 1, bitmap.Black},
		{"bottom margin", p, wantH - 1, bitmap.White},
	}
	for _, tt := range checks {
		t.Run(tt.name, func(t *testing.T) {
			if got := canvas.RGBAt(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRenderRowErrors(t *testing.T) {
	if _, err := RenderRow(4); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("RenderRow() with no sources error = %v, want INVALID_INPUT", err)
	}
	if _, err := RenderRow(0, bitmap.New(1, 1)); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("RenderRow(0) error = %v, want INVALID_INPUT", err)
	}
	_, err := RenderRow(2, bitmap.New(2, 2), bitmap.New(2, 3))
	if !errors.Is(err, errors.ErrCodeDimensionMismatch) {
		t.Errorf("RenderRow() mixed sizes error = %v, want DIMENSION_MISMATCH", err)
	}
}
