// Package pkg provides the libraries behind the randomize and interleave
// tools.
//
// # Overview
//
// Pixelgrid has two programs. Randomize splits a black/white image into two
// random shares (visual secret sharing) and draws them as magnified pixel
// grids. Interleave cuts two same-sized images into vertical strips and
// alternates them side by side. The pkg directory is organized into:
//
//  1. [bitmap] - The RGB raster every transform reads and writes
//  2. [grid], [mask], [strip] - The transforms themselves
//  3. [io] - Decoding and encoding image files
//  4. [pipeline] - Orchestration (load → transform → save)
//  5. [config], [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// Randomize:
//
//	input image
//	     ↓
//	[io] decode into a [bitmap.Bitmap]
//	     ↓
//	[mask] split into mask and unmask shares
//	     ↓
//	[grid] render mask | unmask | blank as one row of grids
//	     ↓
//	[io] encode by output extension
//
// Interleave:
//
//	image1, image2
//	     ↓
//	[strip] check sizes, cut into segments, alternate strips, draw ticks
//	     ↓
//	[io] encode by output extension
//
// # Quick Start
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Randomize(ctx, pipeline.RandomizeOptions{
//	    Input:     "secret.png",
//	    Output:    "shares.png",
//	    PixelSize: 16,
//	    Seed:      42,
//	})
//
// The transforms are also usable without files:
//
//	m, u := mask.Split(src, mask.NewPCG(42))
//	out, err := grid.RenderRow(16, m, u, mask.Blank(m))
//
// # Error Handling
//
// All packages return errors from [errors] carrying a [errors.Code]
// (INVALID_INPUT, FILE_OPEN, DIMENSION_MISMATCH, ...). Use [errors.Is] to
// test for a code and [errors.UserMessage] for display.
//
// [bitmap]: github.com/matzehuels/pixelgrid/pkg/bitmap
// [grid]: github.com/matzehuels/pixelgrid/pkg/grid
// [mask]: github.com/matzehuels/pixelgrid/pkg/mask
// [strip]: github.com/matzehuels/pixelgrid/pkg/strip
// [io]: github.com/matzehuels/pixelgrid/pkg/io
// [pipeline]: github.com/matzehuels/pixelgrid/pkg/pipeline
// [config]: github.com/matzehuels/pixelgrid/pkg/config
// [errors]: github.com/matzehuels/pixelgrid/pkg/errors
// [observability]: github.com/matzehuels/pixelgrid/pkg/observability
// [buildinfo]: github.com/matzehuels/pixelgrid/pkg/buildinfo
// [bitmap.Bitmap]: github.com/matzehuels/pixelgrid/pkg/bitmap.Bitmap
// [errors.Code]: github.com/matzehuels/pixelgrid/pkg/errors.Code
// [errors.Is]: github.com/matzehuels/pixelgrid/pkg/errors.Is
// [errors.UserMessage]: github.com/matzehuels/pixelgrid/pkg/errors.UserMessage
package pkg
