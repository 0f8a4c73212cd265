// Package pipeline runs the two pixelgrid programs end to end.
//
// Each run is a load → transform → save sequence shared by the CLI and by
// tests. The transforms themselves are pure functions over bitmaps
// ([Randomize], [strip.Interleave]); the [Runner] adds file I/O, logging,
// timing and observability hooks around them.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Randomize(ctx, pipeline.RandomizeOptions{
//	    Input:  "secret.png",
//	    Output: "shares.png",
//	})
//
//	result, err = runner.Interleave(ctx, pipeline.InterleaveOptions{
//	    First:  "left.png",
//	    Second: "right.png",
//	})
//
// [strip.Interleave]: github.com/matzehuels/pixelgrid/pkg/strip.Interleave
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pixelgrid/pkg/errors"
	"github.com/matzehuels/pixelgrid/pkg/mask"
)

// =============================================================================
// Default Values - Single Source of Truth for both commands
// =============================================================================

const (
	// DefaultPixelSize is the magnification factor for randomize grids.
	DefaultPixelSize = 64

	// DefaultNumSegments is the number of strips interleave cuts each image into.
	DefaultNumSegments = 16

	// DefaultOutput is the file interleave writes when no output is given.
	DefaultOutput = "result.png"
)

// Operation names reported to hooks and logs.
const (
	OpRandomize  = "randomize"
	OpInterleave = "interleave"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// RandomizeOptions configures a randomize run.
type RandomizeOptions struct {
	Input     string
	Output    string
	PixelSize int
	Seed      uint64 // 0 draws a fresh seed from the OS
	Verify    bool   // recombine the shares and compare with the input

	// Bits overrides the random source; Seed is ignored when set.
	Bits   mask.BitSource
	Logger *log.Logger
}

// SetDefaults fills zero-valued fields.
func (o *RandomizeOptions) SetDefaults() {
	if o.PixelSize == 0 {
		o.PixelSize = DefaultPixelSize
	}
	if o.Bits == nil {
		if o.Seed != 0 {
			o.Bits = mask.NewPCG(o.Seed)
		} else {
			o.Bits = mask.NewRandom()
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks paths and the magnification factor.
func (o *RandomizeOptions) Validate() error {
	if err := errors.ValidateInputPath(o.Input); err != nil {
		return err
	}
	if err := errors.ValidateOutputPath(o.Output); err != nil {
		return err
	}
	return errors.ValidateFactor(o.PixelSize)
}

// InterleaveOptions configures an interleave run.
type InterleaveOptions struct {
	First       string
	Second      string
	Output      string
	NumSegments int

	Logger *log.Logger
}

// SetDefaults fills zero-valued fields.
func (o *InterleaveOptions) SetDefaults() {
	if o.NumSegments == 0 {
		o.NumSegments = DefaultNumSegments
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks paths and the segment count. The count is checked against
// the image width later, once the images are loaded.
func (o *InterleaveOptions) Validate() error {
	if err := errors.ValidateInputPath(o.First); err != nil {
		return err
	}
	if err := errors.ValidateInputPath(o.Second); err != nil {
		return err
	}
	if err := errors.ValidateOutputPath(o.Output); err != nil {
		return err
	}
	if o.NumSegments < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "number of segments must be at least 1 (got %d)", o.NumSegments)
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result describes a finished run.
type Result struct {
	// Output is the path written.
	Output string

	// Width and Height are the dimensions of the written image.
	Width, Height int

	// SourceWidth and SourceHeight are the dimensions of the (first) input.
	SourceWidth, SourceHeight int

	// Stats contains timing information.
	Stats Stats
}

// Stats contains per-stage durations.
type Stats struct {
	LoadTime      time.Duration
	TransformTime time.Duration
	SaveTime      time.Duration
}

// Total returns the summed duration of all stages.
func (s Stats) Total() time.Duration {
	return s.LoadTime + s.TransformTime + s.SaveTime
}
