package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pixelgrid/pkg/bitmap"
	imgio "github.com/matzehuels/pixelgrid/pkg/io"
	"github.com/matzehuels/pixelgrid/pkg/mask"
	"github.com/matzehuels/pixelgrid/pkg/observability"
	"github.com/matzehuels/pixelgrid/pkg/strip"
)

// Runner executes pipeline runs with logging and hooks.
//
// The Runner holds no per-run state; options carry everything a run needs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Randomize loads opts.Input, renders its mask, unmask and blank grids, and
// writes the result to opts.Output.
func (r *Runner) Randomize(ctx context.Context, opts RandomizeOptions) (*Result, error) {
	r.applyLogger(&opts.Logger)
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &Result{Output: opts.Output}

	// Stage 1: Load
	loadStart := time.Now()
	src, err := r.load(ctx, opts.Input)
	if err != nil {
		return nil, err
	}
	result.SourceWidth, result.SourceHeight = src.Width(), src.Height()
	result.Stats.LoadTime = time.Since(loadStart)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Transform
	hooks := observability.Pipeline()
	hooks.OnTransformStart(ctx, OpRandomize)
	transformStart := time.Now()
	canvas, err := splitAndRender(src, &opts)
	result.Stats.TransformTime = time.Since(transformStart)
	if err != nil {
		hooks.OnTransformComplete(ctx, OpRandomize, 0, 0, result.Stats.TransformTime, err)
		return nil, err
	}
	result.Width, result.Height = canvas.Width(), canvas.Height()
	hooks.OnTransformComplete(ctx, OpRandomize, result.Width, result.Height, result.Stats.TransformTime, nil)

	opts.Logger.Debug("rendered shares",
		"pixel_size", opts.PixelSize,
		"verified", opts.Verify,
		"width", result.Width,
		"height", result.Height,
		"duration", result.Stats.TransformTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Save
	saveStart := time.Now()
	if err := r.save(ctx, canvas, opts.Output); err != nil {
		return nil, err
	}
	result.Stats.SaveTime = time.Since(saveStart)

	return result, nil
}

// Interleave loads opts.First and opts.Second, interleaves them into strips
// and writes the result to opts.Output. Dimension mismatches are reported
// before any pixel is copied.
func (r *Runner) Interleave(ctx context.Context, opts InterleaveOptions) (*Result, error) {
	r.applyLogger(&opts.Logger)
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &Result{Output: opts.Output}

	// Stage 1: Load
	loadStart := time.Now()
	first, err := r.load(ctx, opts.First)
	if err != nil {
		return nil, err
	}
	second, err := r.load(ctx, opts.Second)
	if err != nil {
		return nil, err
	}
	result.SourceWidth, result.SourceHeight = first.Width(), first.Height()
	result.Stats.LoadTime = time.Since(loadStart)

	if err := strip.CheckDimensions(first, second); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Transform
	hooks := observability.Pipeline()
	hooks.OnTransformStart(ctx, OpInterleave)
	transformStart := time.Now()
	canvas, err := strip.Interleave(first, second, opts.NumSegments)
	result.Stats.TransformTime = time.Since(transformStart)
	if err != nil {
		hooks.OnTransformComplete(ctx, OpInterleave, 0, 0, result.Stats.TransformTime, err)
		return nil, err
	}
	result.Width, result.Height = canvas.Width(), canvas.Height()
	hooks.OnTransformComplete(ctx, OpInterleave, result.Width, result.Height, result.Stats.TransformTime, nil)

	opts.Logger.Debug("interleaved strips",
		"segments", opts.NumSegments,
		"width", result.Width,
		"height", result.Height,
		"duration", result.Stats.TransformTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Save
	saveStart := time.Now()
	if err := r.save(ctx, canvas, opts.Output); err != nil {
		return nil, err
	}
	result.Stats.SaveTime = time.Since(saveStart)

	return result, nil
}

// splitAndRender draws the shares of src, verifying them first if asked.
func splitAndRender(src *bitmap.Bitmap, opts *RandomizeOptions) (*bitmap.Bitmap, error) {
	m, u := mask.Split(src, opts.Bits)
	if opts.Verify {
		if err := VerifyShares(src, m, u); err != nil {
			return nil, err
		}
	}
	return RenderShares(opts.PixelSize, m, u)
}

// load decodes path and reports it to the hooks.
func (r *Runner) load(ctx context.Context, path string) (*bitmap.Bitmap, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	b, err := imgio.Open(path)
	if err != nil {
		hooks.OnLoadComplete(ctx, path, 0, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnLoadComplete(ctx, path, b.Width(), b.Height(), time.Since(start), nil)

	r.Logger.Debug("loaded image", "path", path, "width", b.Width(), "height", b.Height())
	return b, nil
}

// save encodes b to path and reports it to the hooks.
func (r *Runner) save(ctx context.Context, b *bitmap.Bitmap, path string) error {
	hooks := observability.Pipeline()
	hooks.OnSaveStart(ctx, path)
	start := time.Now()

	err := imgio.Save(b, path)
	hooks.OnSaveComplete(ctx, path, time.Since(start), err)
	if err != nil {
		return err
	}

	r.Logger.Debug("saved image", "path", path, "duration", time.Since(start))
	return nil
}

// applyLogger uses the runner's logger when the options carry none.
func (r *Runner) applyLogger(l **log.Logger) {
	if *l == nil {
		*l = r.Logger
	}
}
