package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pixelgrid/pkg/errors"
	"github.com/matzehuels/pixelgrid/pkg/pipeline"
)

// randomizeOpts holds randomize command flags.
type randomizeOpts struct {
	commonOpts
	pixelSize int
	seed      uint64
	verify    bool
}

// RandomizeCommand creates the randomize command.
func (c *CLI) RandomizeCommand() *cobra.Command {
	opts := randomizeOpts{pixelSize: pipeline.DefaultPixelSize}

	cmd := &cobra.Command{
		Use:   "randomize [flags] <input> <output>",
		Short: "Split a black/white image into two random shares",
		Long: `Randomize splits a black/white image into a mask and an unmask share.

Each share alone is random noise; overlaying them reproduces the input.
The output shows the mask, the unmask and a blank grid side by side, each
input pixel drawn as a pixel-size block inside a black grid.`,
		Example: `  randomize secret.png shares.png
  randomize -p 16 --seed 42 --verify secret.png shares.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRandomize(cmd, args[0], args[1], &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.pixelSize, "pixel-size", "p", opts.pixelSize, "side length of one magnified pixel")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for reproducible shares (0 = random)")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "check that the shares recombine to the input")

	return c.newCommand(cmd, &opts.commonOpts)
}

func (c *CLI) runRandomize(cmd *cobra.Command, input, output string, opts *randomizeOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig(opts.config, logger)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("pixel-size") && cfg.Randomize.PixelSize != 0 {
		opts.pixelSize = cfg.Randomize.PixelSize
	}
	if !cmd.Flags().Changed("seed") && cfg.Randomize.Seed != 0 {
		opts.seed = cfg.Randomize.Seed
	}
	// Zero would otherwise fall back to the pipeline default.
	if err := errors.ValidateFactor(opts.pixelSize); err != nil {
		return err
	}

	logger.Debug("randomize", "input", input, "output", output, "pixel_size", opts.pixelSize, "seed", opts.seed)
	prog := newProgress(logger)

	runner := pipeline.NewRunner(logger)
	result, err := c.withSpinner(cmd, "Randomizing "+input+"...", func() (*pipeline.Result, error) {
		return runner.Randomize(ctx, pipeline.RandomizeOptions{
			Input:     input,
			Output:    output,
			PixelSize: opts.pixelSize,
			Seed:      opts.seed,
			Verify:    opts.verify,
			Logger:    logger,
		})
	})
	if err != nil {
		return err
	}

	printSuccess(c.Out, "Randomized %s", input)
	printFile(c.Out, result.Output)
	printKeyValue(c.Out, "source", sizeString(result.SourceWidth, result.SourceHeight))
	printKeyValue(c.Out, "output", sizeString(result.Width, result.Height))
	stats := []string{fmt.Sprintf("pixel size %d", opts.pixelSize), durationString(result.Stats.Total())}
	if opts.verify {
		stats = append(stats, "verified")
	}
	printStats(c.Out, stats...)

	prog.done("Wrote " + result.Output)
	return nil
}

// withSpinner runs fn behind a spinner on c.Status. The spinner only runs on
// a terminal and is skipped in verbose mode so it does not interleave with
// debug logs.
func (c *CLI) withSpinner(cmd *cobra.Command, message string, fn func() (*pipeline.Result, error)) (*pipeline.Result, error) {
	if !isTerminal(c.Status) || c.Logger.GetLevel() <= LogDebug {
		return fn()
	}
	s := newSpinner(cmd.Context(), c.Status, message)
	s.Start()
	result, err := fn()
	s.Finish(err)
	if err != nil {
		return nil, err
	}
	return result, nil
}
