package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pixelgrid/pkg/errors"
	"github.com/matzehuels/pixelgrid/pkg/pipeline"
)

// interleaveOpts holds interleave command flags.
type interleaveOpts struct {
	commonOpts
	numSegments int
	output      string
}

// InterleaveCommand creates the interleave command.
func (c *CLI) InterleaveCommand() *cobra.Command {
	opts := interleaveOpts{
		numSegments: pipeline.DefaultNumSegments,
		output:      pipeline.DefaultOutput,
	}

	cmd := &cobra.Command{
		Use:   "interleave [flags] <image1> <image2>",
		Short: "Interleave two images into alternating vertical strips",
		Long: `Interleave cuts two same-sized images into vertical segments and writes
them side by side, alternating between the images, into an image twice as
wide. Short black ticks at the top and bottom mark every strip boundary.`,
		Example: `  interleave left.png right.png
  interleave -n 8 -o strips.png left.png right.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInterleave(cmd, args[0], args[1], &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.numSegments, "num-segments", "n", opts.numSegments, "number of strips per image")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output image path")

	return c.newCommand(cmd, &opts.commonOpts)
}

func (c *CLI) runInterleave(cmd *cobra.Command, first, second string, opts *interleaveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig(opts.config, logger)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("num-segments") && cfg.Interleave.NumSegments != 0 {
		opts.numSegments = cfg.Interleave.NumSegments
	}
	if !cmd.Flags().Changed("output") && cfg.Interleave.Output != "" {
		opts.output = cfg.Interleave.Output
	}
	if opts.numSegments < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "number of segments must be at least 1 (got %d)", opts.numSegments)
	}

	logger.Debug("interleave", "first", first, "second", second, "output", opts.output, "segments", opts.numSegments)
	prog := newProgress(logger)

	runner := pipeline.NewRunner(logger)
	result, err := c.withSpinner(cmd, "Interleaving "+first+" and "+second+"...", func() (*pipeline.Result, error) {
		return runner.Interleave(ctx, pipeline.InterleaveOptions{
			First:       first,
			Second:      second,
			Output:      opts.output,
			NumSegments: opts.numSegments,
			Logger:      logger,
		})
	})
	if err != nil {
		return err
	}

	printSuccess(c.Out, "Interleaved %s and %s", first, second)
	printFile(c.Out, result.Output)
	printKeyValue(c.Out, "source", sizeString(result.SourceWidth, result.SourceHeight))
	printKeyValue(c.Out, "output", sizeString(result.Width, result.Height))
	printStats(c.Out, fmt.Sprintf("%d segments", opts.numSegments), durationString(result.Stats.Total()))

	prog.done("Wrote " + result.Output)
	return nil
}
