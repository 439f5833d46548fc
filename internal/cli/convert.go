package cli

import (
	"context"
	"fmt"

	"github.com/cmdgraph/cmdgraph/internal/config"
	"github.com/cmdgraph/cmdgraph/pkg/pipeline"
)

// convertOpts holds the command-line flags for the conversion.
type convertOpts struct {
	verbose bool // debug-level logging
	force   bool // overwrite an existing output file
	watch   bool // regenerate on input changes
}

// runConvert validates the input and output paths, runs the pipeline once,
// and optionally enters the watch loop. The output path defaults to the
// configured filename (commands.dot) when only an input is given.
func runConvert(ctx context.Context, args []string, opts convertOpts) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	input := args[0]
	output := cfg.Output
	if len(args) == 2 {
		output = args[1]
	}

	if err := validateInput(input); err != nil {
		return err
	}
	// Watch mode rewrites the output on every change, so an existing file is
	// expected there.
	if err := validateOutput(output, opts.force || opts.watch); err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	popts := pipeline.Options{
		Logger:         logger,
		ExecutableFill: cfg.Colors.Executable,
		PlainFill:      cfg.Colors.Plain,
	}

	printInfo("Converting %s", input)
	p := newProgress(logger)
	stats, err := pipeline.ConvertFile(input, output, popts)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Wrote %s", output))

	printSuccess("%s %s %s", input, iconArrow, output)
	printDetail("%d nodes, %d edges, %d redirects", stats.Nodes, stats.Edges, stats.Redirects)

	if opts.watch {
		return watchLoop(ctx, input, output, popts)
	}
	return nil
}
