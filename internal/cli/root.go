package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cmdgraph/cmdgraph/pkg/buildinfo"
	"github.com/cmdgraph/cmdgraph/pkg/errors"
)

// Execute runs the cmdgraph CLI and returns an error if the conversion fails.
// This is the main entry point for the CLI application. The context is used
// for cancellation; watch mode exits cleanly when it is cancelled.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible via loggerFromContext.
func Execute(ctx context.Context) error {
	var opts convertOpts

	root := &cobra.Command{
		Use:   "cmdgraph <input> [output]",
		Short: "cmdgraph converts a game command-tree dump into a DOT graph",
		Long: `cmdgraph converts the command-tree report written by the game's data
generator into a DOT graph description for visualization.

Literal and argument nodes become box nodes connected by solid edges;
redirects between commands become dashed edges. Executable commands are
filled pale green. The resulting file renders with any Graphviz consumer:

  cmdgraph reports/commands.json
  dot -Tsvg commands.dot -o commands.svg

With no output argument the graph is written to commands.dot in the
current directory.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 2 {
				return errors.New(errors.ErrCodeInvalidInput, "too many arguments")
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runConvert(cmd.Context(), args, opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite the output file if it exists")
	root.Flags().BoolVarP(&opts.watch, "watch", "w", false, "keep running and regenerate on input changes")

	return root.ExecuteContext(ctx)
}
