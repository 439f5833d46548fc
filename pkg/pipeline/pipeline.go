// Package pipeline wires the complete decode → build → resolve → serialize
// conversion behind a single call shared by the CLI and tests.
//
// The stages are:
//
//  1. Decode: deserialize the command-tree JSON into a node tree
//  2. Build: assign identifiers, emit nodes and structural edges
//  3. Resolve: add dashed redirect edges using the identifier map
//  4. Serialize: render the statement sequence as a DOT document
//
// The whole graph is computed in memory before any output is written, so a
// failure in any stage leaves the output file untouched.
package pipeline

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/cmdgraph/cmdgraph/pkg/command"
	"github.com/cmdgraph/cmdgraph/pkg/errors"
	"github.com/cmdgraph/cmdgraph/pkg/graph"
)

// Options configures a conversion run.
type Options struct {
	// Logger receives debug progress; defaults to log.Default().
	Logger *log.Logger
	// ExecutableFill and PlainFill override the node fill colors.
	ExecutableFill string
	PlainFill      string
}

func (o *Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

// Stats summarizes a completed conversion.
type Stats struct {
	Nodes     int // node statements emitted
	Edges     int // solid parent→child edges
	Redirects int // dashed redirect edges
}

// Convert transforms a raw command-tree document into a DOT document.
func Convert(data []byte, opts Options) (string, Stats, error) {
	logger := opts.logger()

	root, err := command.Decode(data)
	if err != nil {
		return "", Stats{}, err
	}
	logger.Debugf("Decoded command tree: %d nodes", root.Count())

	g, ids, err := graph.Build(root, graph.Options{
		ExecutableFill: opts.ExecutableFill,
		PlainFill:      opts.PlainFill,
	})
	if err != nil {
		return "", Stats{}, err
	}
	logger.Debugf("Built graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	if err := graph.ResolveRedirects(root, ids, g); err != nil {
		return "", Stats{}, err
	}
	logger.Debugf("Resolved redirects: %d dashed edges", g.DashedCount())

	stats := Stats{
		Nodes:     g.NodeCount(),
		Edges:     g.EdgeCount() - g.DashedCount(),
		Redirects: g.DashedCount(),
	}
	return g.String(), stats, nil
}

// ConvertFile reads the command tree at inPath, converts it, and writes the
// DOT document to outPath. The output file is only created after the graph
// has been fully computed.
func ConvertFile(inPath, outPath string, opts Options) (Stats, error) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return Stats{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", inPath)
	}

	out, stats, err := Convert(data, opts)
	if err != nil {
		return Stats{}, err
	}

	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return Stats{}, errors.Wrap(errors.ErrCodeWrite, err, "write %s", outPath)
	}
	return stats, nil
}
