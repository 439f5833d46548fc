package graph

import (
	"fmt"

	"github.com/cmdgraph/cmdgraph/pkg/command"
	"github.com/cmdgraph/cmdgraph/pkg/dot"
	"github.com/cmdgraph/cmdgraph/pkg/errors"
)

// IDMap records the identifier assigned to each node during [Build]. The
// parsed tree itself is never annotated; the map is the only bridge between
// the builder pass and the redirect pass, and the redirect pass reads it
// without modification.
type IDMap map[*command.Node]int

// Options controls node appearance. The zero value uses the standard palette.
type Options struct {
	// ExecutableFill is the fill color for executable nodes.
	ExecutableFill string
	// PlainFill is the fill color for all other nodes.
	PlainFill string
}

func (o *Options) setDefaults() {
	if o.ExecutableFill == "" {
		o.ExecutableFill = dot.FillExecutable
	}
	if o.PlainFill == "" {
		o.PlainFill = dot.FillPlain
	}
}

// allocator hands out dense sequential identifiers. It is owned exclusively
// by a single Build call; traversal is strictly sequential so a plain counter
// suffices.
type allocator struct {
	next int
}

func (a *allocator) alloc() int {
	id := a.next
	a.next++
	return id
}

// builder carries the state of one build pass.
type builder struct {
	g     *dot.Graph
	ids   IDMap
	alloc allocator
	opts  Options
}

// Build walks the tree once in pre-order, assigning each reachable node the
// next sequential identifier (the root gets 0), emitting its node statement
// and, for every non-root node, the solid edge from its parent. Children are
// visited in sorted name order.
//
// The returned IDMap is a bijection from nodes to {0, ..., N-1} in pre-order
// sequence and is required input for [ResolveRedirects].
func Build(root *command.Node, opts Options) (*dot.Graph, IDMap, error) {
	opts.setDefaults()
	b := &builder{
		g:    dot.New(),
		ids:  IDMap{},
		opts: opts,
	}
	if err := b.visit(root, "", -1); err != nil {
		return nil, nil, err
	}
	return b.g, b.ids, nil
}

// visit emits the statements for one node and recurses. parent is the
// identifier of the enclosing node, or -1 for the root.
func (b *builder) visit(n *command.Node, name string, parent int) error {
	id := b.alloc.alloc()
	b.ids[n] = id

	label, err := nodeLabel(n, name)
	if err != nil {
		return err
	}

	fill := b.opts.PlainFill
	if n.Executable {
		fill = b.opts.ExecutableFill
	}
	b.g.AddNode(dot.Node{ID: id, Label: label, Fill: fill})

	if parent >= 0 {
		b.g.AddEdge(dot.Edge{From: parent, To: id})
	}

	for _, child := range n.ChildNames() {
		if err := b.visit(n.Children[child], child, id); err != nil {
			return err
		}
	}
	return nil
}

// nodeLabel computes the display label for a node:
//
//	root:     (root)
//	literal:  the name, quoted
//	argument: the name in angle brackets, then the parser id with its
//	          namespace prefix stripped, parenthesized on a second line
func nodeLabel(n *command.Node, name string) (string, error) {
	switch n.Kind {
	case command.KindRoot:
		return "(root)", nil
	case command.KindLiteral:
		return fmt.Sprintf("%q", name), nil
	case command.KindArgument:
		parser, err := command.StripNamespace(n.Parser)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("<%s>\n(%s)", name, parser), nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "node %q has unknown type %q", name, n.Kind)
	}
}
