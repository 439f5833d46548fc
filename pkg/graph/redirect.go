package graph

import (
	"github.com/cmdgraph/cmdgraph/pkg/command"
	"github.com/cmdgraph/cmdgraph/pkg/dot"
	"github.com/cmdgraph/cmdgraph/pkg/errors"
)

// ResolveRedirects runs the second pass over the tree, after [Build] has
// assigned every node an identifier. For each name in a node's redirect list
// it looks up that name among the root's direct children and appends a dashed
// edge from the node to the resolved target.
//
// Redirects resolve against root.Children only, at every depth; a deeply
// nested node's redirects never resolve against intermediate descendants.
// This mirrors the reference command format, where redirects always target
// top-level commands. A name missing from the root's children is fatal.
//
// The resulting dashed edges may close cycles in the output graph (a command
// redirecting to itself is common); the DOT format tolerates this, so no
// cycle detection is performed.
func ResolveRedirects(root *command.Node, ids IDMap, g *dot.Graph) error {
	return resolve(root, root, ids, g)
}

func resolve(n, root *command.Node, ids IDMap, g *dot.Graph) error {
	from, ok := ids[n]
	if !ok {
		return errors.New(errors.ErrCodeInvalidInput, "node has no assigned identifier; run Build first")
	}

	for _, name := range n.Redirect {
		target, ok := root.Children[name]
		if !ok {
			return errors.New(errors.ErrCodeRedirectNotFound, "redirect target %q is not a direct child of the root", name)
		}
		g.AddEdge(dot.Edge{From: from, To: ids[target], Dashed: true})
	}

	for _, child := range n.ChildNames() {
		if err := resolve(n.Children[child], root, ids, g); err != nil {
			return err
		}
	}
	return nil
}
