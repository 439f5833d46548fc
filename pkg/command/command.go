package command

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"

	"github.com/cmdgraph/cmdgraph/pkg/errors"
)

// Kind identifies the role of a node in the command tree.
type Kind string

const (
	// KindRoot is the unnamed top-level node of the tree.
	KindRoot Kind = "root"
	// KindLiteral is a fixed keyword in the command grammar.
	KindLiteral Kind = "literal"
	// KindArgument is a typed parameter; its Parser names the parsing rule.
	KindArgument Kind = "argument"
)

// Node is one node of the command tree as emitted by the game's data
// generator. The tree is decoded once and never mutated afterwards; computed
// annotations (such as graph identifiers) live in side structures keyed by
// node identity.
type Node struct {
	Kind       Kind             `json:"type"`
	Children   map[string]*Node `json:"children,omitempty"`
	Executable bool             `json:"executable,omitempty"`
	Parser     string           `json:"parser,omitempty"`
	Redirect   []string         `json:"redirect,omitempty"`
}

// Decode deserializes the raw command-tree document into a Node tree.
// Any structural violation fails fast with the decoder error surfaced.
func Decode(data []byte) (*Node, error) {
	var root Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "decode command tree")
	}
	return &root, nil
}

// ChildNames returns the node's child names in sorted order. Insertion order
// of the JSON object is irrelevant for correctness, but every traversal must
// visit children in the same order for reproducible output.
func (n *Node) ChildNames() []string {
	return slices.Sorted(maps.Keys(n.Children))
}

// Count returns the total number of nodes reachable from n, including n.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// StripNamespace returns the portion of a namespaced identifier strictly
// after the first ':'. Argument parser ids always carry a namespace prefix
// (e.g. "brigadier:integer"); a missing prefix is a fatal input-data error.
func StripNamespace(s string) (string, error) {
	i := strings.Index(s, ":")
	if i < 0 {
		return "", errors.New(errors.ErrCodeMissingNamespace, "parser id %q has no namespace separator", s)
	}
	return s[i+1:], nil
}
