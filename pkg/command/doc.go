// Package command models the hierarchical command-tree document produced by
// the game's data generator.
//
// The document is a single JSON object of nested named nodes:
//
//	{
//	  "type": "root",
//	  "children": {
//	    "give": {
//	      "type": "literal",
//	      "children": {
//	        "count": {"type": "argument", "parser": "brigadier:integer", "executable": true}
//	      }
//	    }
//	  }
//	}
//
// Three node kinds exist: the unnamed root, literal keywords, and typed
// arguments. A node may additionally carry a "redirect" list naming top-level
// commands where parsing continues; redirects are resolved by pkg/graph
// against the root's direct children only.
//
// The decoded tree is immutable. All traversals iterate children via
// [Node.ChildNames] so that a given input always produces byte-identical
// output.
package command
