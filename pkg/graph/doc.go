// Package graph turns a parsed command tree into DOT graph statements.
//
// The conversion is two explicit passes over the same tree:
//
//  1. [Build] assigns dense pre-order identifiers, emits one box node per
//     command node and a solid edge from each node to its parent.
//  2. [ResolveRedirects] follows each node's redirect names to the root's
//     direct children and appends dashed cross-edges.
//
// The passes communicate only through the [IDMap] returned by Build; the
// parsed tree is never mutated, which keeps the data dependency between the
// passes explicit and lets each be tested in isolation.
package graph
