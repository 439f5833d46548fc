// Package dot renders an ordered sequence of graph statements as a DOT
// document.
//
// This is deliberately not a general graph library: it produces exactly the
// one shape the converter needs, a strict digraph of box nodes with solid
// structural edges and dashed redirect edges. Statements render in append
// order, so the emitter fully controls output ordering.
//
//	g := dot.New()
//	g.AddNode(dot.Node{ID: 0, Label: "(root)", Fill: dot.FillPlain})
//	g.AddNode(dot.Node{ID: 1, Label: `"help"`, Fill: dot.FillExecutable})
//	g.AddEdge(dot.Edge{From: 0, To: 1})
//	fmt.Print(g.String())
package dot
