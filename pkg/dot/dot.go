package dot

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Fill colors used by the converter. Executable commands are highlighted,
// everything else stays white.
const (
	FillExecutable = "palegreen"
	FillPlain      = "white"
)

// Statement is one line of the graph body. Statements render in the exact
// order they were appended, which is what makes the converter's output
// deterministic and keeps dashed redirect edges after all structural
// elements.
type Statement interface {
	writeTo(buf *bytes.Buffer)
}

// Node is a node statement. ID is the dense integer assigned during the
// builder pass; Fill is a Graphviz color name.
type Node struct {
	ID    int
	Label string
	Fill  string
}

func (n Node) writeTo(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  %d [shape=box, label=\"%s\", style=filled, fillcolor=%s, fontcolor=black, color=black];\n",
		n.ID, escape(n.Label), n.Fill)
}

// Edge is a directed edge statement. Structural parent→child edges are solid;
// redirect edges are dashed.
type Edge struct {
	From   int
	To     int
	Dashed bool
}

func (e Edge) writeTo(buf *bytes.Buffer) {
	if e.Dashed {
		fmt.Fprintf(buf, "  %d -> %d [style=dashed];\n", e.From, e.To)
		return
	}
	fmt.Fprintf(buf, "  %d -> %d;\n", e.From, e.To)
}

// Graph is an ordered sequence of statements rendered as a strict directed
// graph. "strict" instructs a rendering consumer to merge parallel edges;
// cycles introduced by redirect edges are tolerated by the format.
type Graph struct {
	stmts  []Statement
	nodes  int
	edges  int
	dashed int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{}
}

// AddNode appends a node statement.
func (g *Graph) AddNode(n Node) {
	g.stmts = append(g.stmts, n)
	g.nodes++
}

// AddEdge appends an edge statement.
func (g *Graph) AddEdge(e Edge) {
	g.stmts = append(g.stmts, e)
	g.edges++
	if e.Dashed {
		g.dashed++
	}
}

// NodeCount returns the number of node statements.
func (g *Graph) NodeCount() int { return g.nodes }

// EdgeCount returns the number of edge statements, solid and dashed.
func (g *Graph) EdgeCount() int { return g.edges }

// DashedCount returns the number of dashed edge statements.
func (g *Graph) DashedCount() int { return g.dashed }

// String renders the graph as a DOT document.
func (g *Graph) String() string {
	var buf bytes.Buffer
	buf.WriteString("strict digraph {\n")
	for _, s := range g.stmts {
		s.writeTo(&buf)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// Write renders the graph as a DOT document to w.
func (g *Graph) Write(w io.Writer) error {
	_, err := io.WriteString(w, g.String())
	return err
}

// escape makes a label safe for a DOT double-quoted string. Newlines become
// the \n line-break escape Graphviz expects inside labels.
func escape(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
