package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/dctopo/dctopo/pkg/topo"
)

// layerStyle is the drawing style of one topology layer, indexed by layer
// position (0 = top-of-rack).
type layerStyle struct {
	prefix string
	color  string
}

// Layer styles, bottom up: ToR, pod/aggregation, spine, super-spine.
var layerStyles = []layerStyle{
	{prefix: "t", color: "gray"},
	{prefix: "p", color: "blue"},
	{prefix: "s", color: "black"},
	{prefix: "ss", color: "red"},
}

func styleFor(layerIdx int) layerStyle {
	if layerIdx >= 0 && layerIdx < len(layerStyles) {
		return layerStyles[layerIdx]
	}
	return layerStyle{prefix: "n", color: "black"}
}

// ToDOT converts a topology graph and its layout to Graphviz DOT. Node
// positions are pinned ("x,y!") and the graph is marked for the neato
// engine, so the layered layout survives rasterization unchanged. Core
// switches appear on top (rankdir=BT).
//
// Nodes are labeled by layer prefix and switch ID (t-1, p-9, s-17, ...) and
// colored per layer. Edges with a capacity attribute carry it as a
// head-label.
func ToDOT(t *topo.Topology, g *topo.Graph, l topo.Layout) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", t.Descriptor)
	buf.WriteString("  graph [layout=neato, rankdir=BT, ordering=in, ratio=fill, size=\"20,5!\"];\n")
	buf.WriteString("  node [shape=oval, height=0.8, width=1.0, fontsize=30];\n")
	buf.WriteString("  edge [color=gray, arrowhead=vee];\n")
	buf.WriteString("\n")

	for _, id := range g.Nodes() {
		style := styleFor(t.LayerIndex(id))
		pos, ok := l.Positions[id]
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, "  %d [label=\"%s-%d\", color=%s, pos=\"%.1f,%.1f!\"];\n",
			id, style.prefix, id, style.color, pos.X, pos.Y)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if c, ok := g.Capacity(e.From, e.To); ok {
			fmt.Fprintf(&buf, "  %d -> %d [headlabel=%q];\n", e.From, e.To, formatCapacity(c))
			continue
		}
		fmt.Fprintf(&buf, "  %d -> %d;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// formatCapacity renders a capacity value with the shortest exact decimal
// representation (10 rather than 10.000000).
func formatCapacity(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}
