package topo

import (
	"gonum.org/v1/gonum/floats"
)

// Drawing geometry, in abstract drawing units. Values are exactly
// representable in binary so row centering stays free of rounding drift at
// scale.
const (
	layoutNodeWidth = 1.0
	layoutNodeGap   = 0.5
	layoutRowGap    = 2.0
	layoutBaseY     = 1.0
)

// Point is a 2D drawing coordinate.
type Point struct {
	X, Y float64
}

// LayoutRow describes one drawn layer: its name, fixed row coordinate, and
// the present node IDs in ascending order.
type LayoutRow struct {
	Layer string
	Y     float64
	IDs   []int
}

// Layout maps switch IDs to drawing positions. Nodes of the same layer share
// a row coordinate; within a row, horizontal positions ascend with the
// switch ID.
type Layout struct {
	Positions map[int]Point
	Rows      []LayoutRow
}

// ComputeLayout assigns a drawing position to every node of g.
//
// Each layer occupies a fixed row, bottom (top-of-rack) layer first. A
// layer's row coordinate depends only on its position in the topology, so
// trimming a layer empty never shifts the remaining rows. Within a row the
// present nodes are ordered by ascending ID, spaced evenly, and centered on
// the widest present row, keeping trimmed rows visually centered beneath
// their neighbors.
//
// g may be a node-induced subgraph of the generated graph; absent nodes get
// no layout entry. A nil g uses the cached full graph from GenGraph (empty
// layout if the graph has not been generated yet).
func (t *Topology) ComputeLayout(g *Graph) Layout {
	if g == nil {
		g = t.graph
	}
	l := Layout{Positions: make(map[int]Point)}
	if g == nil {
		return l
	}

	nodes := g.Nodes()
	step := layoutNodeWidth + layoutNodeGap

	// First pass: group present nodes per layer and find the widest row.
	rows := make([]LayoutRow, len(t.ranges))
	maxWidth := 0.0
	for i, lr := range t.ranges {
		var ids []int
		for _, id := range nodes {
			if lr.Contains(id) {
				ids = append(ids, id) // nodes is sorted, so ids stays sorted
			}
		}
		rows[i] = LayoutRow{Layer: lr.Name, Y: layoutBaseY + layoutRowGap*float64(i), IDs: ids}
		if w := rowWidth(len(ids)); w > maxWidth {
			maxWidth = w
		}
	}

	// Second pass: distribute each row's nodes, centered independently.
	for _, row := range rows {
		n := len(row.IDs)
		if n == 0 {
			continue
		}
		first := (maxWidth-rowWidth(n))/2 + layoutNodeWidth/2
		if n == 1 {
			l.Positions[row.IDs[0]] = Point{X: first, Y: row.Y}
			continue
		}
		xs := make([]float64, n)
		floats.Span(xs, first, first+float64(n-1)*step)
		for j, id := range row.IDs {
			l.Positions[id] = Point{X: xs[j], Y: row.Y}
		}
	}

	l.Rows = rows
	return l
}

// rowWidth returns the drawn width of a row of n nodes.
func rowWidth(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*layoutNodeWidth + float64(n-1)*layoutNodeGap
}
