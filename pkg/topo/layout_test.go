package topo

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeLayoutRows(t *testing.T) {
	ft, err := NewFatTree(2)
	if err != nil {
		t.Fatalf("NewFatTree(2) error: %v", err)
	}
	g, err := ft.GenGraph()
	if err != nil {
		t.Fatalf("GenGraph() error: %v", err)
	}

	l := ft.ComputeLayout(g)

	if len(l.Positions) != g.NodeCount() {
		t.Fatalf("layout has %d positions, want %d", len(l.Positions), g.NodeCount())
	}

	wantRows := []LayoutRow{
		{Layer: LayerToR, Y: 1, IDs: []int{1, 2}},
		{Layer: LayerAggregation, Y: 3, IDs: []int{3, 4}},
		{Layer: LayerCore, Y: 5, IDs: []int{5}},
	}
	if diff := cmp.Diff(wantRows, l.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}

	// Nodes of one layer share the row coordinate; X grows with the ID.
	for _, row := range l.Rows {
		var prevX float64
		for i, id := range row.IDs {
			p := l.Positions[id]
			if p.Y != row.Y {
				t.Errorf("node %d at y=%v, want %v", id, p.Y, row.Y)
			}
			if i > 0 && p.X <= prevX {
				t.Errorf("node %d at x=%v, not right of its predecessor (%v)", id, p.X, prevX)
			}
			prevX = p.X
		}
	}

	// The single core switch sits centered over the two-node rows.
	if got := l.Positions[5].X; math.Abs(got-1.25) > 1e-9 {
		t.Errorf("core switch x = %v, want 1.25", got)
	}
	if got := l.Positions[1].X; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("first ToR x = %v, want 0.5", got)
	}
	if got := l.Positions[2].X; math.Abs(got-2.0) > 1e-9 {
		t.Errorf("second ToR x = %v, want 2.0", got)
	}
}

func TestComputeLayoutEvenSpacing(t *testing.T) {
	ft, err := NewFatTree(4)
	if err != nil {
		t.Fatalf("NewFatTree(4) error: %v", err)
	}
	g, err := ft.GenGraph()
	if err != nil {
		t.Fatalf("GenGraph() error: %v", err)
	}

	l := ft.ComputeLayout(g)
	for _, row := range l.Rows {
		for i := 1; i < len(row.IDs); i++ {
			gap := l.Positions[row.IDs[i]].X - l.Positions[row.IDs[i-1]].X
			if math.Abs(gap-1.5) > 1e-9 {
				t.Errorf("row %q gap between %d and %d is %v, want 1.5",
					row.Layer, row.IDs[i-1], row.IDs[i], gap)
			}
		}
	}
}

func TestComputeLayoutSubgraph(t *testing.T) {
	ft, err := NewFatTree(2)
	if err != nil {
		t.Fatalf("NewFatTree(2) error: %v", err)
	}
	g, err := ft.GenGraph()
	if err != nil {
		t.Fatalf("GenGraph() error: %v", err)
	}

	// Trim the first ToR; the rest must keep their rows and the thinned
	// bottom row recenters under the full aggregation row.
	sub := g.Subgraph([]int{2, 3, 4, 5})
	l := ft.ComputeLayout(sub)

	if _, ok := l.Positions[1]; ok {
		t.Error("trimmed node must not get a position")
	}
	if got := l.Positions[2]; got.Y != 1 {
		t.Errorf("remaining ToR y = %v, want 1 (rows never shift)", got.Y)
	}
	if got := l.Positions[2].X; math.Abs(got-1.25) > 1e-9 {
		t.Errorf("remaining ToR x = %v, want 1.25 (centered)", got)
	}
	if got := l.Positions[3]; got.Y != 3 {
		t.Errorf("aggregation switch y = %v, want 3", got.Y)
	}
}

func TestComputeLayoutNilGraph(t *testing.T) {
	ft, err := NewFatTree(2)
	if err != nil {
		t.Fatalf("NewFatTree(2) error: %v", err)
	}

	// No generated graph yet: empty layout.
	if l := ft.ComputeLayout(nil); len(l.Positions) != 0 {
		t.Errorf("layout before GenGraph has %d positions, want 0", len(l.Positions))
	}

	if _, err := ft.GenGraph(); err != nil {
		t.Fatalf("GenGraph() error: %v", err)
	}
	if l := ft.ComputeLayout(nil); len(l.Positions) != 5 {
		t.Errorf("layout of cached graph has %d positions, want 5", len(l.Positions))
	}
}
