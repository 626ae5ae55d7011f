package topo

import (
	"errors"
	"slices"
)

var (
	// ErrUnknownNode is returned by [Graph.AddEdge] and [Graph.AddLink] when
	// an endpoint is not a node of the graph.
	ErrUnknownNode = errors.New("unknown node")

	// ErrSelfLoop is returned by [Graph.AddEdge] and [Graph.AddLink] when both
	// endpoints are the same switch. Physical links never loop back.
	ErrSelfLoop = errors.New("self-loop edge")

	// ErrUnknownEdge is returned by [Graph.SetCapacity] when the edge does not
	// exist in the graph.
	ErrUnknownEdge = errors.New("unknown edge")
)

// Edge is a directed arc between two switch IDs. A physical link is stored as
// two arcs, one per direction; see [Graph.AddLink].
type Edge struct {
	From int
	To   int
}

// Graph is a directed graph whose nodes are switch IDs. Edges may carry an
// optional capacity attribute; an edge without one is observably unset,
// distinct from an explicit zero capacity.
//
// The zero value is not usable - use [NewGraph]. Graph is not safe for
// concurrent use.
type Graph struct {
	nodes map[int]struct{}
	edges []Edge
	index map[Edge]struct{}
	succ  map[int][]int
	caps  map[Edge]float64
}

// NewGraph creates a graph containing nodes 1..nodeCount and no edges.
// A nodeCount of zero yields an empty graph.
func NewGraph(nodeCount int) *Graph {
	g := emptyGraph(nodeCount)
	for id := 1; id <= nodeCount; id++ {
		g.nodes[id] = struct{}{}
	}
	return g
}

func emptyGraph(sizeHint int) *Graph {
	return &Graph{
		nodes: make(map[int]struct{}, sizeHint),
		index: make(map[Edge]struct{}),
		succ:  make(map[int][]int),
		caps:  make(map[Edge]float64),
	}
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all node IDs in ascending order.
func (g *Graph) Nodes() []int {
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Edges returns a copy of all directed arcs in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// EdgeCount returns the number of directed arcs.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasEdge reports whether the directed arc u->v exists.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.index[Edge{From: u, To: v}]
	return ok
}

// Succ returns the successors of u in insertion order.
// The returned slice is a read-only view.
func (g *Graph) Succ(u int) []int { return g.succ[u] }

// AddEdge adds the directed arc u->v. Both endpoints must already be nodes,
// and u must differ from v. Adding an arc that already exists is a no-op, so
// builders that revisit pairs (Jupiter's round-robin wiring does, for small
// spine counts) never produce duplicates.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return ErrSelfLoop
	}
	if !g.HasNode(u) || !g.HasNode(v) {
		return ErrUnknownNode
	}
	e := Edge{From: u, To: v}
	if _, dup := g.index[e]; dup {
		return nil
	}
	g.index[e] = struct{}{}
	g.edges = append(g.edges, e)
	g.succ[u] = append(g.succ[u], v)
	return nil
}

// AddLink adds the physical link between u and v as a pair of directed arcs,
// u->v and v->u. This is the edge-direction convention for all topology
// families in this package.
func (g *Graph) AddLink(u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return err
	}
	return g.AddEdge(v, u)
}

// SetCapacity assigns a capacity to the arc u->v. The value is not
// validated: zero and negative capacities pass through unchanged.
func (g *Graph) SetCapacity(u, v int, c float64) error {
	e := Edge{From: u, To: v}
	if _, ok := g.index[e]; !ok {
		return ErrUnknownEdge
	}
	g.caps[e] = c
	return nil
}

// Capacity returns the capacity of the arc u->v and whether one was set.
func (g *Graph) Capacity(u, v int) (float64, bool) {
	c, ok := g.caps[Edge{From: u, To: v}]
	return c, ok
}

// HasCapacities reports whether any arc carries a capacity attribute.
func (g *Graph) HasCapacities() bool { return len(g.caps) > 0 }

// Subgraph returns the node-induced subgraph on ids. IDs that are not nodes
// of g are ignored. Arcs with both endpoints present are kept along with
// their capacity attributes; insertion order is preserved.
func (g *Graph) Subgraph(ids []int) *Graph {
	sub := emptyGraph(len(ids))
	for _, id := range ids {
		if g.HasNode(id) {
			sub.nodes[id] = struct{}{}
		}
	}
	for _, e := range g.edges {
		if !sub.HasNode(e.From) || !sub.HasNode(e.To) {
			continue
		}
		sub.index[e] = struct{}{}
		sub.edges = append(sub.edges, e)
		sub.succ[e.From] = append(sub.succ[e.From], e.To)
		if c, ok := g.caps[e]; ok {
			sub.caps[e] = c
		}
	}
	return sub
}
