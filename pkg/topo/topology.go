package topo

import (
	"github.com/dctopo/dctopo/pkg/errors"
)

// Family identifies one of the supported topology families. The set is
// closed: graph construction dispatches on the tag instead of subclassing.
type Family int

const (
	FamilyFatTree Family = iota
	FamilyFabric
	FamilyJupiter
	FamilyJupiterBlock
)

// String returns the family name as used in descriptors and CLI output.
func (f Family) String() string {
	switch f {
	case FamilyFatTree:
		return "FatTree"
	case FamilyFabric:
		return "Fabric"
	case FamilyJupiter:
		return "Jupiter"
	case FamilyJupiterBlock:
		return "Jupiter_bl"
	default:
		return "unknown"
	}
}

// Layer names shared across families. Bottom layer is always LayerToR.
const (
	LayerToR         = "tor"
	LayerAggregation = "aggregation"
	LayerCore        = "core"
	LayerFabric      = "fabric"
	LayerSpine       = "spine"
	LayerEdge        = "edge"
)

// Topology is one constructed network instance. It owns its per-layer index
// ranges and, after GenGraph, its graph. Everything except Descriptor is
// immutable once the graph has been generated.
//
// Descriptor is a human-readable label used only for output file naming;
// callers may append suffixes to distinguish variant drawings. It has no
// effect on graph structure.
type Topology struct {
	Family     Family
	Descriptor string

	ranges    []LayerRange
	capFn     CapacityFunc
	topoCapFn TopoCapacityFunc

	// Family-specific parameters; exactly one is populated, per Family.
	fatTree fatTreeParams
	fabric  fabricParams
	jupiter jupiterParams

	graph *Graph
}

// Option configures a Topology during construction.
type Option func(*Topology) error

// WithCapacityFunc supplies a two-argument capacity function. Mutually
// exclusive with WithTopoCapacityFunc.
func WithCapacityFunc(fn CapacityFunc) Option {
	return func(t *Topology) error {
		t.capFn = fn
		return nil
	}
}

// WithTopoCapacityFunc supplies a three-argument capacity function that also
// receives the owning topology, enabling index-range lookups such as "is this
// endpoint a top-of-rack switch". Mutually exclusive with WithCapacityFunc.
func WithTopoCapacityFunc(fn TopoCapacityFunc) Option {
	return func(t *Topology) error {
		t.topoCapFn = fn
		return nil
	}
}

// applyOptions runs opts and checks cross-option constraints.
func (t *Topology) applyOptions(opts []Option) error {
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return err
		}
	}
	if t.capFn != nil && t.topoCapFn != nil {
		return errors.New(errors.ErrCodeInvalidParameter,
			"supply either a capacity function or a topology capacity function, not both")
	}
	return nil
}

// Ranges returns the per-layer index ranges, bottom (top-of-rack) layer first.
func (t *Topology) Ranges() []LayerRange {
	out := make([]LayerRange, len(t.ranges))
	copy(out, t.ranges)
	return out
}

// Range returns the index range of the named layer.
func (t *Topology) Range(name string) (IndexRange, bool) {
	for _, lr := range t.ranges {
		if lr.Name == name {
			return lr.IndexRange, true
		}
	}
	return IndexRange{}, false
}

// LayerOf returns the name of the layer owning the switch ID.
func (t *Topology) LayerOf(id int) (string, bool) {
	for _, lr := range t.ranges {
		if lr.Contains(id) {
			return lr.Name, true
		}
	}
	return "", false
}

// LayerIndex returns the position (0 = bottom/ToR) of the layer owning the
// switch ID, or -1 if the ID is outside every range.
func (t *Topology) LayerIndex(id int) int {
	for i, lr := range t.ranges {
		if lr.Contains(id) {
			return i
		}
	}
	return -1
}

// TotalSwitches returns the number of switches across all layers.
func (t *Topology) TotalSwitches() int {
	if len(t.ranges) == 0 {
		return 0
	}
	return t.ranges[len(t.ranges)-1].End
}

// mustRange returns the named layer's range; it panics if the layer does not
// exist. Builders only look up layers their own constructor allocated.
func (t *Topology) mustRange(name string) IndexRange {
	r, ok := t.Range(name)
	if !ok {
		panic("topo: missing layer " + name)
	}
	return r
}

// GenGraph builds the full graph for the instance, applies the capacity
// function if one was supplied, caches the result, and returns it. Subsequent
// calls return the cached graph.
//
// A failing capacity function surfaces as a CAPACITY_FUNCTION error; the
// partially annotated graph is discarded and not cached, so the next call
// rebuilds from scratch.
func (t *Topology) GenGraph() (*Graph, error) {
	if t.graph != nil {
		return t.graph, nil
	}

	var g *Graph
	var err error
	switch t.Family {
	case FamilyFatTree:
		g, err = buildFatTree(t)
	case FamilyFabric:
		g, err = buildFabric(t)
	case FamilyJupiter:
		g, err = buildJupiter(t)
	case FamilyJupiterBlock:
		g, err = buildJupiterBlock(t)
	default:
		return nil, errors.New(errors.ErrCodeInternal, "unknown topology family %d", t.Family)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build %s graph", t.Family)
	}

	if err := t.applyCapacities(g); err != nil {
		return nil, err
	}

	t.graph = g
	return g, nil
}
