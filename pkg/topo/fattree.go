package topo

import (
	"fmt"

	"github.com/dctopo/dctopo/pkg/errors"
)

// fatTreeParams holds the single scaling parameter of a k-ary fat-tree.
type fatTreeParams struct {
	portCount int
}

// NewFatTree constructs a classical k-ary fat-tree from the port count of its
// building switches (structure per Al-Fares et al., SIGCOMM 2008).
//
// With k ports there are k pods, each with k/2 top-of-rack and k/2
// aggregation switches, and (k/2)^2 core switches. The port count must be a
// positive even number; otherwise construction fails with INVALID_PARAMETER.
func NewFatTree(portCount int, opts ...Option) (*Topology, error) {
	if err := errors.RequirePositive("port count", portCount); err != nil {
		return nil, err
	}
	if err := errors.RequireEven("port count", portCount); err != nil {
		return nil, err
	}

	pods := portCount
	half := portCount / 2
	ranges, err := AllocateRanges([]LayerSpec{
		{Name: LayerToR, Count: pods * half},
		{Name: LayerAggregation, Count: pods * half},
		{Name: LayerCore, Count: half * half},
	})
	if err != nil {
		return nil, err
	}

	t := &Topology{
		Family:     FamilyFatTree,
		Descriptor: fmt.Sprintf("FatTree_%d", portCount),
		ranges:     ranges,
		fatTree:    fatTreeParams{portCount: portCount},
	}
	if err := t.applyOptions(opts); err != nil {
		return nil, err
	}
	return t, nil
}

// buildFatTree wires the fat-tree: every ToR connects to every aggregation
// switch in its pod, and the aggregation switches of each pod fan out to the
// core groups, one group of k/2 core switches per aggregation position.
func buildFatTree(t *Topology) (*Graph, error) {
	pods := t.fatTree.portCount
	tor := t.mustRange(LayerToR)
	agg := t.mustRange(LayerAggregation)
	core := t.mustRange(LayerCore)

	g := NewGraph(t.TotalSwitches())

	// Wiring inside pods. The pod index advances every time the ToR cursor
	// crosses into the next pod's ToR block.
	torPerPod := tor.Len() / pods
	aggPerPod := agg.Len() / pods
	podStep := 0
	for i := 0; i < tor.Len(); i++ {
		if i > 0 && i%torPerPod == 0 {
			podStep += aggPerPod
		}
		for j := 0; j < aggPerPod; j++ {
			if err := g.AddLink(tor.Start+i, agg.Start+podStep+j); err != nil {
				return nil, err
			}
		}
	}

	// Wiring to the core. Each aggregation switch owns a group of k/2 core
	// switches; the group cursor resets at every pod boundary.
	perGroup := pods / 2
	groupStep := 0
	for i := 0; i < agg.Len(); i++ {
		if i > 0 && i%aggPerPod == 0 {
			groupStep = 0
		}
		for j := 0; j < perGroup; j++ {
			if err := g.AddLink(agg.Start+i, core.Start+groupStep+j); err != nil {
				return nil, err
			}
		}
		groupStep += perGroup
	}

	return g, nil
}
