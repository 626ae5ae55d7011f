package topo

import (
	"github.com/dctopo/dctopo/pkg/errors"
)

// CapacityFunc maps a directed arc to a capacity value. Returning ok=false
// leaves that arc's capacity unset. The function must be pure with respect to
// its inputs: the dispatcher guarantees one call per arc but no call order.
type CapacityFunc func(from, to int) (capacity float64, ok bool)

// TopoCapacityFunc is the three-argument capacity function shape: it
// additionally receives the owning Topology so it can classify endpoints by
// layer, e.g. via [Topology.Range] or [Topology.LayerOf].
type TopoCapacityFunc func(from, to int, t *Topology) (capacity float64, ok bool)

// applyCapacities runs the configured capacity function over every arc of g.
// With no function configured the graph is left untouched: no arc gains a
// capacity attribute.
//
// Exactly one of the two function shapes is configured (enforced at
// construction), so dispatch is a single branch. The function is treated as
// untrusted: a panic is recovered and surfaced as a CAPACITY_FUNCTION error,
// aborting the pass. Returned values are not validated - zero and negative
// capacities are stored as-is.
func (t *Topology) applyCapacities(g *Graph) (err error) {
	if t.capFn == nil && t.topoCapFn == nil {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = errors.New(errors.ErrCodeCapacityFunction, "capacity function failed on %s: %v", t.Descriptor, r)
		}
	}()

	for _, e := range g.Edges() {
		var c float64
		var ok bool
		if t.capFn != nil {
			c, ok = t.capFn(e.From, e.To)
		} else {
			c, ok = t.topoCapFn(e.From, e.To, t)
		}
		if !ok {
			continue
		}
		if serr := g.SetCapacity(e.From, e.To, c); serr != nil {
			return errors.Wrap(errors.ErrCodeInternal, serr, "set capacity on %d->%d", e.From, e.To)
		}
	}
	return nil
}
