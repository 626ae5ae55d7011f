package topo

import (
	"fmt"

	"github.com/dctopo/dctopo/pkg/errors"
)

// Fabric defaults, matching the published design: four spine planes and
// 48-port top-of-rack fan-out per server pod.
const (
	DefaultFabricPlanes    = 4
	DefaultFabricPortCount = 48
)

// fabricParams holds the scaling parameters of Facebook's Fabric topology.
type fabricParams struct {
	serverPods int
	edgePods   int
	planes     int
	portCount  int
}

// WithPlanes overrides the number of spine planes (default 4).
// Only valid for Fabric topologies.
func WithPlanes(n int) Option {
	return func(t *Topology) error {
		if t.Family != FamilyFabric {
			return errors.New(errors.ErrCodeInvalidParameter, "planes apply only to Fabric topologies")
		}
		t.fabric.planes = n
		return nil
	}
}

// WithPortCount overrides the number of ToR switches per server pod
// (default 48). Only valid for Fabric topologies.
func WithPortCount(n int) Option {
	return func(t *Topology) error {
		if t.Family != FamilyFabric {
			return errors.New(errors.ErrCodeInvalidParameter, "port count applies only to Fabric topologies")
		}
		t.fabric.portCount = n
		return nil
	}
}

// NewFabric constructs Facebook's Fabric topology from the number of server
// pods and Internet-facing edge pods. Plane and port counts default to the
// published design and can be overridden with [WithPlanes] and
// [WithPortCount].
//
// Layers, bottom first: ToR, fabric, spine, edge. Every server pod holds
// portCount ToR switches plus one fabric switch per plane; the spine holds
// one switch per plane per server pod; each edge pod holds one switch per
// plane.
func NewFabric(serverPods, edgePods int, opts ...Option) (*Topology, error) {
	t := &Topology{
		Family: FamilyFabric,
		fabric: fabricParams{
			serverPods: serverPods,
			edgePods:   edgePods,
			planes:     DefaultFabricPlanes,
			portCount:  DefaultFabricPortCount,
		},
	}
	if err := t.applyOptions(opts); err != nil {
		return nil, err
	}

	p := t.fabric
	for _, check := range []error{
		errors.RequirePositive("server pods", p.serverPods),
		errors.RequirePositive("edge pods", p.edgePods),
		errors.RequirePositive("planes", p.planes),
		errors.RequirePositive("port count", p.portCount),
	} {
		if check != nil {
			return nil, check
		}
	}

	ranges, err := AllocateRanges([]LayerSpec{
		{Name: LayerToR, Count: p.portCount * p.serverPods},
		{Name: LayerFabric, Count: p.planes * p.serverPods},
		{Name: LayerSpine, Count: p.planes * p.serverPods},
		{Name: LayerEdge, Count: p.edgePods * p.planes},
	})
	if err != nil {
		return nil, err
	}

	t.ranges = ranges
	t.Descriptor = fmt.Sprintf("Fabric_%d_%d_%d_%d", p.serverPods, p.edgePods, p.planes, p.portCount)
	return t, nil
}

// buildFabric wires the Fabric: each ToR connects to every fabric switch of
// its pod, and fabric and edge switches connect to all spine switches of
// their plane, planes assigned round-robin.
func buildFabric(t *Topology) (*Graph, error) {
	p := t.fabric
	tor := t.mustRange(LayerToR)
	fab := t.mustRange(LayerFabric)
	spine := t.mustRange(LayerSpine)
	edge := t.mustRange(LayerEdge)

	g := NewGraph(t.TotalSwitches())

	// Intra-pod links.
	for i := tor.Start; i <= tor.End; i++ {
		podIdx := (i - tor.Start) / p.portCount
		for j := 0; j < p.planes; j++ {
			if err := g.AddLink(i, fab.Start+p.planes*podIdx+j); err != nil {
				return nil, err
			}
		}
	}

	// connectPlane links one switch to the complete plane of spine switches.
	// Spine switch s belongs to plane (s - spine.Start) % planes.
	connectPlane := func(plane, switchID int) error {
		for cur := spine.Start + plane; cur <= spine.End; cur += p.planes {
			if err := g.AddLink(cur, switchID); err != nil {
				return err
			}
		}
		return nil
	}

	plane := 0
	for i := fab.Start; i <= fab.End; i++ {
		if err := connectPlane(plane, i); err != nil {
			return nil, err
		}
		plane = (plane + 1) % p.planes
	}

	plane = 0
	for i := edge.Start; i <= edge.End; i++ {
		if err := connectPlane(plane, i); err != nil {
			return nil, err
		}
		plane = (plane + 1) % p.planes
	}

	return g, nil
}
