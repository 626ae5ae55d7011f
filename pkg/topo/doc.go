// Package topo generates scalable datacenter network topologies as directed
// graphs with per-layer switch-ID ranges, optional per-link capacity
// annotations, and a layered drawing layout.
//
// # Overview
//
// A [Topology] is constructed from family-specific parameters (FatTree's port
// count, Fabric's pod and plane counts, Jupiter's block counts). Construction
// validates the parameters and allocates one contiguous [IndexRange] of switch
// IDs per layer, bottom (top-of-rack) layer first, starting at ID 1. Ranges
// for distinct layers never overlap and cover [1, TotalSwitches] without gaps.
//
// [Topology.GenGraph] builds (and caches) the directed [Graph] for the
// instance: nodes are switch IDs, and every physical link is stored as a pair
// of directed arcs, one per direction. Graph construction is a pure function
// of the construction parameters - identical parameters always produce an
// identical edge set, not merely an isomorphic one.
//
// # Families
//
// The family set is closed: [FamilyFatTree], [FamilyFabric], [FamilyJupiter],
// and [FamilyJupiterBlock]. Each family is a tagged variant dispatched inside
// GenGraph rather than a subclass hierarchy; the connection rules reproduce
// the published structure of each design (the k-ary fat-tree, Facebook's
// plane-based Fabric, and two abstraction levels of Google's Jupiter, with
// and without individual switches inside the blocks).
//
// # Capacities
//
// An optional capacity function supplied at construction is applied once per
// arc during GenGraph. Two signatures are supported - see [CapacityFunc] and
// [TopoCapacityFunc]. An edge without an assigned capacity is observably
// unset, distinct from an explicit zero.
//
// # Layout
//
// [Topology.ComputeLayout] places each layer on a fixed horizontal row
// (bottom layer first) and distributes the present nodes of each row evenly,
// ordered by ascending switch ID and centered independently per row. It
// accepts node-induced subgraphs produced by [Graph.Subgraph], so partial
// drawings (a single pod, a trimmed spine) stay visually centered.
//
// All operations are synchronous and free of shared mutable state; a
// Topology is not safe for concurrent use.
package topo
