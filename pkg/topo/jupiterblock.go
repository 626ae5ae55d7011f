package topo

import "fmt"

// jupiterBlockUplinks is the number of depopulated uplink ports per middle
// block at the block abstraction level.
const jupiterBlockUplinks = 32

// NewJupiterBlock constructs Google's Jupiter topology at the block
// abstraction level: each middle block and each spine block is a single
// node. Shares the block dimensions and parameter validation of
// [NewJupiter].
//
// Layers, bottom first: ToR (32 per aggregation block), aggregation (8 middle
// blocks per aggregation block), spine (one node per spine block).
func NewJupiterBlock(spineBlocks, aggBlocks int, opts ...Option) (*Topology, error) {
	if err := validateJupiterParams(spineBlocks, aggBlocks); err != nil {
		return nil, err
	}

	ranges, err := AllocateRanges([]LayerSpec{
		{Name: LayerToR, Count: aggBlocks * jupiterToRsPerAggBlock},
		{Name: LayerAggregation, Count: aggBlocks * jupiterMiddleBlocksPerAgg},
		{Name: LayerSpine, Count: spineBlocks},
	})
	if err != nil {
		return nil, err
	}

	t := &Topology{
		Family:     FamilyJupiterBlock,
		Descriptor: fmt.Sprintf("Jupiter_bl_%d_%d", spineBlocks, aggBlocks),
		ranges:     ranges,
		jupiter:    jupiterParams{spineBlocks: spineBlocks, aggBlocks: aggBlocks},
	}
	if err := t.applyOptions(opts); err != nil {
		return nil, err
	}
	return t, nil
}

// buildJupiterBlock wires the block-level Jupiter: every ToR connects to all
// eight middle blocks of its aggregation block, and middle blocks spread
// their uplinks over the spine blocks.
func buildJupiterBlock(t *Topology) (*Graph, error) {
	p := t.jupiter
	tor := t.mustRange(LayerToR)
	agg := t.mustRange(LayerAggregation)
	spine := t.mustRange(LayerSpine)

	g := NewGraph(t.TotalSwitches())

	// ToR to middle blocks.
	for ab := 0; ab < p.aggBlocks; ab++ {
		for tr := 0; tr < jupiterToRsPerAggBlock; tr++ {
			torID := tor.Start + ab*jupiterToRsPerAggBlock + tr
			for out := 0; out < jupiterMiddleBlocksPerAgg; out++ {
				if err := g.AddLink(torID, agg.Start+ab*jupiterMiddleBlocksPerAgg+out); err != nil {
					return nil, err
				}
			}
		}
	}

	// Middle blocks to spine blocks. With few spine blocks every middle block
	// reaches all of them (multiple physical links collapse into one graph
	// link); with more spine blocks than uplink ports each middle block
	// covers a round-robin subset, the cursor persisting across blocks.
	spineBlockIdx := 0
	for ab := 0; ab < p.aggBlocks; ab++ {
		for mb := 0; mb < jupiterMiddleBlocksPerAgg; mb++ {
			aggID := agg.Start + ab*jupiterMiddleBlocksPerAgg + mb
			if jupiterBlockUplinks >= p.spineBlocks {
				for s := 0; s < p.spineBlocks; s++ {
					if err := g.AddLink(aggID, spine.Start+s); err != nil {
						return nil, err
					}
				}
				continue
			}
			for k := 0; k < jupiterBlockUplinks; k++ {
				if err := g.AddLink(aggID, spine.Start+spineBlockIdx); err != nil {
					return nil, err
				}
				spineBlockIdx++
				if spineBlockIdx == p.spineBlocks {
					spineBlockIdx = 0
				}
			}
		}
	}

	return g, nil
}
