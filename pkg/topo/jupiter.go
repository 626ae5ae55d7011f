package topo

import (
	"fmt"

	"github.com/dctopo/dctopo/pkg/errors"
)

// Fixed Jupiter building-block dimensions (Singh et al., SIGCOMM 2015).
// Both abstraction levels share the block structure; only the node
// granularity differs.
const (
	jupiterSwitchesPerSpineBlock  = 6
	jupiterSwitchesPerMiddleBlock = 4
	jupiterMiddleBlocksPerAgg     = 8
	jupiterToRsPerAggBlock        = 32
)

// Default block counts for a full-scale Jupiter instance.
const (
	DefaultJupiterSpineBlocks = 256
	DefaultJupiterAggBlocks   = 64
)

// jupiterParams holds the block counts shared by both Jupiter abstraction
// levels.
type jupiterParams struct {
	spineBlocks int
	aggBlocks   int
}

func validateJupiterParams(spineBlocks, aggBlocks int) error {
	if err := errors.RequirePositive("spine blocks", spineBlocks); err != nil {
		return err
	}
	if err := errors.RequirePositive("aggregation blocks", aggBlocks); err != nil {
		return err
	}
	if spineBlocks < aggBlocks {
		return errors.New(errors.ErrCodeInvalidParameter,
			"need at least as many spine blocks (%d) as aggregation blocks (%d)", spineBlocks, aggBlocks)
	}
	return nil
}

// NewJupiter constructs Google's Jupiter topology at the Centauri-switch
// abstraction level: individual switches inside middle blocks and spine
// blocks are modeled as nodes. Some redundant connections outside the server
// pods are simplified.
//
// Layers, bottom first: ToR (32 per aggregation block), aggregation (8 middle
// blocks of 4 switches per aggregation block), spine (6 switches per spine
// block). Requires spineBlocks >= aggBlocks, both positive.
func NewJupiter(spineBlocks, aggBlocks int, opts ...Option) (*Topology, error) {
	if err := validateJupiterParams(spineBlocks, aggBlocks); err != nil {
		return nil, err
	}

	ranges, err := AllocateRanges([]LayerSpec{
		{Name: LayerToR, Count: aggBlocks * jupiterToRsPerAggBlock},
		{Name: LayerAggregation, Count: aggBlocks * jupiterMiddleBlocksPerAgg * jupiterSwitchesPerMiddleBlock},
		{Name: LayerSpine, Count: spineBlocks * jupiterSwitchesPerSpineBlock},
	})
	if err != nil {
		return nil, err
	}

	t := &Topology{
		Family:     FamilyJupiter,
		Descriptor: fmt.Sprintf("Jupiter_%d_%d", spineBlocks, aggBlocks),
		ranges:     ranges,
		jupiter:    jupiterParams{spineBlocks: spineBlocks, aggBlocks: aggBlocks},
	}
	if err := t.applyOptions(opts); err != nil {
		return nil, err
	}
	return t, nil
}

// buildJupiter wires the switch-level Jupiter. Switches within a spine block
// and within a middle block form cliques; aggregation switches distribute
// eight uplinks each round-robin over the spine blocks; every ToR connects to
// two Centauri chassis in each of its eight middle blocks for dual
// redundancy.
func buildJupiter(t *Topology) (*Graph, error) {
	p := t.jupiter
	tor := t.mustRange(LayerToR)
	agg := t.mustRange(LayerAggregation)
	spine := t.mustRange(LayerSpine)

	g := NewGraph(t.TotalSwitches())

	// Intra-spine cliques.
	for b := 0; b < p.spineBlocks; b++ {
		base := spine.Start + b*jupiterSwitchesPerSpineBlock
		for s := 0; s < jupiterSwitchesPerSpineBlock; s++ {
			for prev := 0; prev < s; prev++ {
				if err := g.AddLink(base+s, base+prev); err != nil {
					return nil, err
				}
			}
		}
	}

	// Aggregation layer: middle-block cliques plus spine uplinks. The spine
	// cursor persists across aggregation blocks so the eight uplinks per
	// switch spread evenly over all spine blocks, advancing to the next
	// switch position whenever the block cursor wraps.
	spineBlockIdx, spineSwitchPos := 0, 0
	for ab := 0; ab < p.aggBlocks; ab++ {
		for mb := 0; mb < jupiterMiddleBlocksPerAgg; mb++ {
			mbBase := agg.Start + (ab*jupiterMiddleBlocksPerAgg+mb)*jupiterSwitchesPerMiddleBlock
			for s := 0; s < jupiterSwitchesPerMiddleBlock; s++ {
				cur := mbBase + s
				for prev := 0; prev < s; prev++ {
					if err := g.AddLink(cur, mbBase+prev); err != nil {
						return nil, err
					}
				}
				for k := 0; k < 8; k++ {
					up := spine.Start + spineBlockIdx*jupiterSwitchesPerSpineBlock + spineSwitchPos
					if err := g.AddLink(cur, up); err != nil {
						return nil, err
					}
					spineBlockIdx = (spineBlockIdx + 1) % p.spineBlocks
					if spineBlockIdx == 0 {
						spineSwitchPos = (spineSwitchPos + 1) % jupiterSwitchesPerSpineBlock
					}
				}
			}
		}
	}

	// ToR layer: eight uplink pairs per ToR, each pair landing on two
	// adjacent Centauri chassis of the same middle block.
	for ab := 0; ab < p.aggBlocks; ab++ {
		for tr := 0; tr < jupiterToRsPerAggBlock; tr++ {
			torID := tor.Start + ab*jupiterToRsPerAggBlock + tr
			pos := tr / 8 // splits the block's ToRs evenly over the four chassis
			for out := 0; out < jupiterMiddleBlocksPerAgg; out++ {
				mbBase := agg.Start + (ab*jupiterMiddleBlocksPerAgg+out)*jupiterSwitchesPerMiddleBlock
				if err := g.AddLink(torID, mbBase+pos); err != nil {
					return nil, err
				}
				if err := g.AddLink(torID, mbBase+(pos+1)%jupiterSwitchesPerMiddleBlock); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
