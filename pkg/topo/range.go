package topo

import "github.com/dctopo/dctopo/pkg/errors"

// IndexRange is a closed integer interval [Start, End] identifying all switch
// IDs belonging to one layer of a topology. Start <= End always holds for
// ranges produced by AllocateRanges: a layer has at least one switch.
type IndexRange struct {
	Start int
	End   int
}

// Len returns the number of switch IDs in the range.
func (r IndexRange) Len() int { return r.End - r.Start + 1 }

// Contains reports whether id lies inside the range.
func (r IndexRange) Contains(id int) bool { return id >= r.Start && id <= r.End }

// LayerSpec names one layer and its switch count, used as input to
// AllocateRanges. Layers are given bottom (top-of-rack) first.
type LayerSpec struct {
	Name  string
	Count int
}

// LayerRange is an allocated layer: its name plus the ID range it owns.
type LayerRange struct {
	Name string
	IndexRange
}

// AllocateRanges assigns each layer a contiguous ID range, bottom layer
// first, starting at switch ID 1. Consecutive ranges touch exactly
// (next.Start == prev.End + 1), so the union of all ranges is
// [1, sum of counts] with no gaps or overlaps.
//
// Returns an INVALID_PARAMETER error if any layer's switch count is not
// positive.
func AllocateRanges(layers []LayerSpec) ([]LayerRange, error) {
	if len(layers) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "topology must have at least one layer")
	}

	out := make([]LayerRange, 0, len(layers))
	next := 1
	for _, l := range layers {
		if l.Count <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidParameter,
				"layer %q must have a positive switch count, got %d", l.Name, l.Count)
		}
		out = append(out, LayerRange{
			Name:       l.Name,
			IndexRange: IndexRange{Start: next, End: next + l.Count - 1},
		})
		next += l.Count
	}
	return out, nil
}
