package topo

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dctopo/dctopo/pkg/errors"
)

func TestAllocateRanges(t *testing.T) {
	tests := []struct {
		name   string
		layers []LayerSpec
		want   []LayerRange
	}{
		{
			name:   "single layer",
			layers: []LayerSpec{{Name: LayerToR, Count: 4}},
			want: []LayerRange{
				{Name: LayerToR, IndexRange: IndexRange{Start: 1, End: 4}},
			},
		},
		{
			name: "three layers",
			layers: []LayerSpec{
				{Name: LayerToR, Count: 8},
				{Name: LayerAggregation, Count: 8},
				{Name: LayerCore, Count: 4},
			},
			want: []LayerRange{
				{Name: LayerToR, IndexRange: IndexRange{Start: 1, End: 8}},
				{Name: LayerAggregation, IndexRange: IndexRange{Start: 9, End: 16}},
				{Name: LayerCore, IndexRange: IndexRange{Start: 17, End: 20}},
			},
		},
		{
			name: "width one layers",
			layers: []LayerSpec{
				{Name: LayerToR, Count: 1},
				{Name: LayerSpine, Count: 1},
			},
			want: []LayerRange{
				{Name: LayerToR, IndexRange: IndexRange{Start: 1, End: 1}},
				{Name: LayerSpine, IndexRange: IndexRange{Start: 2, End: 2}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AllocateRanges(tt.layers)
			if err != nil {
				t.Fatalf("AllocateRanges() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ranges mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAllocateRangesContiguous(t *testing.T) {
	layers := []LayerSpec{
		{Name: LayerToR, Count: 96},
		{Name: LayerFabric, Count: 8},
		{Name: LayerSpine, Count: 8},
		{Name: LayerEdge, Count: 4},
	}
	ranges, err := AllocateRanges(layers)
	if err != nil {
		t.Fatalf("AllocateRanges() error: %v", err)
	}

	if ranges[0].Start != 1 {
		t.Errorf("first range starts at %d, want 1", ranges[0].Start)
	}
	total := 0
	for i, r := range ranges {
		if r.Len() != layers[i].Count {
			t.Errorf("layer %q has %d IDs, want %d", r.Name, r.Len(), layers[i].Count)
		}
		if i > 0 && r.Start != ranges[i-1].End+1 {
			t.Errorf("layer %q starts at %d, want %d", r.Name, r.Start, ranges[i-1].End+1)
		}
		total += layers[i].Count
	}
	if last := ranges[len(ranges)-1].End; last != total {
		t.Errorf("last ID is %d, want %d", last, total)
	}
}

func TestAllocateRangesErrors(t *testing.T) {
	tests := []struct {
		name   string
		layers []LayerSpec
	}{
		{name: "no layers", layers: nil},
		{name: "zero count", layers: []LayerSpec{{Name: LayerToR, Count: 0}}},
		{name: "negative count", layers: []LayerSpec{
			{Name: LayerToR, Count: 4},
			{Name: LayerSpine, Count: -1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AllocateRanges(tt.layers)
			if err == nil {
				t.Fatal("AllocateRanges() should fail")
			}
			if !errors.Is(err, errors.ErrCodeInvalidParameter) {
				t.Errorf("error code = %v, want INVALID_PARAMETER", errors.GetCode(err))
			}
		})
	}
}

func TestIndexRange(t *testing.T) {
	r := IndexRange{Start: 5, End: 9}

	if got := r.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
	for id, want := range map[int]bool{4: false, 5: true, 7: true, 9: true, 10: false} {
		if got := r.Contains(id); got != want {
			t.Errorf("Contains(%d) = %v, want %v", id, got, want)
		}
	}
}
