package facet

import (
	"maps"
	"slices"

	"github.com/matst80/slask-photos/pkg/types"
)

// CollectFacets derives the option list of every set dimension. Counts
// for a dimension are computed with that dimension's own constraint
// ignored, so the count shows what selecting the value would yield.
// Full rescan per dimension, no incremental index; a personal catalog
// stays small enough for that to be the simpler correct choice.
func CollectFacets(photos []types.Photo, f *types.FilterState) []types.FacetResult {
	ret := make([]types.FacetResult, 0, len(registry))
	for i := range registry {
		d := &registry[i]
		if !d.IsSet() {
			continue
		}
		ret = append(ret, collectDimension(d, photos, f))
	}
	return ret
}

func collectDimension(d *types.Dimension, photos []types.Photo, f *types.FilterState) types.FacetResult {
	counts := map[string]int{}
	for i := range photos {
		p := &photos[i]
		if !Matches(p, f, d.Id) {
			continue
		}
		switch d.Kind {
		case types.KindScalar, types.KindOptionalScalar:
			if value := d.Scalar(p); value != "" {
				counts[value]++
			}
		case types.KindMultiValue:
			for _, value := range slices.Compact(slices.Sorted(slices.Values(d.Values(p)))) {
				if value != "" {
					counts[value]++
				}
			}
		}
	}

	options := make([]types.FacetOption, 0, len(counts))
	for _, value := range slices.Sorted(maps.Keys(counts)) {
		options = append(options, types.FacetOption{Value: value, Count: counts[value]})
	}
	result := types.FacetResult{
		Id:       d.Id,
		Name:     d.Name,
		Selected: f.Selection(d.Id).Sorted(),
		Options:  options,
	}
	if d.Kind == types.KindMultiValue {
		result.Mode = f.Mode(d.Id)
	}
	return result
}
