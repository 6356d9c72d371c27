package facet

import (
	"github.com/matst80/slask-photos/pkg/types"
)

// ChipGroups flattens the filter state into removable chips, one group
// per active dimension plus the tri-states and the search text.
func ChipGroups(f *types.FilterState) []types.ChipGroup {
	ret := make([]types.ChipGroup, 0, len(f.Selections)+len(f.States)+1)
	for i := range registry {
		d := &registry[i]
		switch {
		case d.IsSet():
			selection := f.Selection(d.Id)
			if len(selection) == 0 {
				continue
			}
			group := types.ChipGroup{
				DimensionId: d.Id,
				Name:        d.Name,
				Chips:       make([]types.ActiveChip, 0, len(selection)),
			}
			if d.Kind == types.KindMultiValue {
				group.Mode = f.Mode(d.Id)
			}
			for _, value := range selection.Sorted() {
				group.Chips = append(group.Chips, types.ActiveChip{
					Id:    types.ChipId(d.Id, value),
					Label: value,
				})
			}
			ret = append(ret, group)
		case d.Kind == types.KindTriState:
			state := f.State(d.Id)
			if state == "" {
				continue
			}
			ret = append(ret, types.ChipGroup{
				DimensionId: d.Id,
				Name:        d.Name,
				Chips: []types.ActiveChip{
					{Id: types.ChipId(d.Id, state), Label: state},
				},
			})
		}
	}
	if f.Query != "" {
		ret = append(ret, types.ChipGroup{
			DimensionId: types.DimensionSearch,
			Name:        "Search",
			Chips: []types.ActiveChip{
				{Id: types.ChipId(types.DimensionSearch, f.Query), Label: f.Query},
			},
		})
	}
	return ret
}

// RemoveChip undoes exactly one chip: one value of a set dimension, or
// the whole tri-state/search field for the bespoke dimensions. Unknown
// ids are a silent no-op.
func RemoveChip(f *types.FilterState, chipId string) {
	dimId, value, ok := types.ParseChipId(chipId)
	if !ok {
		return
	}
	if dimId == types.DimensionSearch {
		f.SetQuery("")
		return
	}
	d, found := GetDimension(dimId)
	if !found {
		return
	}
	switch d.Kind {
	case types.KindTriState:
		f.SetState(d.Id, "")
	default:
		f.RemoveValue(d.Id, value)
	}
}
