package facet

import (
	"github.com/matst80/slask-photos/pkg/search"
	"github.com/matst80/slask-photos/pkg/types"
)

// Matches decides whether one photo satisfies the filter state, with one
// dimension optionally ignored. Every clause is AND combined. The
// exclusion is only meaningful for facet counting; the filtered view
// always passes DimensionNone.
func Matches(p *types.Photo, f *types.FilterState, excluding types.DimensionId) bool {
	for i := range registry {
		d := &registry[i]
		if d.Id == excluding {
			continue
		}
		if !matchesDimension(d, p, f) {
			return false
		}
	}
	if excluding != types.DimensionSearch && !search.MatchesQuery(p, f.Query) {
		return false
	}
	return true
}

func matchesDimension(d *types.Dimension, p *types.Photo, f *types.FilterState) bool {
	switch d.Kind {
	case types.KindScalar, types.KindOptionalScalar:
		selection := f.Selection(d.Id)
		if len(selection) == 0 {
			return true
		}
		value := d.Scalar(p)
		if value == "" {
			// missing optional value never satisfies an active selection
			return false
		}
		return selection.Has(value)
	case types.KindMultiValue:
		selection := f.Selection(d.Id)
		if len(selection) == 0 {
			return true
		}
		values := d.Values(p)
		if f.Mode(d.Id) == types.ModeIntersection {
			return containsAll(values, selection)
		}
		return containsAny(values, selection)
	case types.KindTriState:
		state := f.State(d.Id)
		if state == "" {
			return true
		}
		return d.MatchState(p, state)
	}
	return true
}

func containsAny(values []string, selection types.ValueSet) bool {
	for _, v := range values {
		if selection.Has(v) {
			return true
		}
	}
	return false
}

func containsAll(values []string, selection types.ValueSet) bool {
	for want := range selection {
		found := false
		for _, v := range values {
			if v == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
