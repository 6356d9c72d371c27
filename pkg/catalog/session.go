package catalog

import (
	"sync"

	"github.com/matst80/slask-photos/pkg/facet"
	"github.com/matst80/slask-photos/pkg/sorting"
	"github.com/matst80/slask-photos/pkg/types"
)

// Session is one browsing pipeline: a filter state and sort selection
// over the shared catalog, with the derived views recomputed to
// completion inside every mutating call. The mutex only serializes the
// surrounding HTTP handlers; each run itself is synchronous.
type Session struct {
	mu       sync.Mutex
	catalog  *Catalog
	filters  *types.FilterState
	sort     types.SortSelection
	filtered []*types.Photo
	facets   []types.FacetResult
	chips    []types.ChipGroup
}

// NewSession seeds the filter state from the persisted defaults (may be
// nil) and runs the pipeline once so the derived views are never stale.
func NewSession(c *Catalog, defaults *types.FilterState) *Session {
	s := &Session{
		catalog: c,
		filters: types.NewFilterState(),
		sort:    types.DefaultSortSelection(),
	}
	s.filters.Merge(defaults)
	s.ApplyFilters()
	return s
}

// run is the whole pipeline: evaluate, sort, facets, chips.
func (s *Session) run() {
	photos := s.catalog.Photos()
	filtered := make([]*types.Photo, 0, len(photos))
	for i := range photos {
		if facet.Matches(&photos[i], s.filters, types.DimensionNone) {
			filtered = append(filtered, &photos[i])
		}
	}
	sorting.Apply(filtered, s.sort)
	s.filtered = filtered
	s.facets = facet.CollectFacets(photos, s.filters)
	s.chips = facet.ChipGroups(s.filters)
}

// ApplyFilters re-runs the pipeline. Idempotent given unchanged inputs,
// apart from the random sort which reshuffles by contract.
func (s *Session) ApplyFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.run()
}

// ToggleValue adds or removes one value of a set dimension. Unknown or
// non-set dimensions are a no-op.
func (s *Session) ToggleValue(id types.DimensionId, value string) {
	d, ok := facet.GetDimension(id)
	if !ok || !d.IsSet() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.ToggleValue(id, value)
	s.run()
}

func (s *Session) SetMode(id types.DimensionId, mode types.QueryMode) {
	d, ok := facet.GetDimension(id)
	if !ok || d.Kind != types.KindMultiValue {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SetMode(id, mode)
	s.run()
}

// SetState selects or clears a tri-state. States outside the dimension's
// own list are ignored.
func (s *Session) SetState(id types.DimensionId, state string) {
	d, ok := facet.GetDimension(id)
	if !ok || d.Kind != types.KindTriState {
		return
	}
	if state != "" && !contains(d.States, state) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SetState(id, state)
	s.run()
}

func (s *Session) SetSearchText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SetQuery(text)
	s.run()
}

func (s *Session) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Clear()
	s.run()
}

func (s *Session) RemoveChip(chipId string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	facet.RemoveChip(s.filters, chipId)
	s.run()
}

// SelectSort picks a key, flipping direction when re-selected.
func (s *Session) SelectSort(key types.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort.Select(key)
	s.run()
}

func (s *Session) FilteredPhotos() []*types.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()
	ret := make([]*types.Photo, len(s.filtered))
	copy(ret, s.filtered)
	return ret
}

// Page returns one window of the filtered list plus the total count.
func (s *Session) Page(page, size int) ([]*types.Photo, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := len(s.filtered)
	start := min(page*size, total)
	end := min(start+size, total)
	ret := make([]*types.Photo, end-start)
	copy(ret, s.filtered[start:end])
	return ret, total
}

func (s *Session) FacetOptions() []types.FacetResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.facets
}

func (s *Session) ChipGroups() []types.ChipGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chips
}

func (s *Session) QuickStats() types.QuickStats {
	return s.catalog.QuickStats()
}

func (s *Session) IsFilterActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters.IsActive()
}

func (s *Session) SortSelection() types.SortSelection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sort
}

// Filters exposes a snapshot for tracking and persistence.
func (s *Session) Filters() *types.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters.Clone()
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
