package types

import (
	"encoding/json"
	"maps"
	"slices"
)

type QueryMode string

const (
	ModeUnion        = QueryMode("union")
	ModeIntersection = QueryMode("intersection")
)

type ValueSet map[string]struct{}

var empty = struct{}{}

func (s ValueSet) Has(value string) bool {
	_, ok := s[value]
	return ok
}

// Toggle adds the value if missing, removes it if present.
func (s ValueSet) Toggle(value string) {
	if s.Has(value) {
		delete(s, value)
	} else {
		s[value] = empty
	}
}

// Sorted returns the values in alphabetical order.
func (s ValueSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// Sets serialize as plain value arrays, mainly for the preference store.
func (s ValueSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *ValueSet) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	ret := make(ValueSet, len(values))
	for _, v := range values {
		if v != "" {
			ret[v] = empty
		}
	}
	*s = ret
	return nil
}

// FilterState is the whole selection of one browsing session. Set
// dimensions share the generic Selections map, the tri-state dimensions
// keep a single selected state and the free text query stands alone.
// Mutate only through the methods; empty everything means unconstrained.
type FilterState struct {
	Selections map[DimensionId]ValueSet  `json:"selections,omitempty"`
	Modes      map[DimensionId]QueryMode `json:"modes,omitempty"`
	States     map[DimensionId]string    `json:"states,omitempty"`
	Query      string                    `json:"query,omitempty"`
}

func NewFilterState() *FilterState {
	return &FilterState{
		Selections: map[DimensionId]ValueSet{},
		Modes:      map[DimensionId]QueryMode{},
		States:     map[DimensionId]string{},
	}
}

func (f *FilterState) Selection(id DimensionId) ValueSet {
	return f.Selections[id]
}

// Mode defaults to union when never set.
func (f *FilterState) Mode(id DimensionId) QueryMode {
	if m, ok := f.Modes[id]; ok && m == ModeIntersection {
		return ModeIntersection
	}
	return ModeUnion
}

func (f *FilterState) State(id DimensionId) string {
	return f.States[id]
}

func (f *FilterState) ToggleValue(id DimensionId, value string) {
	if value == "" {
		return
	}
	s, ok := f.Selections[id]
	if !ok {
		s = ValueSet{}
		f.Selections[id] = s
	}
	s.Toggle(value)
	if len(s) == 0 {
		delete(f.Selections, id)
	}
}

func (f *FilterState) RemoveValue(id DimensionId, value string) {
	if s, ok := f.Selections[id]; ok {
		delete(s, value)
		if len(s) == 0 {
			delete(f.Selections, id)
		}
	}
}

func (f *FilterState) SetMode(id DimensionId, mode QueryMode) {
	if mode != ModeUnion && mode != ModeIntersection {
		return
	}
	f.Modes[id] = mode
}

// SetState selects a tri-state, empty value clears it.
func (f *FilterState) SetState(id DimensionId, state string) {
	if state == "" {
		delete(f.States, id)
		return
	}
	f.States[id] = state
}

func (f *FilterState) SetQuery(query string) {
	f.Query = query
}

func (f *FilterState) Clear() {
	f.Selections = map[DimensionId]ValueSet{}
	f.Modes = map[DimensionId]QueryMode{}
	f.States = map[DimensionId]string{}
	f.Query = ""
}

func (f *FilterState) IsActive() bool {
	return len(f.Selections) > 0 || len(f.States) > 0 || f.Query != ""
}

func (f *FilterState) Clone() *FilterState {
	ret := &FilterState{
		Selections: make(map[DimensionId]ValueSet, len(f.Selections)),
		Modes:      maps.Clone(f.Modes),
		States:     maps.Clone(f.States),
		Query:      f.Query,
	}
	for id, s := range f.Selections {
		ret.Selections[id] = maps.Clone(s)
	}
	return ret
}

// Merge copies every selection of other into f. Used to seed a fresh
// session from the persisted defaults.
func (f *FilterState) Merge(other *FilterState) {
	if other == nil {
		return
	}
	for id, s := range other.Selections {
		for v := range s {
			f.ToggleValue(id, v)
		}
	}
	for id, m := range other.Modes {
		f.SetMode(id, m)
	}
	for id, s := range other.States {
		f.SetState(id, s)
	}
	if other.Query != "" {
		f.Query = other.Query
	}
}
