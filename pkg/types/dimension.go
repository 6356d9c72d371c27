package types

type DimensionId string

const (
	// DimensionNone excludes nothing when evaluating a filter state.
	DimensionNone = DimensionId("")
	// DimensionSearch is the pseudo dimension of the free text query,
	// so facet counting can exclude it like any other constraint.
	DimensionSearch = DimensionId("search")
)

type DimensionKind int

const (
	KindScalar DimensionKind = iota
	KindOptionalScalar
	KindMultiValue
	KindTriState
)

// Dimension is one row of the static dimension table. The accessor
// matching the kind is set, the others stay nil: Scalar for the two
// scalar kinds, Values for multi value, MatchState plus States for
// tri-state.
type Dimension struct {
	Id        DimensionId
	Name      string
	Kind      DimensionKind
	Priority  int
	Threshold float64

	Scalar     func(p *Photo) string
	Values     func(p *Photo) []string
	MatchState func(p *Photo, state string) bool
	States     []string
}

// IsSet reports whether the dimension holds selectable values, i.e.
// participates in facet counting and value toggling.
func (d *Dimension) IsSet() bool {
	return d.Kind != KindTriState
}
