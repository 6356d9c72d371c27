package types

import "strings"

// ActiveChip is one removable filter value as shown in the UI. The id
// keeps the "<dimensionId>:<value>" encoding the click routing expects.
type ActiveChip struct {
	Id    string `json:"id"`
	Label string `json:"label"`
}

type ChipGroup struct {
	DimensionId DimensionId  `json:"dimensionId"`
	Name        string       `json:"name"`
	Mode        QueryMode    `json:"mode,omitempty"`
	Chips       []ActiveChip `json:"chips"`
}

func ChipId(id DimensionId, value string) string {
	return string(id) + ":" + value
}

// ParseChipId splits a chip id at the first separator. A value that
// itself contains ':' survives because only the first one is cut;
// a dimension id containing ':' would still be ambiguous.
func ParseChipId(chipId string) (DimensionId, string, bool) {
	dim, value, found := strings.Cut(chipId, ":")
	if !found || dim == "" {
		return DimensionNone, "", false
	}
	return DimensionId(dim), value, true
}
