package types

// FacetOption is one selectable value of a dimension with its
// contextual count. Derived on every pipeline run, never stored.
type FacetOption struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FacetResult is the option list of one dimension, with the session's
// current selection echoed back for the UI.
type FacetResult struct {
	Id       DimensionId   `json:"id"`
	Name     string        `json:"name"`
	Mode     QueryMode     `json:"mode,omitempty"`
	Selected []string      `json:"selected,omitempty"`
	Options  []FacetOption `json:"options"`
}

func (f *FacetResult) HasValues() bool {
	return len(f.Options) > 0
}

// QuickStats are catalog wide tallies independent of any filter. They
// seed the always visible toggle affordances.
type QuickStats struct {
	Total      int `json:"total"`
	People     int `json:"people"`
	Animals    int `json:"animals"`
	Neither    int `json:"neither"`
	Monochrome int `json:"monochrome"`
	Color      int `json:"color"`
	WithText   int `json:"withText"`
}
