package types

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/schema"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// PageRequest selects the window of the filtered list to return.
type PageRequest struct {
	Page     int `json:"page" schema:"page"`
	PageSize int `json:"pageSize" schema:"size,default:60"`
}

func clamp[T int | float64](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func (p *PageRequest) Sanitize() {
	p.Page = clamp(p.Page, 0, 10000)
	p.PageSize = clamp(p.PageSize, 1, 1000)
}

// ToggleRequest is one filter mutation: toggle a value, change a mode,
// select a tri-state or pick a sort key. Unused fields stay empty.
type ToggleRequest struct {
	Dimension DimensionId `json:"dimension" schema:"dim"`
	Value     string      `json:"value" schema:"value"`
	Mode      QueryMode   `json:"mode" schema:"mode"`
	State     string      `json:"state" schema:"state"`
	Query     string      `json:"query" schema:"query"`
	Chip      string      `json:"chip" schema:"chip"`
	Sort      SortKey     `json:"sort" schema:"sort"`
}

func decodeRequest[V any](r *http.Request, result *V) error {
	if r.Method == http.MethodGet {
		return decoder.Decode(result, r.URL.Query())
	}
	return json.NewDecoder(r.Body).Decode(result)
}

func GetPageFromRequest(r *http.Request) (*PageRequest, error) {
	ret := &PageRequest{}
	err := decodeRequest(r, ret)
	ret.Sanitize()
	return ret, err
}

func GetToggleFromRequest(r *http.Request) (*ToggleRequest, error) {
	ret := &ToggleRequest{}
	return ret, decodeRequest(r, ret)
}
