package types

type SortKey string

const (
	SortRandom     = SortKey("random")
	SortAesthetic  = SortKey("aesthetic")
	SortCaptured   = SortKey("captured")
	SortExposure   = SortKey("exposure")
	SortSaturation = SortKey("saturation")
	SortDepth      = SortKey("depth")
	SortBrightness = SortKey("brightness")
	SortFaces      = SortKey("faces")
)

var SortKeys = []SortKey{
	SortRandom,
	SortAesthetic,
	SortCaptured,
	SortExposure,
	SortSaturation,
	SortDepth,
	SortBrightness,
	SortFaces,
}

func IsSortKey(key SortKey) bool {
	for _, k := range SortKeys {
		if k == key {
			return true
		}
	}
	return false
}

// SortSelection is the chosen sort key and direction. Descending is the
// default so the best or most of anything comes first.
type SortSelection struct {
	Key       SortKey `json:"key"`
	Ascending bool    `json:"ascending,omitempty"`
}

// Select picks a key. Picking the already selected key flips the
// direction instead, a new key resets to descending. Unknown keys are
// ignored.
func (s *SortSelection) Select(key SortKey) {
	if !IsSortKey(key) {
		return
	}
	if s.Key == key {
		s.Ascending = !s.Ascending
		return
	}
	s.Key = key
	s.Ascending = false
}

func DefaultSortSelection() SortSelection {
	return SortSelection{Key: SortAesthetic}
}
