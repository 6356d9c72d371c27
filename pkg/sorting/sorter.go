package sorting

import (
	"math/rand"
	"slices"
	"strings"

	"github.com/matst80/slask-photos/pkg/types"
)

// exposureRanks is the fixed ordering of the exposure labels, unknown
// or missing exposure sorts below everything.
var exposureRanks = map[string]float64{
	"Over":     3,
	"Balanced": 2,
	"Under":    1,
}

type scoreFn func(p *types.Photo) float64

var scoreFns = map[types.SortKey]scoreFn{
	types.SortAesthetic:  func(p *types.Photo) float64 { return p.AestheticScore },
	types.SortExposure:   func(p *types.Photo) float64 { return exposureRanks[p.Exposure] },
	types.SortSaturation: func(p *types.Photo) float64 { return p.Saturation },
	types.SortDepth:      func(p *types.Photo) float64 { return p.DepthScore },
	types.SortBrightness: func(p *types.Photo) float64 { return p.Brightness },
	types.SortFaces:      func(p *types.Photo) float64 { return float64(p.FaceCount) },
}

// Apply orders the filtered list in place. Random reshuffles on every
// call, captured compares the ISO-like date strings, everything else
// is a numeric score with missing values at zero. Ties break on id so
// non-random orders stay deterministic.
func Apply(photos []*types.Photo, selection types.SortSelection) {
	switch selection.Key {
	case types.SortRandom:
		rand.Shuffle(len(photos), func(i, j int) {
			photos[i], photos[j] = photos[j], photos[i]
		})
		return
	case types.SortCaptured:
		slices.SortFunc(photos, func(a, b *types.Photo) int {
			c := strings.Compare(a.CaptureDate, b.CaptureDate)
			if c == 0 {
				return compareIds(a, b)
			}
			if selection.Ascending {
				return c
			}
			return -c
		})
		return
	}

	fn, ok := scoreFns[selection.Key]
	if !ok {
		fn = scoreFns[types.SortAesthetic]
	}
	slices.SortFunc(photos, func(a, b *types.Photo) int {
		av, bv := fn(a), fn(b)
		if av == bv {
			return compareIds(a, b)
		}
		if (av < bv) == selection.Ascending {
			return -1
		}
		return 1
	})
}

func compareIds(a, b *types.Photo) int {
	if a.Id < b.Id {
		return -1
	}
	if a.Id > b.Id {
		return 1
	}
	return 0
}
