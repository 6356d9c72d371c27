package sorting

import (
	"testing"

	"github.com/matst80/slask-photos/pkg/types"
)

func ids(photos []*types.Photo) []types.PhotoId {
	ret := make([]types.PhotoId, len(photos))
	for i, p := range photos {
		ret[i] = p.Id
	}
	return ret
}

func refs(photos ...types.Photo) []*types.Photo {
	ret := make([]*types.Photo, len(photos))
	for i := range photos {
		ret[i] = &photos[i]
	}
	return ret
}

func TestApply_AestheticDescending(t *testing.T) {
	photos := refs(
		types.Photo{Id: 1, AestheticScore: 0.2},
		types.Photo{Id: 2, AestheticScore: 0.9},
		types.Photo{Id: 3, AestheticScore: 0.5},
	)
	Apply(photos, types.SortSelection{Key: types.SortAesthetic})
	got := ids(photos)
	if got[0] != 2 || got[1] != 3 || got[2] != 1 {
		t.Errorf("Expected [2 3 1] but got %v", got)
	}
}

func TestApply_ExposureRanks(t *testing.T) {
	photos := refs(
		types.Photo{Id: 1, Exposure: "Under"},
		types.Photo{Id: 2},
		types.Photo{Id: 3, Exposure: "Over"},
		types.Photo{Id: 4, Exposure: "Balanced"},
	)
	Apply(photos, types.SortSelection{Key: types.SortExposure})
	got := ids(photos)
	if got[0] != 3 || got[1] != 4 || got[2] != 1 || got[3] != 2 {
		t.Errorf("Expected [3 4 1 2] but got %v", got)
	}
}

func TestApply_MissingValueSortsLastDescending(t *testing.T) {
	photos := refs(
		types.Photo{Id: 1},
		types.Photo{Id: 2, FaceCount: 3},
	)
	Apply(photos, types.SortSelection{Key: types.SortFaces})
	if photos[1].Id != 1 {
		t.Errorf("Expected missing face count last but got %v", ids(photos))
	}
}

func TestApply_CapturedLexicographic(t *testing.T) {
	photos := refs(
		types.Photo{Id: 1, CaptureDate: "2023-06-01"},
		types.Photo{Id: 2, CaptureDate: "2024-01-15"},
		types.Photo{Id: 3, CaptureDate: "2022-12-31"},
	)
	Apply(photos, types.SortSelection{Key: types.SortCaptured, Ascending: true})
	got := ids(photos)
	if got[0] != 3 || got[1] != 1 || got[2] != 2 {
		t.Errorf("Expected [3 1 2] but got %v", got)
	}
	Apply(photos, types.SortSelection{Key: types.SortCaptured})
	if photos[0].Id != 2 {
		t.Errorf("Expected newest first but got %v", ids(photos))
	}
}

func TestApply_RandomKeepsAllPhotos(t *testing.T) {
	photos := refs(
		types.Photo{Id: 1},
		types.Photo{Id: 2},
		types.Photo{Id: 3},
		types.Photo{Id: 4},
	)
	Apply(photos, types.SortSelection{Key: types.SortRandom})
	seen := map[types.PhotoId]bool{}
	for _, id := range ids(photos) {
		seen[id] = true
	}
	if len(seen) != 4 {
		t.Errorf("Expected a permutation but got %v", ids(photos))
	}
}

func TestSortSelection_ReselectTogglesDirection(t *testing.T) {
	s := types.DefaultSortSelection()
	s.Select(types.SortAesthetic)
	if !s.Ascending || s.Key != types.SortAesthetic {
		t.Errorf("Expected reselect to flip direction, got %+v", s)
	}
	s.Select(types.SortAesthetic)
	if s.Ascending {
		t.Errorf("Expected second reselect to flip back, got %+v", s)
	}
	s.Select(types.SortFaces)
	if s.Key != types.SortFaces || s.Ascending {
		t.Errorf("Expected new key to reset to descending, got %+v", s)
	}
	s.Select("bogus")
	if s.Key != types.SortFaces {
		t.Errorf("Expected unknown key to be ignored, got %+v", s)
	}
}
