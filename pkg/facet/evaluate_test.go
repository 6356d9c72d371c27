package facet

import (
	"testing"

	"github.com/matst80/slask-photos/pkg/types"
)

func vibePhoto(id types.PhotoId, vibes ...string) types.Photo {
	return types.Photo{Id: id, Vibes: vibes, IsAnalyzed: true}
}

func TestMatches_EmptyStateMatchesEverything(t *testing.T) {
	f := types.NewFilterState()
	p := types.Photo{Id: 1, Camera: "X100V", HasPeople: true}
	if !Matches(&p, f, types.DimensionNone) {
		t.Errorf("Expected empty state to match but it did not")
	}
}

func TestMatches_ScalarSelection(t *testing.T) {
	f := types.NewFilterState()
	f.ToggleValue("camera", "X100V")

	match := types.Photo{Id: 1, Camera: "X100V"}
	other := types.Photo{Id: 2, Camera: "A7IV"}
	missing := types.Photo{Id: 3}

	if !Matches(&match, f, types.DimensionNone) {
		t.Errorf("Expected camera match but got none")
	}
	if Matches(&other, f, types.DimensionNone) {
		t.Errorf("Expected other camera to fail")
	}
	if Matches(&missing, f, types.DimensionNone) {
		t.Errorf("Expected missing camera to fail an active selection")
	}
}

func TestMatches_UnionVsIntersection(t *testing.T) {
	a := vibePhoto(1, "calm")
	b := vibePhoto(2, "calm", "bright")
	c := vibePhoto(3, "bright")

	f := types.NewFilterState()
	f.ToggleValue("vibe", "calm")
	f.ToggleValue("vibe", "bright")

	for _, p := range []types.Photo{a, b, c} {
		if !Matches(&p, f, types.DimensionNone) {
			t.Errorf("Expected union to match photo %d", p.Id)
		}
	}

	f.SetMode("vibe", types.ModeIntersection)
	if Matches(&a, f, types.DimensionNone) {
		t.Errorf("Expected intersection to reject photo 1")
	}
	if !Matches(&b, f, types.DimensionNone) {
		t.Errorf("Expected intersection to match photo 2")
	}
	if Matches(&c, f, types.DimensionNone) {
		t.Errorf("Expected intersection to reject photo 3")
	}
}

func TestMatches_SceneThreshold(t *testing.T) {
	p := types.Photo{Id: 1, Scenes: []types.SceneCandidate{
		{Label: "beach", Score: 0.5},
		{Label: "city", Score: 0.2},
	}}

	f := types.NewFilterState()
	f.ToggleValue("scene", "beach")
	if !Matches(&p, f, types.DimensionNone) {
		t.Errorf("Expected beach candidate to match")
	}

	f.Clear()
	f.ToggleValue("scene", "city")
	if Matches(&p, f, types.DimensionNone) {
		t.Errorf("Expected city candidate below threshold to be ignored")
	}
}

func TestMatches_TriStateSubject(t *testing.T) {
	people := types.Photo{Id: 1, HasPeople: true}
	animal := types.Photo{Id: 2, HasAnimal: true}
	both := types.Photo{Id: 3, HasPeople: true, HasAnimal: true}
	neither := types.Photo{Id: 4}

	f := types.NewFilterState()
	f.SetState("subject", StatePeople)
	if !Matches(&people, f, types.DimensionNone) || !Matches(&both, f, types.DimensionNone) {
		t.Errorf("Expected people state to match photos with people")
	}
	if Matches(&animal, f, types.DimensionNone) || Matches(&neither, f, types.DimensionNone) {
		t.Errorf("Expected people state to reject photos without people")
	}

	f.SetState("subject", StateNone)
	if !Matches(&neither, f, types.DimensionNone) {
		t.Errorf("Expected none state to match the empty photo")
	}
	if Matches(&both, f, types.DimensionNone) {
		t.Errorf("Expected none state to reject photo 3")
	}
}

func TestMatches_ExclusionIgnoresOwnDimension(t *testing.T) {
	p := types.Photo{Id: 1, Camera: "X100V", Vibes: []string{"calm"}}

	f := types.NewFilterState()
	f.ToggleValue("vibe", "moody")

	before := Matches(&p, f, "vibe")
	f.ToggleValue("vibe", "calm")
	f.ToggleValue("vibe", "moody")
	after := Matches(&p, f, "vibe")

	if before != after {
		t.Errorf("Expected excluded dimension changes to be invisible, got %v then %v", before, after)
	}
	if !before {
		t.Errorf("Expected match with vibe excluded")
	}
}

func TestMatches_FreeText(t *testing.T) {
	p := types.Photo{Id: 1, Caption: "Sunset at the Pier", FolderPath: "2024/iceland"}

	f := types.NewFilterState()
	f.SetQuery("PIER")
	if !Matches(&p, f, types.DimensionNone) {
		t.Errorf("Expected case insensitive caption match")
	}
	f.SetQuery("iceland")
	if !Matches(&p, f, types.DimensionNone) {
		t.Errorf("Expected folder path match")
	}
	f.SetQuery("norway")
	if Matches(&p, f, types.DimensionNone) {
		t.Errorf("Expected no match for norway")
	}
	if !Matches(&p, f, types.DimensionSearch) {
		t.Errorf("Expected match with search excluded")
	}
}
