package facet

import (
	"testing"

	"github.com/matst80/slask-photos/pkg/types"
)

func testCatalog() []types.Photo {
	return []types.Photo{
		{Id: 1, Camera: "X100V", Vibes: []string{"calm"}},
		{Id: 2, Camera: "X100V", Vibes: []string{"calm", "bright"}},
		{Id: 3, Camera: "A7IV", Vibes: []string{"bright"}},
		{Id: 4, Camera: "A7IV"},
	}
}

func findFacet(t *testing.T, facets []types.FacetResult, id types.DimensionId) types.FacetResult {
	t.Helper()
	for _, f := range facets {
		if f.Id == id {
			return f
		}
	}
	t.Fatalf("no facet for dimension %s", id)
	return types.FacetResult{}
}

func optionCount(f types.FacetResult, value string) int {
	for _, o := range f.Options {
		if o.Value == value {
			return o.Count
		}
	}
	return 0
}

func TestCollectFacets_Unfiltered(t *testing.T) {
	facets := CollectFacets(testCatalog(), types.NewFilterState())

	camera := findFacet(t, facets, "camera")
	if optionCount(camera, "X100V") != 2 || optionCount(camera, "A7IV") != 2 {
		t.Errorf("Expected 2/2 cameras but got %v", camera.Options)
	}
	vibe := findFacet(t, facets, "vibe")
	if optionCount(vibe, "calm") != 2 || optionCount(vibe, "bright") != 2 {
		t.Errorf("Expected 2/2 vibes but got %v", vibe.Options)
	}
}

func TestCollectFacets_OwnDimensionExcluded(t *testing.T) {
	f := types.NewFilterState()
	f.ToggleValue("camera", "X100V")
	facets := CollectFacets(testCatalog(), f)

	// the camera facet still shows both cameras, its own filter is ignored
	camera := findFacet(t, facets, "camera")
	if optionCount(camera, "A7IV") != 2 {
		t.Errorf("Expected excluded camera filter, got %v", camera.Options)
	}
	// other facets see the camera constraint
	vibe := findFacet(t, facets, "vibe")
	if optionCount(vibe, "calm") != 2 || optionCount(vibe, "bright") != 1 {
		t.Errorf("Expected constrained vibes 2/1 but got %v", vibe.Options)
	}
}

func TestCollectFacets_CountIsSuperset(t *testing.T) {
	photos := testCatalog()
	f := types.NewFilterState()
	f.ToggleValue("camera", "X100V")
	f.ToggleValue("vibe", "bright")

	facets := CollectFacets(photos, f)

	// count the actually filtered photos per vibe value
	filtered := map[string]int{}
	for i := range photos {
		if !Matches(&photos[i], f, types.DimensionNone) {
			continue
		}
		for _, v := range photos[i].Vibes {
			filtered[v]++
		}
	}
	vibe := findFacet(t, facets, "vibe")
	for value, count := range filtered {
		if optionCount(vibe, value) < count {
			t.Errorf("Expected facet count for %s >= %d but got %d", value, count, optionCount(vibe, value))
		}
	}
}

func TestCollectFacets_AlphabeticalAndThresholded(t *testing.T) {
	photos := []types.Photo{
		{Id: 1, Scenes: []types.SceneCandidate{
			{Label: "beach", Score: 0.5},
			{Label: "city", Score: 0.2},
		}},
		{Id: 2, Scenes: []types.SceneCandidate{
			{Label: "alley", Score: 0.9},
			{Label: "beach", Score: 0.31},
		}},
	}
	scene := findFacet(t, CollectFacets(photos, types.NewFilterState()), "scene")
	if len(scene.Options) != 2 {
		t.Fatalf("Expected 2 scene options but got %v", scene.Options)
	}
	if scene.Options[0].Value != "alley" || scene.Options[1].Value != "beach" {
		t.Errorf("Expected alphabetical order but got %v", scene.Options)
	}
	if scene.Options[1].Count != 2 {
		t.Errorf("Expected beach count 2 but got %d", scene.Options[1].Count)
	}
}

func TestCollectFacets_DuplicateValuesCountOnce(t *testing.T) {
	photos := []types.Photo{{Id: 1, Vibes: []string{"calm", "calm"}}}
	vibe := findFacet(t, CollectFacets(photos, types.NewFilterState()), "vibe")
	if optionCount(vibe, "calm") != 1 {
		t.Errorf("Expected one photo to count once but got %d", optionCount(vibe, "calm"))
	}
}
