package facet

import (
	"testing"

	"github.com/matst80/slask-photos/pkg/types"
)

func TestChipGroups_RoundTrip(t *testing.T) {
	f := types.NewFilterState()
	f.ToggleValue("vibe", "calm")
	f.ToggleValue("vibe", "bright")
	f.ToggleValue("camera", "X100V")

	groups := ChipGroups(f)
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups but got %d", len(groups))
	}

	RemoveChip(f, "vibe:calm")
	if f.Selection("vibe").Has("calm") {
		t.Errorf("Expected calm removed")
	}
	if !f.Selection("vibe").Has("bright") {
		t.Errorf("Expected bright untouched")
	}
	if !f.Selection("camera").Has("X100V") {
		t.Errorf("Expected camera untouched")
	}
}

func TestChipGroups_TriStateAndSearch(t *testing.T) {
	f := types.NewFilterState()
	f.SetState("monochrome", StateMonochrome)
	f.SetQuery("pier")

	groups := ChipGroups(f)
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups but got %d", len(groups))
	}

	RemoveChip(f, "monochrome:"+StateMonochrome)
	if f.State("monochrome") != "" {
		t.Errorf("Expected tri-state cleared but got %q", f.State("monochrome"))
	}
	RemoveChip(f, "search:pier")
	if f.Query != "" {
		t.Errorf("Expected search cleared but got %q", f.Query)
	}
}

func TestRemoveChip_UnknownIsNoop(t *testing.T) {
	f := types.NewFilterState()
	f.ToggleValue("vibe", "calm")

	RemoveChip(f, "bogus:calm")
	RemoveChip(f, "nocolon")
	RemoveChip(f, "")

	if !f.Selection("vibe").Has("calm") {
		t.Errorf("Expected unknown chip ids to leave the state alone")
	}
}

func TestChipGroups_ModeOnMultiValue(t *testing.T) {
	f := types.NewFilterState()
	f.ToggleValue("vibe", "calm")
	f.SetMode("vibe", types.ModeIntersection)

	groups := ChipGroups(f)
	if len(groups) != 1 || groups[0].Mode != types.ModeIntersection {
		t.Errorf("Expected intersection mode on the vibe group but got %v", groups)
	}
}
