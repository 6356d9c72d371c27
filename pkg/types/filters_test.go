package types

import (
	"encoding/json"
	"testing"
)

func TestFilterState_ToggleValue(t *testing.T) {
	f := NewFilterState()
	f.ToggleValue("vibe", "calm")
	if !f.Selection("vibe").Has("calm") {
		t.Errorf("Expected calm selected")
	}
	f.ToggleValue("vibe", "calm")
	if _, ok := f.Selections["vibe"]; ok {
		t.Errorf("Expected empty selection removed entirely")
	}
	f.ToggleValue("vibe", "")
	if f.IsActive() {
		t.Errorf("Expected empty value toggle to be a no-op")
	}
}

func TestFilterState_ModeDefaultsToUnion(t *testing.T) {
	f := NewFilterState()
	if f.Mode("vibe") != ModeUnion {
		t.Errorf("Expected union default but got %v", f.Mode("vibe"))
	}
	f.SetMode("vibe", ModeIntersection)
	if f.Mode("vibe") != ModeIntersection {
		t.Errorf("Expected intersection but got %v", f.Mode("vibe"))
	}
	f.SetMode("vibe", "bogus")
	if f.Mode("vibe") != ModeIntersection {
		t.Errorf("Expected invalid mode ignored but got %v", f.Mode("vibe"))
	}
}

func TestFilterState_CloneIsIndependent(t *testing.T) {
	f := NewFilterState()
	f.ToggleValue("vibe", "calm")
	f.SetState("monochrome", "monochrome")
	f.SetQuery("pier")

	clone := f.Clone()
	clone.ToggleValue("vibe", "bright")
	clone.SetState("monochrome", "")
	clone.SetQuery("")

	if f.Selection("vibe").Has("bright") {
		t.Errorf("Expected clone mutation to leave the original alone")
	}
	if f.State("monochrome") != "monochrome" || f.Query != "pier" {
		t.Errorf("Expected original untouched but got %+v", f)
	}
}

func TestFilterState_Merge(t *testing.T) {
	defaults := NewFilterState()
	defaults.ToggleValue("curatedStatus", "pending")
	defaults.SetMode("vibe", ModeIntersection)

	f := NewFilterState()
	f.Merge(defaults)
	if !f.Selection("curatedStatus").Has("pending") {
		t.Errorf("Expected merged default selection")
	}
	if f.Mode("vibe") != ModeIntersection {
		t.Errorf("Expected merged mode")
	}
	f.Merge(nil)
	if !f.IsActive() {
		t.Errorf("Expected nil merge to change nothing")
	}
}

func TestValueSet_JsonRoundTrip(t *testing.T) {
	f := NewFilterState()
	f.ToggleValue("vibe", "calm")
	f.ToggleValue("vibe", "bright")

	b, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	back := NewFilterState()
	if err = json.Unmarshal(b, back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !back.Selection("vibe").Has("calm") || !back.Selection("vibe").Has("bright") {
		t.Errorf("Expected selections to survive the round trip, got %s", b)
	}
}

func TestParseChipId(t *testing.T) {
	dim, value, ok := ParseChipId("camera:X100V")
	if !ok || dim != "camera" || value != "X100V" {
		t.Errorf("Expected camera/X100V but got %v/%v/%v", dim, value, ok)
	}
	// only the first separator splits, values keep their colons
	_, value, _ = ParseChipId("location:Oslo: Norway")
	if value != "Oslo: Norway" {
		t.Errorf("Expected value with separator kept but got %q", value)
	}
	if _, _, ok = ParseChipId("nocolon"); ok {
		t.Errorf("Expected separator-less id to fail parsing")
	}
}
