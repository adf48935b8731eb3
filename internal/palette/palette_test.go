package palette

import (
	"testing"

	"github.com/vovakirdan/egg-hatch/internal/core"
)

func TestPaletteSize(t *testing.T) {
	if len(All) != 23 {
		t.Errorf("palette has %d colors, expected 23", len(All))
	}
	seen := make(map[string]bool)
	for _, n := range All {
		if seen[n.Name] {
			t.Errorf("duplicate palette name %q", n.Name)
		}
		seen[n.Name] = true
	}
}

func TestByName(t *testing.T) {
	n, ok := ByName("  sky blue ")
	if !ok {
		t.Fatal("expected Sky Blue to be found")
	}
	if n.Color != core.RGB(0, 128, 255) {
		t.Errorf("Sky Blue = %s, expected #0080ff", n.Color.Hex())
	}
	if _, ok := ByName("Chartreuse"); ok {
		t.Error("unknown color should not be found")
	}
}

func TestColors(t *testing.T) {
	got := Colors([]string{"Red", "nope", "Blue"})
	if len(got) != 2 || got[0] != core.RGB(255, 0, 0) || got[1] != core.RGB(0, 0, 255) {
		t.Errorf("Colors() = %v", got)
	}
	if len(Backgrounds()) != len(All) {
		t.Error("every palette entry should be a possible background")
	}
	if Default.Name != "Green" {
		t.Errorf("default egg color = %s, expected Green", Default.Name)
	}
}
