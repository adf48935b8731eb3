// Package palette holds the named colors used for eggs, obstacles and
// backgrounds.
package palette

import (
	"strings"

	"github.com/vovakirdan/egg-hatch/internal/core"
)

// Named is a palette entry.
type Named struct {
	Name  string
	Color core.Color
}

// All is the full palette in display order. Some entries share an RGB value
// (Coral/Orange, Light Yellow/Yellow); they are still distinct names.
var All = []Named{
	{"Green", core.RGB(0, 255, 0)},
	{"Blue", core.RGB(0, 0, 255)},
	{"Red", core.RGB(255, 0, 0)},
	{"Orange", core.RGB(255, 165, 0)},
	{"Yellow", core.RGB(255, 255, 0)},
	{"Magenta", core.RGB(255, 0, 255)},
	{"Coral", core.RGB(255, 165, 0)},
	{"White", core.RGB(255, 255, 255)},
	{"Light Yellow", core.RGB(255, 255, 0)},
	{"Sky Blue", core.RGB(0, 128, 255)},
	{"Hot Pink", core.RGB(255, 105, 180)},
	{"Red Orange", core.RGB(255, 69, 0)},
	{"Deep Pink", core.RGB(255, 20, 147)},
	{"Light Sky Blue", core.RGB(135, 206, 250)},
	{"Light Sea Green", core.RGB(32, 178, 170)},
	{"Dark Orange", core.RGB(255, 140, 0)},
	{"Indigo", core.RGB(75, 0, 130)},
	{"Lemon Yellow", core.RGB(255, 239, 0)},
	{"Lavender Blush", core.RGB(255, 240, 245)},
	{"Light Green", core.RGB(144, 238, 144)},
	{"Cyan", core.RGB(0, 255, 255)},
	{"Silver", core.RGB(192, 192, 192)},
	{"Gray", core.RGB(128, 128, 128)},
}

// Default is the egg color used after a restart.
var Default = All[0]

// Triangle is the color of hatch pickups.
var Triangle = core.RGB(255, 0, 255)

// ByName looks up a palette entry, ignoring case and surrounding space.
func ByName(name string) (Named, bool) {
	name = strings.TrimSpace(name)
	for _, n := range All {
		if strings.EqualFold(n.Name, name) {
			return n, true
		}
	}
	return Named{}, false
}

// Colors resolves names to colors, skipping unknown names.
func Colors(names []string) []core.Color {
	out := make([]core.Color, 0, len(names))
	for _, name := range names {
		if n, ok := ByName(name); ok {
			out = append(out, n.Color)
		}
	}
	return out
}

// Backgrounds returns the colors a background may take.
func Backgrounds() []core.Color {
	out := make([]core.Color, len(All))
	for i, n := range All {
		out[i] = n.Color
	}
	return out
}
