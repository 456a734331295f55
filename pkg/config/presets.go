// presets.go — Built-in wallpaper variants and device resolutions.
package config

import (
	"sort"

	"github.com/xob0t/daydots/pkg/grid"
	"github.com/xob0t/daydots/pkg/progress"
)

// DefaultPreset is used when no preset is named.
const DefaultPreset = "year"

// Devices maps device names to [width, height].
var Devices = map[string][2]int{
	"iphone15":       {1179, 2556},
	"iphone15pro":    {1179, 2556},
	"iphone15promax": {1290, 2796},
	"iphone-se":      {750, 1334},
	"pixel8":         {1080, 2400},
}

// Presets maps preset names to complete configurations.
var Presets = map[string]Config{
	"year": base("year", progress.Config{Mode: progress.ModeYear}, Grid{
		MaxCols: 14,
		Radius:  Radius{Min: 3, Max: 9, Factor: grid.DefaultRadiusFactor},
	}),
	"lifetime": base("lifetime", progress.Config{Mode: progress.ModeYears, Start: "2006-07-22", Years: 75}, Grid{
		MaxCols: 135,
		Radius:  Radius{Fixed: 2},
	}),
	"countdown": base("countdown", progress.Config{Mode: progress.ModeRange, Start: "2025-09-01", End: "2026-06-30"}, Grid{
		MaxCols: 20,
		Radius:  Radius{Min: 3, Max: 9, Factor: grid.DefaultRadiusFactor},
	}),
}

func base(name string, dates progress.Config, g Grid) Config {
	return Config{
		Preset:   name,
		Canvas:   Canvas{Width: 1179, Height: 2556},
		SafeArea: SafeArea{Top: 0.35, Bottom: 0.15, Side: 125},
		Grid:     g,
		Colors:   Colors{Background: "#000000", Done: "#FFFFFF", Pending: "#2F2F2F"},
		Overlay:  Overlay{DaysLeft: false, FontPath: grid.DefaultFontPath, FontSize: 40},
		Dates:    dates,
	}
}

// Default returns the year-progress wallpaper.
func Default() Config {
	return Presets[DefaultPreset]
}

// PresetNames lists the built-in presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
