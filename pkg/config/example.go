// example.go — Sample configuration for daydots init.
package config

// ExampleJSON returns a sample config.json layered on the countdown preset
// with the days-left label switched on.
func ExampleJSON() string {
	return `{
  "preset": "countdown",
  "canvas": { "device": "iphone15pro" },
  "safeArea": { "top": 0.35, "bottom": 0.15, "side": 125 },
  "grid": {
    "maxCols": 20,
    "radius": { "min": 3, "max": 9 }
  },
  "colors": {
    "background": "#000000",
    "done": "#FFFFFF",
    "pending": "#2F2F2F"
  },
  "overlay": {
    "daysLeft": true,
    "fontPath": "RobotoMono-Regular.ttf",
    "fontSize": 40
  },
  "dates": {
    "mode": "range",
    "start": "2025-09-01",
    "end": "2026-06-30"
  },
  "output": "today.png"
}
`
}
