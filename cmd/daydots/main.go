// daydots — Day-progress dot grid wallpapers.
//
// Usage:
//
//	daydots [-o today.png] [-preset year|lifetime|countdown] [-config <path>] [options]
//	daydots init
//	daydots presets
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xob0t/daydots/pkg/config"
	"github.com/xob0t/daydots/pkg/generator"
	"github.com/xob0t/daydots/pkg/grid"
	"github.com/xob0t/daydots/pkg/preview"
	"github.com/xob0t/daydots/pkg/progress"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		if err := run(nil); err != nil {
			fatal(err)
		}
		return
	}

	switch args[0] {
	case "init":
		if err := runInit(args[1:]); err != nil {
			fatal(err)
		}
	case "presets":
		runPresets()
	case "help", "-h", "--help":
		printUsage()
	default:
		// Default: generate mode (all flags on root).
		if err := run(args); err != nil {
			fatal(err)
		}
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("daydots", flag.ExitOnError)

	var (
		output      string
		presetName  string
		configPath  string
		nowFlag     string
		showPreview bool
		daysLeft    bool
	)

	fs.StringVar(&output, "o", "", "Output file path (.png or .bmp)")
	fs.StringVar(&output, "output", "", "Output file path (.png or .bmp)")
	fs.StringVar(&presetName, "preset", config.DefaultPreset, "Built-in preset")
	fs.StringVar(&configPath, "config", "", "Config JSON or .zip bundle (optional)")
	fs.StringVar(&nowFlag, "now", "", "Render as of this date (YYYY-MM-DD or RFC 3339)")
	fs.BoolVar(&showPreview, "preview", false, "Print the grid to the terminal")
	fs.BoolVar(&daysLeft, "days-left", false, "Draw the \"<N> days left\" label")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, cleanup, err := loadConfig(configPath, presetName)
	if err != nil {
		return err
	}
	defer cleanup()

	if output != "" {
		cfg.Output = output
	}
	if daysLeft {
		cfg.Overlay.DaysLeft = true
	}
	calc, err := cfg.Calculator()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	now, err := parseNow(nowFlag)
	if err != nil {
		return err
	}

	p := calc.Compute(now)
	span := calc.Span(now)

	renderer, err := grid.NewRenderer(cfg.RendererOptions())
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}

	img, err := renderer.Render(p)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	out := cfg.OutputPath()
	if err := generator.Generate(out, generator.Config{Image: img}); err != nil {
		return err
	}

	shown := p.Clamped()
	if showPreview {
		fmt.Println(preview.Grid(shown, preview.Options{
			Cols:     cfg.Grid.MaxCols,
			MaxCells: 60 * 24,
			Done:     cfg.Colors.Done,
			Pending:  cfg.Colors.Pending,
		}))
	}
	fmt.Println(preview.Summary(out, calc.Mode(), shown, span))
	return nil
}

// loadConfig resolves the preset and optional config file.
func loadConfig(path, presetName string) (config.Config, func(), error) {
	noop := func() {}

	if path == "" {
		cfg, err := config.ForPreset(presetName)
		return cfg, noop, err
	}

	var (
		cfg      config.Config
		warnings []string
		cleanup  = noop
		err      error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		cfg, warnings, cleanup, err = config.LoadBundle(path, presetName)
	default:
		cfg, warnings, err = config.Load(path, presetName)
	}
	if err != nil {
		return config.Config{}, noop, fmt.Errorf("load config: %w", err)
	}

	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	return cfg, cleanup, nil
}

// parseNow reads the clock once, or parses an override.
func parseNow(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(progress.DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid -now %q: use YYYY-MM-DD or RFC 3339", s)
	}
	return t, nil
}

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	var configOut string
	fs.StringVar(&configOut, "config", "config.json", "Output path for sample config")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := os.WriteFile(configOut, []byte(config.ExampleJSON()), 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("Created: %s\n", configOut)
	fmt.Printf("Run: daydots -config %s\n", configOut)
	return nil
}

func runPresets() {
	for _, name := range config.PresetNames() {
		cfg := config.Presets[name]
		d := cfg.Dates
		switch d.Mode {
		case progress.ModeRange:
			fmt.Printf("  %-10s %s → %s\n", name, d.Start, d.End)
		case progress.ModeYears:
			fmt.Printf("  %-10s %s + %d years\n", name, d.Start, d.Years)
		default:
			fmt.Printf("  %-10s current calendar year\n", name)
		}
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`daydots — Day-progress wallpapers (Pure Go)

USAGE:
    daydots [options]
    daydots init [--config <path>]
    daydots presets

OPTIONS:
    -o, --output <path>    Output file, .png or .bmp (default: today.png)
    --preset <name>        year, lifetime or countdown (default: year)
    --config <path>        Config JSON or .zip bundle with config.json + font
    --now <date>           Render as of YYYY-MM-DD instead of today (UTC)
    --days-left            Draw the "<N> days left" label
    --preview              Print the grid to the terminal

EXAMPLES:
    daydots
    daydots --preset lifetime --preview
    daydots --config config.json -o wallpaper.png
    daydots --now 2024-01-01
`)
}
