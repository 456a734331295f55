// bundle.go — Load .zip theme bundles carrying config.json and a font.
package config

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// BundleConfigName is the config file expected at the bundle root.
const BundleConfigName = "config.json"

// LoadBundle opens a ZIP bundle, extracts it to a temp directory, merges
// config.json onto its preset and resolves the font path inside the bundle.
// The returned cleanup function removes the temp directory; call it after
// rendering, since the font is read when the renderer is built.
func LoadBundle(path, fallback string) (Config, []string, func(), error) {
	noop := func() {}

	r, err := zip.OpenReader(path)
	if err != nil {
		return Config{}, nil, noop, fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()

	tmpDir, err := os.MkdirTemp("", "daydots-*")
	if err != nil {
		return Config{}, nil, noop, fmt.Errorf("create temp dir: %w", err)
	}
	cleanup := func() { os.RemoveAll(tmpDir) }

	if err := extractZip(r, tmpDir); err != nil {
		cleanup()
		return Config{}, nil, noop, fmt.Errorf("extract %s: %w", path, err)
	}

	cfg, warnings, err := Load(filepath.Join(tmpDir, BundleConfigName), fallback)
	if err != nil {
		cleanup()
		return Config{}, nil, noop, err
	}

	if p := cfg.Overlay.FontPath; p != "" && !filepath.IsAbs(p) {
		bundled := filepath.Join(tmpDir, p)
		if _, err := os.Stat(bundled); err == nil {
			cfg.Overlay.FontPath = bundled
		}
	}

	return cfg, warnings, cleanup, nil
}

// extractZip extracts all files from a zip reader into destDir.
func extractZip(r *zip.ReadCloser, destDir string) error {
	for _, f := range r.File {
		target := filepath.Join(destDir, f.Name)

		// Guard against zip slip.
		if !strings.HasPrefix(filepath.Clean(target), filepath.Clean(destDir)+string(os.PathSeparator)) {
			return fmt.Errorf("illegal path in zip: %s", f.Name)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}

		if err := extractFile(f, target); err != nil {
			return err
		}
	}
	return nil
}

// extractFile writes a single zip entry to disk.
func extractFile(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)
	return err
}
