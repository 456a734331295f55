package generator

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestParseColor(t *testing.T) {
	r, g, b, err := ParseColor("#2F2F2F")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if r != 0x2f || g != 0x2f || b != 0x2f {
		t.Errorf("got %02x%02x%02x, want 2f2f2f", r, g, b)
	}

	for _, bad := range []string{"", "#fff", "#12345g", "red"} {
		if _, _, _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q): expected error", bad)
		}
	}
}

func TestParseHexRGBA_FallsBackToWhite(t *testing.T) {
	if got := ParseHexRGBA("nope"); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("fallback = %v, want opaque white", got)
	}
	if got := ParseHexRGBA("#000000"); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("black = %v", got)
	}
}

func TestGenerate_PNGOverwrites(t *testing.T) {
	out := filepath.Join(t.TempDir(), "today.png")
	if err := os.WriteFile(out, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	src := NewSolidImage(7, 5, color.RGBA{10, 20, 30, 255})
	if err := Generate(out, Config{Image: src}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode written PNG: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 7, 5) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	r, g, b, _ := img.At(3, 2).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("pixel = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestGenerate_BMPLayout(t *testing.T) {
	src := NewSolidImage(3, 2, color.RGBA{1, 2, 3, 255})
	src.Set(0, 1, color.RGBA{200, 100, 50, 255}) // bottom-left pixel

	var buf bytes.Buffer
	if err := GenerateToWriter(&buf, ".bmp", Config{Image: src}); err != nil {
		t.Fatalf("GenerateToWriter: %v", err)
	}
	data := buf.Bytes()

	// 3px * 3 bytes = 9, padded to 12 per row.
	if want := bmpHeaderSize + 12*2; len(data) != want {
		t.Fatalf("size = %d, want %d", len(data), want)
	}
	if string(data[:2]) != "BM" {
		t.Errorf("magic = %q", data[:2])
	}
	if w := binary.LittleEndian.Uint32(data[18:22]); w != 3 {
		t.Errorf("width = %d", w)
	}
	// First stored row is the bottom row, BGR order.
	px := data[bmpHeaderSize : bmpHeaderSize+3]
	if px[0] != 50 || px[1] != 100 || px[2] != 200 {
		t.Errorf("bottom-left BGR = %v, want [50 100 200]", px)
	}
}

func TestGenerate_Errors(t *testing.T) {
	dir := t.TempDir()

	if err := Generate(filepath.Join(dir, "x.png"), Config{}); !errors.Is(err, ErrNoImage) {
		t.Errorf("nil image: got %v, want ErrNoImage", err)
	}

	img := NewSolidImage(1, 1, color.RGBA{A: 255})
	if err := Generate(filepath.Join(dir, "x.gif"), Config{Image: img}); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if err := Generate(filepath.Join(dir, "missing", "x.png"), Config{Image: img}); err == nil {
		t.Error("expected error for unwritable path")
	}
}
