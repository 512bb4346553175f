package tracking

import (
	"bytes"
	"image/png"
	"strings"
	"testing"
)

func TestLabelRendersPNG(t *testing.T) {
	data, err := Label("PKG-0A1B2C3D4E", 128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("expected decodable PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 128 || bounds.Dy() != 128 {
		t.Fatalf("expected 128x128 label, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestLabelDefaultsSize(t *testing.T) {
	data, err := Label("PKG-0A1B2C3D4E", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("expected decodable PNG: %v", err)
	}
	if img.Bounds().Dx() != defaultLabelSize {
		t.Fatalf("expected default size %d, got %d", defaultLabelSize, img.Bounds().Dx())
	}
}

func TestNewCodeShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := NewCode()
		if !strings.HasPrefix(code, "PKG-") || len(code) != 14 {
			t.Fatalf("unexpected code shape: %q", code)
		}
		if code != strings.ToUpper(code) {
			t.Fatalf("expected uppercase code, got %q", code)
		}
		if seen[code] {
			t.Fatalf("duplicate code generated: %q", code)
		}
		seen[code] = true
	}
}
