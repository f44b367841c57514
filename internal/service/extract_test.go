package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"colormind/internal/config"
	"colormind/internal/model"
)

func testConfig() config.Config {
	return config.Config{
		DominantColorCount: 6,
		MaxImageDimension:  300,
		KMeansSeed:         42,
	}
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestExtractSolidImage(t *testing.T) {
	svc := NewColorService(testConfig())
	b := encodePNG(t, solidImage(40, 40, color.RGBA{R: 200, G: 100, B: 50, A: 255}))

	dominant, err := svc.ExtractDominantColors(b, 6)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(dominant) != 6 {
		t.Fatalf("expected 6 colors, got %d", len(dominant))
	}

	sum := 0.0
	for i, dc := range dominant {
		if dc.Rank != i+1 {
			t.Fatalf("rank out of order at %d: %d", i, dc.Rank)
		}
		if absInt(int(dc.RGB.R)-200) > 1 || absInt(int(dc.RGB.G)-100) > 1 || absInt(int(dc.RGB.B)-50) > 1 {
			t.Fatalf("cluster %d drifted from solid color: %v", i, dc.RGB)
		}
		sum += dc.Frequency
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("frequencies sum to %f, want 1.0", sum)
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	svc := NewColorService(testConfig())
	img := image.NewRGBA(image.Rect(0, 0, 30, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(40 + x*5), G: uint8(60 + y*4), B: uint8(90 + (x+y)*2), A: 255})
		}
	}
	b := encodePNG(t, img)

	first, err := svc.ExtractDominantColors(b, 6)
	if err != nil {
		t.Fatalf("first extract: %v", err)
	}
	second, err := svc.ExtractDominantColors(b, 6)
	if err != nil {
		t.Fatalf("second extract: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].RGB != second[i].RGB || first[i].Frequency != second[i].Frequency {
			t.Fatalf("non-deterministic result at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestExtractFiltersExtremePixels(t *testing.T) {
	// Top half pure black, bottom half mid-tone; the black half must not
	// reach the clustering stage.
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if y < 10 {
				img.SetRGBA(x, y, color.RGBA{A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
			}
		}
	}
	svc := NewColorService(testConfig())
	dominant, err := svc.ExtractDominantColors(encodePNG(t, img), 3)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	top := dominant[0]
	if absInt(int(top.RGB.R)-200) > 1 || absInt(int(top.RGB.G)-100) > 1 || absInt(int(top.RGB.B)-50) > 1 {
		t.Fatalf("expected mid-tone to dominate, got %v", top.RGB)
	}
	if top.Frequency != 1.0 {
		t.Fatalf("expected all filtered pixels in one cluster, frequency %f", top.Frequency)
	}
}

func TestExtractNearBlackImageUsesUnfilteredPixels(t *testing.T) {
	// The brightness filter would drop every pixel; the guard falls back to
	// the unfiltered set instead of failing.
	svc := NewColorService(testConfig())
	b := encodePNG(t, solidImage(16, 16, color.RGBA{R: 10, G: 10, B: 10, A: 255}))
	dominant, err := svc.ExtractDominantColors(b, 4)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(dominant) != 4 {
		t.Fatalf("expected 4 colors, got %d", len(dominant))
	}
	if absInt(int(dominant[0].RGB.R)-10) > 1 {
		t.Fatalf("expected near-black dominant color, got %v", dominant[0].RGB)
	}
}

func TestExtractRejectsInvalidImage(t *testing.T) {
	svc := NewColorService(testConfig())
	if _, err := svc.ExtractDominantColors([]byte("not an image"), 6); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestFilterExtremeBrightness(t *testing.T) {
	pixels := []model.RGB{
		{R: 0, G: 0, B: 0},       // too dark
		{R: 255, G: 255, B: 255}, // too light
		{R: 120, G: 120, B: 120},
		{R: 90, G: 30, B: 10}, // mean ~43, kept
	}
	got := filterExtremeBrightness(pixels)
	if len(got) != 2 {
		t.Fatalf("expected 2 surviving pixels, got %d", len(got))
	}
}
