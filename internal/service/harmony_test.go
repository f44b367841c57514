package service

import (
	"math"
	"testing"

	"colormind/internal/model"
)

func TestHarmonyColorsAlwaysFive(t *testing.T) {
	schemes := []string{
		HarmonyComplementary,
		HarmonyAnalogous,
		HarmonyTriadic,
		HarmonyTetradic,
		HarmonyMonochromatic,
	}
	for _, scheme := range schemes {
		colors := HarmonyColors(210, 0.6, 0.5, scheme)
		if len(colors) != 5 {
			t.Fatalf("%s produced %d colors, want 5", scheme, len(colors))
		}
	}
}

func TestHarmonyUnknownSchemeIsEmpty(t *testing.T) {
	if colors := HarmonyColors(120, 0.5, 0.5, "cubist"); len(colors) != 0 {
		t.Fatalf("unknown scheme produced %d colors", len(colors))
	}
}

func TestComplementarySeedAndOpposite(t *testing.T) {
	colors := HarmonyColors(0, 1.0, 0.5, HarmonyComplementary)
	if len(colors) != 5 {
		t.Fatalf("expected 5 colors, got %d", len(colors))
	}
	if colors[0] != (model.RGB{R: 255, G: 0, B: 0}) {
		t.Fatalf("seed color mismatch: %v", colors[0])
	}

	h, s, _ := RGBToHSLF(colors[1])
	if math.Abs(h-180) > 1 {
		t.Fatalf("opposite hue %f, want 180", h)
	}
	if math.Abs(s-0.8) > 0.01 {
		t.Fatalf("opposite saturation %f, want 0.8", s)
	}
}

func TestMonochromaticKeepsHue(t *testing.T) {
	colors := HarmonyColors(120, 0.5, 0.4, HarmonyMonochromatic)
	for i, c := range colors {
		h, s, _ := RGBToHSLF(c)
		if s == 0 {
			continue
		}
		if math.Abs(h-120) > 1.5 {
			t.Fatalf("color %d hue drifted to %f", i, h)
		}
	}
}

func TestHarmonyClampsLightnessOverflow(t *testing.T) {
	// Seed near white: the +0.3/+0.4 lightness offsets overflow and must be
	// clamped, never producing out-of-range channels.
	colors := HarmonyColors(30, 0.9, 0.9, HarmonyMonochromatic)
	for i, c := range colors {
		_ = c.R // channels are uint8, so reaching here means ClampRGB held
		_, _, l := RGBToHSLF(colors[i])
		if l > 1.0 {
			t.Fatalf("lightness out of range: %f", l)
		}
	}
}
