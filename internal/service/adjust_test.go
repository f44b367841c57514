package service

import (
	"math"
	"testing"

	"colormind/internal/model"
)

func styleRule() model.StyleRule {
	return model.StyleRule{
		SaturationRange: [2]float64{0.1, 0.4},
		LightnessRange:  [2]float64{0.75, 0.95},
	}
}

func TestSelectStyleColorsFiltersByRange(t *testing.T) {
	dominant := []model.DominantColor{
		{RGB: model.RGB{R: 10, G: 20, B: 30}, HSL: model.HSL{H: 210, S: 50, L: 80}, Rank: 1},
		{RGB: model.RGB{R: 200, G: 210, B: 220}, HSL: model.HSL{H: 210, S: 20, L: 85}, Rank: 2},
	}
	selected := SelectStyleColors(dominant, styleRule())
	if len(selected) != 1 {
		t.Fatalf("expected 1 selected color, got %d", len(selected))
	}
	if selected[0] != dominant[1].RGB {
		t.Fatalf("wrong color selected: %v", selected[0])
	}
}

func TestSelectStyleColorsFallsBackToTopThree(t *testing.T) {
	dominant := make([]model.DominantColor, 0, 5)
	for i := 0; i < 5; i++ {
		dominant = append(dominant, model.DominantColor{
			RGB:  model.RGB{R: uint8(i * 40)},
			HSL:  model.HSL{S: 99, L: 10}, // nothing fits the rule
			Rank: i + 1,
		})
	}
	selected := SelectStyleColors(dominant, styleRule())
	if len(selected) != 3 {
		t.Fatalf("expected 3 fallback colors, got %d", len(selected))
	}
	for i := 0; i < 3; i++ {
		if selected[i] != dominant[i].RGB {
			t.Fatalf("fallback order broken at %d", i)
		}
	}
}

func TestApplyMoodLightingZeroEffectIsIdentity(t *testing.T) {
	colors := []model.RGB{
		{R: 123, G: 45, B: 67},
		{R: 200, G: 210, B: 220},
		{R: 64, G: 191, B: 64},
	}
	adjusted := ApplyMoodLighting(colors, model.MoodAdjustment{}, model.LightingAdjustment{})
	for i := range colors {
		if absInt(int(adjusted[i].R)-int(colors[i].R)) > 1 ||
			absInt(int(adjusted[i].G)-int(colors[i].G)) > 1 ||
			absInt(int(adjusted[i].B)-int(colors[i].B)) > 1 {
			t.Fatalf("zero adjustment changed color %d: %v -> %v", i, colors[i], adjusted[i])
		}
	}
}

func TestApplyMoodLightingWarmShiftsHue(t *testing.T) {
	green := model.RGB{R: 63, G: 191, B: 63} // hue 120
	adjusted := ApplyMoodLighting([]model.RGB{green}, model.MoodAdjustment{}, model.LightingAdjustment{Temperature: 0.1})
	h, _, _ := RGBToHSLF(adjusted[0])
	if math.Abs(h-127.2) > 1.5 {
		t.Fatalf("warm shift produced hue %f, want ~127.2", h)
	}
}

func TestHueShiftSaturatesAtBoundaries(t *testing.T) {
	// Warm shift near the top of the hue range is skipped, not wrapped.
	nearTop := hslColor(355, 0.8, 0.5)
	adjusted := ApplyMoodLighting([]model.RGB{nearTop}, model.MoodAdjustment{}, model.LightingAdjustment{Temperature: 0.1})
	h, _, _ := RGBToHSLF(adjusted[0])
	if math.Abs(h-355) > 1.5 {
		t.Fatalf("warm shift near boundary moved hue to %f", h)
	}

	// Cool shift near the bottom is likewise skipped.
	nearBottom := hslColor(5, 0.8, 0.5)
	adjusted = ApplyMoodLighting([]model.RGB{nearBottom}, model.MoodAdjustment{}, model.LightingAdjustment{Temperature: -0.1})
	h, _, _ = RGBToHSLF(adjusted[0])
	if math.Abs(h-5) > 1.5 {
		t.Fatalf("cool shift near boundary moved hue to %f", h)
	}
}

func TestMoodDeltasClamp(t *testing.T) {
	// A heavily saturated color plus a big positive saturation delta must
	// clamp at full saturation instead of overflowing.
	c := hslColor(200, 0.95, 0.5)
	adjusted := ApplyMoodLighting([]model.RGB{c}, model.MoodAdjustment{Saturation: 0.3}, model.LightingAdjustment{})
	_, s, _ := RGBToHSLF(adjusted[0])
	if s < 0.98 || s > 1.0 {
		t.Fatalf("saturation not clamped to 1: %f", s)
	}
}

func TestAdjustPaletteForLightingPreservesRoles(t *testing.T) {
	in := []model.PaletteColor{
		{RGB: model.RGB{R: 100, G: 150, B: 200}, Hex: "stale", Role: "Accent", Locked: true},
	}
	out := AdjustPaletteForLighting(in, model.LightingAdjustment{Temperature: -0.1, Brightness: 0.05})
	if len(out) != 1 {
		t.Fatalf("expected 1 color, got %d", len(out))
	}
	if out[0].Role != "Accent" || !out[0].Locked {
		t.Fatalf("role/locked not preserved: %+v", out[0])
	}
	if out[0].Hex != RGBToHex(out[0].RGB) {
		t.Fatalf("hex not recomputed from rgb: %s", out[0].Hex)
	}
	if out[0].RGB == in[0].RGB {
		t.Fatalf("lighting adjustment had no effect")
	}
}
