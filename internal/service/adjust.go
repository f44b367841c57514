package service

import "colormind/internal/model"

// Hue shift applied by warm/cool lighting, on the normalized 0-1 hue scale.
const lightingHueShift = 0.02

// SelectStyleColors keeps dominant colors whose saturation and lightness
// fall inside the style's allowed ranges. If nothing qualifies, the top
// three colors by frequency are used regardless of range.
func SelectStyleColors(dominant []model.DominantColor, rule model.StyleRule) []model.RGB {
	selected := make([]model.RGB, 0, len(dominant))
	for _, dc := range dominant {
		sat := float64(dc.HSL.S) / 100
		light := float64(dc.HSL.L) / 100
		if sat >= rule.SaturationRange[0] && sat <= rule.SaturationRange[1] &&
			light >= rule.LightnessRange[0] && light <= rule.LightnessRange[1] {
			selected = append(selected, dc.RGB)
		}
	}
	if len(selected) == 0 {
		for i, dc := range dominant {
			if i == 3 {
				break
			}
			selected = append(selected, dc.RGB)
		}
	}
	return selected
}

// ApplyMoodLighting perturbs each color's saturation, lightness and hue
// according to the mood and lighting presets. A zero-valued adjustment pair
// leaves colors unchanged apart from HSL round-trip truncation.
func ApplyMoodLighting(colors []model.RGB, mood model.MoodAdjustment, lighting model.LightingAdjustment) []model.RGB {
	adjusted := make([]model.RGB, 0, len(colors))
	for _, c := range colors {
		h, s, l := RGBToHSLF(c)

		s = clamp01(s + mood.Saturation)
		l = clamp01(l + mood.Lightness)

		h = shiftHueForLighting(h, lighting.Temperature)
		l = clamp01(l + lighting.Brightness)

		r, g, b := HSLToRGB(h, s, l)
		adjusted = append(adjusted, ClampRGB(r, g, b))
	}
	return adjusted
}

// shiftHueForLighting nudges the hue toward warm or cool. The shift
// saturates instead of wrapping: near the top of the hue range a warm shift
// is skipped, near the bottom a cool shift is skipped.
func shiftHueForLighting(hDeg, temperature float64) float64 {
	hn := hDeg / 360
	switch {
	case temperature > 0 && hn < 1-lightingHueShift:
		hn += lightingHueShift
	case temperature < 0 && hn > lightingHueShift:
		hn -= lightingHueShift
	}
	return hn * 360
}

// AdjustPaletteForLighting re-lights an already-generated palette without
// recomputing harmony. Role and locked flags are preserved; rgb and all
// derived representations are recomputed.
func AdjustPaletteForLighting(colors []model.PaletteColor, lighting model.LightingAdjustment) []model.PaletteColor {
	adjusted := make([]model.PaletteColor, 0, len(colors))
	for _, pc := range colors {
		rgb := ApplyMoodLighting([]model.RGB{pc.RGB}, model.MoodAdjustment{}, lighting)[0]
		adjusted = append(adjusted, model.PaletteColor{
			RGB:    rgb,
			Hex:    RGBToHex(rgb),
			HSL:    RGBToHSL(rgb),
			CMYK:   RGBToCMYK(rgb),
			Role:   pc.Role,
			Locked: pc.Locked,
		})
	}
	return adjusted
}
