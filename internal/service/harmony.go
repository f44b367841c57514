package service

import "colormind/internal/model"

const (
	HarmonyComplementary = "complementary"
	HarmonyAnalogous     = "analogous"
	HarmonyTriadic       = "triadic"
	HarmonyTetradic      = "tetradic"
	HarmonyMonochromatic = "monochromatic"
)

// HarmonyColors derives five related colors from one seed. The seed hue is
// in degrees; saturation and lightness are fractions. Every scheme returns
// five colors so role assignment stays consistent; an unknown scheme name
// returns an empty slice.
func HarmonyColors(h, s, l float64, scheme string) []model.RGB {
	switch scheme {
	case HarmonyComplementary:
		return []model.RGB{
			hslColor(h, s, l),
			hslColor(h+180, s*0.8, l),
			hslColor(h, s*0.3, l+0.2),
			hslColor(h+180, s*0.3, l+0.2),
			hslColor(h, s*0.1, l+0.3),
		}
	case HarmonyAnalogous:
		return []model.RGB{
			hslColor(h, s, l),
			hslColor(h+30, s*0.9, l),
			hslColor(h-30, s*0.9, l),
			hslColor(h+60, s*0.7, l+0.1),
			hslColor(h-60, s*0.7, l+0.1),
		}
	case HarmonyTriadic:
		return []model.RGB{
			hslColor(h, s, l),
			hslColor(h+120, s*0.8, l),
			hslColor(h+240, s*0.8, l),
			hslColor(h, s*0.3, l+0.2),
			hslColor(h+120, s*0.3, l+0.2),
		}
	case HarmonyTetradic:
		return []model.RGB{
			hslColor(h, s, l),
			hslColor(h+90, s*0.9, l),
			hslColor(h+180, s*0.8, l),
			hslColor(h+270, s*0.9, l),
			hslColor(h, s*0.2, l+0.3),
		}
	case HarmonyMonochromatic:
		return []model.RGB{
			hslColor(h, s, l),
			hslColor(h, s*0.8, l+0.1),
			hslColor(h, s*0.6, l+0.2),
			hslColor(h, s*0.4, l+0.3),
			hslColor(h, s*0.2, l+0.4),
		}
	default:
		return []model.RGB{}
	}
}

// hslColor clamps the additive s/l offsets into [0,1] before conversion and
// the converted channels into valid range.
func hslColor(h, s, l float64) model.RGB {
	r, g, b := HSLToRGB(h, clamp01(s), clamp01(l))
	return ClampRGB(r, g, b)
}
