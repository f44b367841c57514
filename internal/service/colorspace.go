package service

import (
	"fmt"
	"math"

	"colormind/internal/model"
)

// Conversions use truncation, not rounding, so derived integer values match
// across repeated derivations. HSLToRGB deliberately does not clamp its
// output; callers clamp to [0,255] before building a model.RGB.

func RGBToHex(c model.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func RGBToHSL(c model.RGB) model.HSL {
	h, s, l := RGBToHSLF(c)
	return model.HSL{H: int(h), S: int(s * 100), L: int(l * 100)}
}

// RGBToHSLF returns hue in degrees [0,360) and saturation/lightness as
// fractions in [0,1].
func RGBToHSLF(c model.RGB) (h, s, l float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	l = (maxc + minc) / 2
	if maxc == minc {
		return 0, 0, l
	}

	d := maxc - minc
	if l <= 0.5 {
		s = d / (maxc + minc)
	} else {
		s = d / (2 - maxc - minc)
	}

	switch maxc {
	case r:
		h = (g - b) / d
	case g:
		h = 2 + (b-r)/d
	default:
		h = 4 + (r-g)/d
	}
	h = math.Mod(h/6, 1)
	if h < 0 {
		h++
	}
	return h * 360, s, l
}

// HSLToRGB converts hue in degrees (any value, normalized mod 360) and
// fractional saturation/lightness to integer channels. Output is truncated
// but not clamped.
func HSLToRGB(h, s, l float64) (r, g, b int) {
	hn := math.Mod(h/360, 1)
	if hn < 0 {
		hn++
	}
	if s == 0 {
		v := int(l * 255)
		return v, v, v
	}
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2
	r = int(hueComponent(m1, m2, hn+1.0/3) * 255)
	g = int(hueComponent(m1, m2, hn) * 255)
	b = int(hueComponent(m1, m2, hn-1.0/3) * 255)
	return r, g, b
}

func hueComponent(m1, m2, hue float64) float64 {
	hue = math.Mod(hue, 1)
	if hue < 0 {
		hue++
	}
	switch {
	case hue < 1.0/6:
		return m1 + (m2-m1)*hue*6
	case hue < 0.5:
		return m2
	case hue < 2.0/3:
		return m1 + (m2-m1)*(2.0/3-hue)*6
	default:
		return m1
	}
}

// RGBToCMYK returns integer percentages. Pure black is special-cased to
// avoid dividing by zero.
func RGBToCMYK(c model.RGB) model.CMYK {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	k := 1 - math.Max(r, math.Max(g, b))
	if k == 1 {
		return model.CMYK{C: 0, M: 0, Y: 0, K: 100}
	}

	cy := (1 - r - k) / (1 - k)
	m := (1 - g - k) / (1 - k)
	y := (1 - b - k) / (1 - k)
	return model.CMYK{
		C: int(cy * 100),
		M: int(m * 100),
		Y: int(y * 100),
		K: int(k * 100),
	}
}

func ClampRGB(r, g, b int) model.RGB {
	return model.RGB{
		R: uint8(clampInt(r, 0, 255)),
		G: uint8(clampInt(g, 0, 255)),
		B: uint8(clampInt(b, 0, 255)),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
