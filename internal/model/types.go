package model

import (
	"encoding/json"
	"errors"
)

// RGB is the canonical color representation. Hex, HSL and CMYK are always
// derived from it, never stored independently.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// RGB travels on the wire as a plain [r, g, b] triple.
func (c RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{int(c.R), int(c.G), int(c.B)})
}

func (c *RGB) UnmarshalJSON(b []byte) error {
	var arr []float64
	if err := json.Unmarshal(b, &arr); err == nil {
		if len(arr) != 3 {
			return errors.New("rgb triple must have exactly 3 channels")
		}
		c.R = clampChannel(arr[0])
		c.G = clampChannel(arr[1])
		c.B = clampChannel(arr[2])
		return nil
	}
	var obj struct {
		R float64 `json:"r"`
		G float64 `json:"g"`
		B float64 `json:"b"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return errors.New("rgb must be a [r,g,b] triple or {r,g,b} object")
	}
	c.R = clampChannel(obj.R)
	c.G = clampChannel(obj.G)
	c.B = clampChannel(obj.B)
	return nil
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// SeedColor accepts either a raw [r,g,b] triple or an object carrying an
// "rgb" field, so both client shapes feed the direct-harmony flow.
type SeedColor struct {
	RGB RGB
}

func (s *SeedColor) UnmarshalJSON(b []byte) error {
	var c RGB
	if err := json.Unmarshal(b, &c); err == nil {
		s.RGB = c
		return nil
	}
	var obj struct {
		RGB *RGB `json:"rgb"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	if obj.RGB == nil {
		s.RGB = RGB{R: 128, G: 128, B: 128}
		return nil
	}
	s.RGB = *obj.RGB
	return nil
}

type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// DominantColor is a clustered representative color ranked by how much of
// the filtered image it covers.
type DominantColor struct {
	RGB       RGB     `json:"rgb"`
	Hex       string  `json:"hex"`
	HSL       HSL     `json:"hsl"`
	CMYK      CMYK    `json:"cmyk"`
	Frequency float64 `json:"frequency"`
	Rank      int     `json:"rank"`
}

type PaletteColor struct {
	RGB    RGB    `json:"rgb"`
	Hex    string `json:"hex"`
	HSL    HSL    `json:"hsl"`
	CMYK   CMYK   `json:"cmyk"`
	Role   string `json:"role"`
	Locked bool   `json:"locked"`
}

// Palette order is meaningful: position determines the role each color holds.
type Palette struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Colors      []PaletteColor `json:"colors"`
	HarmonyType string         `json:"harmony_type,omitempty"`
	Style       string         `json:"style"`
	Mood        string         `json:"mood"`
	Lighting    string         `json:"lighting"`
	CreatedAt   string         `json:"created_at"`
}

type PaletteExport struct {
	Name      string         `json:"name"`
	Colors    []PaletteColor `json:"colors"`
	CreatedAt string         `json:"created_at"`
}

// StyleRule constrains which dominant colors may seed a palette for a named
// design style. Ranges are fractional [0,1]; preferred hues are informational.
type StyleRule struct {
	SaturationRange [2]float64 `json:"saturation_range"`
	LightnessRange  [2]float64 `json:"lightness_range"`
	PreferredHues   []int      `json:"preferred_hues"`
	Temperature     string     `json:"temperature"`
}

type MoodAdjustment struct {
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

type LightingAdjustment struct {
	Temperature float64 `json:"temperature"`
	Brightness  float64 `json:"brightness"`
}

type NameLexicon struct {
	Prefixes     []string            `json:"prefixes"`
	Themes       []string            `json:"themes"`
	Suffixes     []string            `json:"suffixes"`
	MoodPrefixes map[string][]string `json:"mood_prefixes"`
}

// RuleSet is the full static rule configuration, loaded once at startup.
type RuleSet struct {
	Styles   map[string]StyleRule          `json:"styles"`
	Moods    map[string]MoodAdjustment     `json:"moods"`
	Lighting map[string]LightingAdjustment `json:"lighting"`
	Names    NameLexicon                   `json:"names"`
}

type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	CreatedAt int64       `json:"created_at_unix_ms"`
}
