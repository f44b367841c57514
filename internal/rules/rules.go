// Package rules holds the static style/mood/lighting rule tables and the
// palette-name word lists. The tables are read-only after startup; an
// optional JSON file can override or extend the built-in defaults.
package rules

import (
	"encoding/json"
	"errors"
	"os"

	"colormind/internal/model"
)

// DefaultStyle is the style whose rules apply when an unknown style name is
// requested. Unknown mood/lighting names fall back to zero-effect presets.
const DefaultStyle = "scandinavian"

type Store struct {
	set model.RuleSet
}

// NewStore builds the rule tables. An empty path means built-in defaults
// only; otherwise the file at path is merged over them.
func NewStore(path string) (*Store, error) {
	set := defaultRuleSet()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var override model.RuleSet
		if err := json.Unmarshal(b, &override); err != nil {
			return nil, err
		}
		mergeRuleSet(&set, override)
	}
	if _, ok := set.Styles[DefaultStyle]; !ok {
		return nil, errors.New("rule set is missing the default style")
	}
	return &Store{set: set}, nil
}

// StyleOrDefault returns the rule for name, or the default style's rule when
// the name is unknown. Unknown names are a leniency policy, not an error.
func (s *Store) StyleOrDefault(name string) model.StyleRule {
	if rule, ok := s.set.Styles[name]; ok {
		return rule
	}
	return s.set.Styles[DefaultStyle]
}

// MoodOrDefault returns the adjustment for name, or a zero-effect adjustment
// when the name is unknown.
func (s *Store) MoodOrDefault(name string) model.MoodAdjustment {
	if adj, ok := s.set.Moods[name]; ok {
		return adj
	}
	return model.MoodAdjustment{}
}

// LightingOrDefault returns the preset for name, or a zero-effect preset
// when the name is unknown.
func (s *Store) LightingOrDefault(name string) model.LightingAdjustment {
	if adj, ok := s.set.Lighting[name]; ok {
		return adj
	}
	return model.LightingAdjustment{}
}

func (s *Store) Lexicon() model.NameLexicon {
	return s.set.Names
}

func defaultRuleSet() model.RuleSet {
	return model.RuleSet{
		Styles: map[string]model.StyleRule{
			"japandi": {
				SaturationRange: [2]float64{0.05, 0.25},
				LightnessRange:  [2]float64{0.7, 0.95},
				PreferredHues:   []int{30, 45, 60, 200, 220},
				Temperature:     "warm",
			},
			"scandinavian": {
				SaturationRange: [2]float64{0.1, 0.4},
				LightnessRange:  [2]float64{0.75, 0.95},
				PreferredHues:   []int{0, 200, 220, 240},
				Temperature:     "cool",
			},
			"minimalist": {
				SaturationRange: [2]float64{0.0, 0.15},
				LightnessRange:  [2]float64{0.2, 0.95},
				PreferredHues:   []int{0, 60, 120, 180, 240, 300},
				Temperature:     "neutral",
			},
			"industrial": {
				SaturationRange: [2]float64{0.1, 0.5},
				LightnessRange:  [2]float64{0.2, 0.7},
				PreferredHues:   []int{0, 30, 200, 220, 240},
				Temperature:     "cool",
			},
			"mediterranean": {
				SaturationRange: [2]float64{0.3, 0.8},
				LightnessRange:  [2]float64{0.4, 0.8},
				PreferredHues:   []int{20, 40, 60, 180, 200, 220, 240},
				Temperature:     "warm",
			},
		},
		Moods: map[string]model.MoodAdjustment{
			"calm":      {Saturation: -0.2, Lightness: 0.1},
			"cozy":      {Saturation: 0.1, Lightness: -0.1},
			"luxury":    {Saturation: 0.2, Lightness: -0.2},
			"energetic": {Saturation: 0.3, Lightness: 0.0},
		},
		Lighting: map[string]model.LightingAdjustment{
			"daylight":   {Temperature: 0, Brightness: 0},
			"warm_light": {Temperature: 0.1, Brightness: -0.05},
			"cool_led":   {Temperature: -0.1, Brightness: 0.05},
		},
		Names: model.NameLexicon{
			Prefixes: []string{"Serene", "Vibrant", "Dreamy", "Bold", "Gentle", "Rich", "Fresh", "Warm", "Cool", "Deep"},
			Themes:   []string{"Ocean", "Forest", "Sunset", "Dawn", "Garden", "Stone", "Sand", "Sky", "Earth", "Moonlight"},
			Suffixes: []string{"Harmony", "Whisper", "Embrace", "Glow", "Essence", "Dream", "Breeze", "Touch", "Aura", "Calm"},
			MoodPrefixes: map[string][]string{
				"luxury":    {"Rich", "Deep", "Bold"},
				"calm":      {"Serene", "Gentle", "Soft"},
				"energetic": {"Vibrant", "Bold", "Fresh"},
			},
		},
	}
}

func mergeRuleSet(base *model.RuleSet, override model.RuleSet) {
	for name, rule := range override.Styles {
		base.Styles[name] = rule
	}
	for name, adj := range override.Moods {
		base.Moods[name] = adj
	}
	for name, adj := range override.Lighting {
		base.Lighting[name] = adj
	}
	if len(override.Names.Prefixes) > 0 {
		base.Names.Prefixes = override.Names.Prefixes
	}
	if len(override.Names.Themes) > 0 {
		base.Names.Themes = override.Names.Themes
	}
	if len(override.Names.Suffixes) > 0 {
		base.Names.Suffixes = override.Names.Suffixes
	}
	for mood, words := range override.Names.MoodPrefixes {
		if base.Names.MoodPrefixes == nil {
			base.Names.MoodPrefixes = map[string][]string{}
		}
		base.Names.MoodPrefixes[mood] = words
	}
}
