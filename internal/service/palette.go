package service

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"colormind/internal/model"
	"colormind/internal/rules"
	"github.com/google/uuid"
)

var ErrNoBaseColors = errors.New("no base colors provided")

var roleNames = []string{"Primary", "Secondary", "Accent", "Neutral", "Background"}

// Namer is the only source of non-determinism in the pipeline: it picks
// palette-name words from the lexicon. The generator is seedable so tests
// can pin the output, and mutex-guarded because requests share one Namer.
type Namer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewNamer(seed int64) *Namer {
	return &Namer{rng: rand.New(rand.NewSource(seed))}
}

func (n *Namer) pick(words []string) string {
	if len(words) == 0 {
		return ""
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return words[n.rng.Intn(len(words))]
}

// PaletteService turns dominant or seed colors into named, role-assigned
// palettes by combining harmony generation with the style/mood/lighting
// rule tables.
type PaletteService struct {
	rules *rules.Store
	namer *Namer
}

func NewPaletteService(rules *rules.Store, namer *Namer) *PaletteService {
	return &PaletteService{rules: rules, namer: namer}
}

// Generate builds a palette from extracted dominant colors: style-based seed
// selection, complementary harmony from the best seed, then mood/lighting
// adjustment, roles and a name.
func (s *PaletteService) Generate(dominant []model.DominantColor, style, mood, lighting string) (model.Palette, error) {
	base := SelectStyleColors(dominant, s.rules.StyleOrDefault(style))

	harmony := base
	if len(base) > 0 {
		h, sat, l := RGBToHSLF(base[0])
		harmony = HarmonyColors(h, sat, l, HarmonyComplementary)
	}

	colors := s.assemble(harmony, mood, lighting)
	return model.Palette{
		ID:        uuid.NewString(),
		Name:      s.paletteName(mood),
		Colors:    colors,
		Style:     style,
		Mood:      mood,
		Lighting:  lighting,
		CreatedAt: nowISO(),
	}, nil
}

// GenerateHarmony builds a palette directly from user-supplied seed colors,
// bypassing extraction. The first seed drives the chosen harmony scheme.
func (s *PaletteService) GenerateHarmony(seeds []model.SeedColor, harmonyType, style, mood, lighting string) (model.Palette, error) {
	if len(seeds) == 0 {
		return model.Palette{}, ErrNoBaseColors
	}

	h, sat, l := RGBToHSLF(seeds[0].RGB)
	harmony := HarmonyColors(h, sat, l, harmonyType)

	colors := s.assemble(harmony, mood, lighting)
	return model.Palette{
		ID:          uuid.NewString(),
		Name:        s.paletteName(mood),
		Colors:      colors,
		HarmonyType: harmonyType,
		Style:       style,
		Mood:        mood,
		Lighting:    lighting,
		CreatedAt:   nowISO(),
	}, nil
}

func (s *PaletteService) assemble(colors []model.RGB, mood, lighting string) []model.PaletteColor {
	adjusted := ApplyMoodLighting(colors, s.rules.MoodOrDefault(mood), s.rules.LightingOrDefault(lighting))
	return AssignRoles(adjusted)
}

// AdjustForLighting re-lights an existing palette color list under a named
// lighting preset.
func (s *PaletteService) AdjustForLighting(colors []model.PaletteColor, lighting string) []model.PaletteColor {
	return AdjustPaletteForLighting(colors, s.rules.LightingOrDefault(lighting))
}

// AssignRoles attaches positional roles and derived representations to an
// ordered color list. Positions past the fixed role list become "Color N".
func AssignRoles(colors []model.RGB) []model.PaletteColor {
	palette := make([]model.PaletteColor, 0, len(colors))
	for i, rgb := range colors {
		role := ""
		if i < len(roleNames) {
			role = roleNames[i]
		} else {
			role = "Color " + itoa(i+1)
		}
		palette = append(palette, model.PaletteColor{
			RGB:    rgb,
			Hex:    RGBToHex(rgb),
			HSL:    RGBToHSL(rgb),
			CMYK:   RGBToCMYK(rgb),
			Role:   role,
			Locked: false,
		})
	}
	return palette
}

// paletteName joins a prefix, theme and suffix. Certain moods redraw the
// prefix from a mood-specific shortlist after the generic draw, keeping the
// draw sequence stable for a seeded Namer.
func (s *PaletteService) paletteName(mood string) string {
	lex := s.rules.Lexicon()
	prefix := s.namer.pick(lex.Prefixes)
	theme := s.namer.pick(lex.Themes)
	suffix := s.namer.pick(lex.Suffixes)
	if shortlist, ok := lex.MoodPrefixes[mood]; ok {
		prefix = s.namer.pick(shortlist)
	}
	return prefix + " " + theme + " " + suffix
}

// BuildExport re-serializes a palette's colors and name for the data-export
// path, stamping a fresh generation timestamp.
func (s *PaletteService) BuildExport(name string, colors []model.PaletteColor) model.PaletteExport {
	return model.PaletteExport{
		Name:      name,
		Colors:    colors,
		CreatedAt: nowISO(),
	}
}

func nowISO() string {
	return time.Now().Format(time.RFC3339)
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	buf := make([]byte, 0, 8)
	for v > 0 {
		buf = append([]byte{byte('0' + v%10)}, buf...)
		v /= 10
	}
	return string(buf)
}
