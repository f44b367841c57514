package service

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math/rand"
	"sort"

	"colormind/internal/config"
	"colormind/internal/model"
	"github.com/disintegration/imaging"
)

const (
	darkThreshold  = 30.0
	lightThreshold = 225.0
	// Fraction of pixels the brightness filter must leave behind; below this
	// the unfiltered set is used instead.
	minFilteredFraction = 0.1
)

// ColorService extracts ranked dominant colors from uploaded images.
type ColorService struct {
	cfg config.Config
}

func NewColorService(cfg config.Config) *ColorService {
	return &ColorService{cfg: cfg}
}

// ExtractDominantColors decodes imageBytes and clusters its pixels into
// count representative colors, ranked by descending cluster population.
// The clustering seed comes from config, so identical images always yield
// identical results.
func (s *ColorService) ExtractDominantColors(imageBytes []byte, count int) ([]model.DominantColor, error) {
	if count <= 0 {
		count = s.cfg.DominantColorCount
	}
	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, err
	}
	return s.ExtractFromImage(img, count)
}

// ExtractFromImage runs the extraction pipeline on an already-decoded image.
func (s *ColorService) ExtractFromImage(img image.Image, count int) ([]model.DominantColor, error) {
	if count <= 0 {
		count = s.cfg.DominantColorCount
	}

	// Fit scales down only, preserving aspect ratio; small images pass
	// through untouched. The result is always alpha-free RGB data for us.
	resized := imaging.Fit(img, s.cfg.MaxImageDimension, s.cfg.MaxImageDimension, imaging.Lanczos)

	pixels := flattenPixels(resized)
	if len(pixels) == 0 {
		return nil, errors.New("image has no pixels")
	}
	pixels = filterExtremeBrightness(pixels)

	points := make([]point3, len(pixels))
	for i, p := range pixels {
		points[i] = point3{R: float64(p.R), G: float64(p.G), B: float64(p.B)}
	}

	rng := rand.New(rand.NewSource(s.cfg.KMeansSeed))
	centroids, counts := kmeansCluster(points, count, rng)

	type cluster struct {
		rgb   model.RGB
		count int
	}
	clusters := make([]cluster, len(centroids))
	for i, c := range centroids {
		clusters[i] = cluster{rgb: ClampRGB(int(c.R), int(c.G), int(c.B)), count: counts[i]}
	}
	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].count > clusters[j].count
	})

	total := float64(len(points))
	dominant := make([]model.DominantColor, 0, len(clusters))
	for i, cl := range clusters {
		dominant = append(dominant, model.DominantColor{
			RGB:       cl.rgb,
			Hex:       RGBToHex(cl.rgb),
			HSL:       RGBToHSL(cl.rgb),
			CMYK:      RGBToCMYK(cl.rgb),
			Frequency: float64(cl.count) / total,
			Rank:      i + 1,
		})
	}
	return dominant, nil
}

func flattenPixels(img image.Image) []model.RGB {
	bounds := img.Bounds()
	pixels := make([]model.RGB, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels = append(pixels, model.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
		}
	}
	return pixels
}

// filterExtremeBrightness drops near-black and near-white pixels so shadows
// and highlights do not dominate the clustering. Near-monochrome images
// would lose almost everything to the filter, so the unfiltered set is kept
// when fewer than 10% of pixels survive.
func filterExtremeBrightness(pixels []model.RGB) []model.RGB {
	filtered := make([]model.RGB, 0, len(pixels))
	for _, p := range pixels {
		brightness := (float64(p.R) + float64(p.G) + float64(p.B)) / 3
		if brightness > darkThreshold && brightness < lightThreshold {
			filtered = append(filtered, p)
		}
	}
	if float64(len(filtered)) < float64(len(pixels))*minFilteredFraction {
		return pixels
	}
	return filtered
}
