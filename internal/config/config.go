package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr         string
	MaxUploadSizeBytes int64
	DominantColorCount int
	MaxImageDimension  int
	KMeansSeed         int64
	RulesPath          string
	SwatchWidth        int
	SwatchHeight       int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:         getEnv("LISTEN_ADDR", ":8080"),
		MaxUploadSizeBytes: getEnvInt64("MAX_UPLOAD_SIZE_BYTES", 16*1024*1024),
		DominantColorCount: getEnvInt("DOMINANT_COLOR_COUNT", 6),
		MaxImageDimension:  getEnvInt("MAX_IMAGE_DIMENSION", 300),
		KMeansSeed:         getEnvInt64("KMEANS_SEED", 42),
		RulesPath:          getEnv("RULES_PATH", ""),
		SwatchWidth:        getEnvInt("SWATCH_WIDTH", 800),
		SwatchHeight:       getEnvInt("SWATCH_HEIGHT", 400),
	}

	if cfg.MaxUploadSizeBytes <= 0 {
		return Config{}, errors.New("max upload size bytes must be > 0")
	}
	if cfg.DominantColorCount <= 0 {
		return Config{}, errors.New("dominant color count must be > 0")
	}
	if cfg.MaxImageDimension <= 0 {
		return Config{}, errors.New("max image dimension must be > 0")
	}
	if cfg.SwatchWidth <= 0 || cfg.SwatchHeight <= 0 {
		return Config{}, errors.New("swatch width/height must be > 0")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
