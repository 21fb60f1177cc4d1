package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"ordering/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel       zerolog.Level
	PriceTolerance float64
}

// LoadConfig reads an optional env file and then the process environment.
// LOG_LEVEL defaults to info, PRICE_TOLERANCE defaults to 0 (exact price matching).
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	config := Config{
		LogLevel:       zerolog.InfoLevel,
		PriceTolerance: 0,
	}

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		level, err := zerolog.ParseLevel(raw)
		if err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
		}
		config.LogLevel = level
	}

	if raw := os.Getenv("PRICE_TOLERANCE"); raw != "" {
		tolerance, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("PRICE_TOLERANCE", err)
		}
		config.PriceTolerance = tolerance
	}

	return config, nil
}
