package config

import (
	"os"
	"strconv"

	"perfmodel/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Modeling ModelingConfig
}

// ModelingConfig holds model-search settings
type ModelingConfig struct {
	// UseMedian selects the median instead of the mean as the modeled
	// statistic.
	UseMedian bool
	// Epsilon is the minimum term contribution a candidate term must reach
	// to be kept.
	Epsilon float64
	// Phi is the relative threshold below which a fitted constant
	// coefficient is treated as least-squares noise and zeroed.
	Phi float64
	// MinPoints is the minimum number of measurement points required to
	// attempt a non-constant model.
	MinPoints int
	// MaxConcurrency bounds concurrent candidate evaluation. 1 disables
	// concurrency.
	MaxConcurrency int
}

// Defaults used when the environment does not override a setting.
const (
	DefaultEpsilon        = 0.0005
	DefaultPhi            = 1e-3
	DefaultMinPoints      = 5
	DefaultMaxConcurrency = 4
)

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	modeling, err := loadModelingConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load modeling configuration")
	}
	return &Config{Modeling: *modeling}, nil
}

func loadModelingConfig() (*ModelingConfig, error) {
	cfg := &ModelingConfig{
		UseMedian:      false,
		Epsilon:        DefaultEpsilon,
		Phi:            DefaultPhi,
		MinPoints:      DefaultMinPoints,
		MaxConcurrency: DefaultMaxConcurrency,
	}

	if v := os.Getenv("PERFMODEL_USE_MEDIAN"); v != "" {
		useMedian, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.ConfigInvalid("PERFMODEL_USE_MEDIAN must be a boolean")
		}
		cfg.UseMedian = useMedian
	}
	if v := os.Getenv("PERFMODEL_EPSILON"); v != "" {
		epsilon, err := strconv.ParseFloat(v, 64)
		if err != nil || epsilon < 0 {
			return nil, errors.ConfigInvalid("PERFMODEL_EPSILON must be a non-negative number")
		}
		cfg.Epsilon = epsilon
	}
	if v := os.Getenv("PERFMODEL_PHI"); v != "" {
		phi, err := strconv.ParseFloat(v, 64)
		if err != nil || phi < 0 {
			return nil, errors.ConfigInvalid("PERFMODEL_PHI must be a non-negative number")
		}
		cfg.Phi = phi
	}
	if v := os.Getenv("PERFMODEL_MIN_POINTS"); v != "" {
		minPoints, err := strconv.Atoi(v)
		if err != nil || minPoints < 2 {
			return nil, errors.ConfigInvalid("PERFMODEL_MIN_POINTS must be an integer >= 2")
		}
		cfg.MinPoints = minPoints
	}
	if v := os.Getenv("PERFMODEL_MAX_CONCURRENCY"); v != "" {
		maxConcurrency, err := strconv.Atoi(v)
		if err != nil || maxConcurrency < 1 {
			return nil, errors.ConfigInvalid("PERFMODEL_MAX_CONCURRENCY must be a positive integer")
		}
		cfg.MaxConcurrency = maxConcurrency
	}

	return cfg, nil
}
