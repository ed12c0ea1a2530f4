// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/candidate-matcher/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Matching behavior
	Strategy        string   `json:"strategy,omitempty" validate:"omitempty,oneof=standard fast comprehensive"`
	DiversityWeight float64  `json:"diversity_weight,omitempty" validate:"gte=0,lte=1"`
	BiasDetection   bool     `json:"bias_detection,omitempty"`
	Weights         *Weights `json:"weights,omitempty"`

	// External capabilities
	APIKey         string `json:"api_key,omitempty"`          // Gemini API key for embeddings
	EmbeddingModel string `json:"embedding_model,omitempty"`  // Gemini embedding model name
	DatabaseURL    string `json:"database_url,omitempty"`     // PostgreSQL connection URL for run persistence
	RedisAddr      string `json:"redis_addr,omitempty"`       // Redis address for the shared result cache
	CacheTTL       int    `json:"cache_ttl_seconds,omitempty" validate:"gte=0"`
	SkillDict      string `json:"skill_dict,omitempty"` // Path to a skill dictionary JSON overriding the defaults

	// Output
	Verbose bool `json:"verbose,omitempty"`
	LogJSON bool `json:"log_json,omitempty"`
}

// Weights mirrors types.ScoringWeights for JSON configuration.
type Weights struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Semantic   float64 `json:"semantic"`
}

// ScoringWeights converts configured weights to the domain type.
func (w *Weights) ScoringWeights() types.ScoringWeights {
	return types.ScoringWeights{
		Skills:     w.Skills,
		Experience: w.Experience,
		Education:  w.Education,
		Semantic:   w.Semantic,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Weights != nil {
		if err := c.Weights.ScoringWeights().Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	if c.SkillDict != "" {
		if _, err := os.Stat(c.SkillDict); os.IsNotExist(err) {
			return fmt.Errorf("config error: skill dictionary file not found: %s", c.SkillDict)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Strategy == "" {
		result.Strategy = defaults.Strategy
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisAddr == "" {
		result.RedisAddr = defaults.RedisAddr
	}
	if result.SkillDict == "" {
		result.SkillDict = defaults.SkillDict
	}
	if result.CacheTTL == 0 {
		result.CacheTTL = defaults.CacheTTL
	}
	if result.DiversityWeight == 0 {
		result.DiversityWeight = defaults.DiversityWeight
	}
	if result.Weights == nil {
		result.Weights = defaults.Weights
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
