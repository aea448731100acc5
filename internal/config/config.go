package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"creditid3/internal/features"
)

// Config drives training and serving. Values come from Default, then an
// optional YAML file, then environment variables; commands apply their flags
// last.
type Config struct {
	TrainPath      string `yaml:"train" validate:"required"`
	ValidationPath string `yaml:"validation" validate:"required"`
	TestPath       string `yaml:"test" validate:"required"`
	Header         bool   `yaml:"header"`
	Dim            int    `yaml:"dim" validate:"gte=1"`

	// MaxPrunes caps accepted collapses; 0 prunes until nothing improves.
	MaxPrunes int    `yaml:"max_prunes" validate:"gte=0"`
	TieBreak  string `yaml:"tie_break" validate:"oneof=first last"`
	PlotPath  string `yaml:"plot"`

	Port   string `yaml:"port" validate:"omitempty,numeric"`
	APIKey string `yaml:"api_key"`
}

func Default() Config {
	return Config{
		TrainPath:      "data/train.csv",
		ValidationPath: "data/validation.csv",
		TestPath:       "data/test.csv",
		Header:         true,
		Dim:            features.Dim,
		MaxPrunes:      2,
		TieBreak:       "first",
		Port:           "8080",
	}
}

// Load reads path (skipped when empty) over the defaults and applies the
// environment. The result is not validated; call Validate once flags are in.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("ID3_MAX_PRUNES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ID3_MAX_PRUNES: %w", err)
		}
		c.MaxPrunes = n
	}
	if v := os.Getenv("ID3_TIE_BREAK"); v != "" {
		c.TieBreak = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("API_KEY"); v != "" {
		c.APIKey = v
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c Config) Validate() error {
	return validate.Struct(c)
}
