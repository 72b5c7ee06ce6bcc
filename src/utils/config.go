package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the service settings. File values come from a YAML config;
// PORT and LOG_LEVEL env vars win over the file.
type Config struct {
	Port            int    `yaml:"port"`
	LogLevel        string `yaml:"log_level"`
	BinomialSteps   int    `yaml:"binomial_steps"`
	MonteCarloDraws int    `yaml:"mc_simulations"`
}

func defaultConfig() *Config {
	return &Config{
		Port:            8000,
		LogLevel:        "info",
		BinomialSteps:   100,
		MonteCarloDraws: 100000,
	}
}

func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("failed to parse PORT env var: %w", err)
		}
		cfg.Port = p
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}
