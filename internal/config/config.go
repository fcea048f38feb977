package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Quiz struct {
		BatchSize int    `yaml:"batch_size"`
		PoolTTL   string `yaml:"pool_ttl"`
	} `yaml:"quiz"`
	Leaderboard struct {
		TopN int    `yaml:"top_n"`
		TTL  string `yaml:"ttl"`
	} `yaml:"leaderboard"`
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// BatchSize returns the configured question batch size or the default of 10.
func (c Config) BatchSize() int {
	if c.Quiz.BatchSize > 0 {
		return c.Quiz.BatchSize
	}
	return 10
}

// TopN returns the configured leaderboard size or the default of 10.
func (c Config) TopN() int {
	if c.Leaderboard.TopN > 0 {
		return c.Leaderboard.TopN
	}
	return 10
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
