// Package config handles refcheck configuration and tuning parameters.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Limits holds the similarity thresholds and field weights used by the
// deduplicator and verifier. The defaults are empirical constants; tune
// them through the config file rather than editing code.
type Limits struct {
	// Deduplication
	DuplicateThreshold float64 `yaml:"duplicate_threshold"` // combined score above this marks a duplicate
	TitleWeight        float64 `yaml:"title_weight"`
	AuthorWeight       float64 `yaml:"author_weight"`
	YearWeight         float64 `yaml:"year_weight"`
	JournalWeight      float64 `yaml:"journal_weight"`

	// Fuzzy title verification
	AcceptThreshold   float64 `yaml:"accept_threshold"` // combined score must exceed this
	TitleRatioWeight  float64 `yaml:"title_ratio_weight"`
	WordOverlapWeight float64 `yaml:"word_overlap_weight"`
	MinQueryLen       int     `yaml:"min_query_len"` // shorter title-search queries are skipped
}

// DefaultLimits returns the standard tuning parameters.
func DefaultLimits() Limits {
	return Limits{
		DuplicateThreshold: 0.85,
		TitleWeight:        0.4,
		AuthorWeight:       0.3,
		YearWeight:         0.1,
		JournalWeight:      0.2,
		AcceptThreshold:    0.5,
		TitleRatioWeight:   0.7,
		WordOverlapWeight:  0.3,
		MinQueryLen:        10,
	}
}

// Config is the full refcheck configuration.
type Config struct {
	// Mailto is the contact address sent to the registry per its polite
	// pool policy. Also settable via REFCHECK_MAILTO.
	Mailto string `yaml:"mailto,omitempty"`

	// RegistryBaseURL overrides the registry endpoint (for testing).
	RegistryBaseURL string `yaml:"registry_base_url,omitempty"`

	// Workers bounds concurrent registry lookups.
	Workers int `yaml:"workers,omitempty"`

	// CachePath enables the on-disk lookup cache when set.
	CachePath string `yaml:"cache_path,omitempty"`

	Limits Limits `yaml:"limits"`
}

const (
	configDir  = "refcheck"
	configFile = "config.yml"
)

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Workers: 4,
		Limits:  DefaultLimits(),
	}
}

// Path returns the global config file path, respecting XDG_CONFIG_HOME.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, configDir, configFile)
}

var cache *Config

// Load reads the global config file, falling back to defaults when it does
// not exist. The loaded config is cached for the process lifetime.
func Load() (*Config, error) {
	if cache != nil {
		return cache, nil
	}

	cfg := Default()
	path := Path()
	if path == "" {
		cache = cfg
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cache = cfg
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.Limits == (Limits{}) {
		cfg.Limits = DefaultLimits()
	}

	cache = cfg
	return cfg, nil
}

// ResetCache clears the cached config (for tests).
func ResetCache() {
	cache = nil
}
