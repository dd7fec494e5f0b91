package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ajiwo/crptgate/journal"
	jmemory "github.com/ajiwo/crptgate/journal/memory"
	jpostgres "github.com/ajiwo/crptgate/journal/postgres"
	jredis "github.com/ajiwo/crptgate/journal/redis"
)

// FileConfig is the YAML configuration for the submitter CLI.
//
// Durations are plain strings ("1s", "500ms") parsed with
// time.ParseDuration.
type FileConfig struct {
	BaseURL string `yaml:"base_url"`
	Limit   int    `yaml:"limit"`
	Window  string `yaml:"window"`
	Tick    string `yaml:"tick,omitempty"`

	Breaker *BreakerFileConfig `yaml:"breaker,omitempty"`
	Journal *JournalFileConfig `yaml:"journal,omitempty"`
}

type BreakerFileConfig struct {
	MaxFailures uint32 `yaml:"max_failures"`
	Timeout     string `yaml:"timeout,omitempty"`
	Interval    string `yaml:"interval,omitempty"`
}

type JournalFileConfig struct {
	Backend string `yaml:"backend"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password,omitempty"`
		DB       int    `yaml:"db,omitempty"`
	} `yaml:"redis,omitempty"`

	Postgres struct {
		ConnString string `yaml:"conn_string"`
	} `yaml:"postgres,omitempty"`
}

// LoadConfig reads and parses the YAML config at path.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return &cfg, nil
}

// parseDuration parses an optional duration string; empty yields zero.
func parseDuration(field, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration %q: %w", field, value, err)
	}
	return d, nil
}

// journalBackend builds the configured journal sink, defaulting to the
// in-memory one.
func (c *FileConfig) journalBackend() (journal.Backend, error) {
	if c.Journal == nil {
		return nil, nil
	}

	switch c.Journal.Backend {
	case "", "memory":
		return journal.Create("memory", jmemory.Config{})
	case "redis":
		return journal.Create("redis", jredis.Config{
			Addr:     c.Journal.Redis.Addr,
			Password: c.Journal.Redis.Password,
			DB:       c.Journal.Redis.DB,
		})
	case "postgres":
		return journal.Create("postgres", jpostgres.Config{
			ConnString: c.Journal.Postgres.ConnString,
		})
	default:
		return nil, fmt.Errorf("%w: %q", journal.ErrBackendNotFound, c.Journal.Backend)
	}
}
