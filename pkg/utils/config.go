package utils

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string `env:"NOVADEX_HTTP_ADDR" envDefault:":4000"`
	GRPCAddr string `env:"NOVADEX_GRPC_ADDR" envDefault:":4001"`

	UpstreamBaseURL string        `env:"NOVADEX_UPSTREAM_URL" envDefault:"https://pokeapi.co/api/v2"`
	UpstreamTimeout time.Duration `env:"NOVADEX_UPSTREAM_TIMEOUT" envDefault:"8s"`
	CatalogLimit    int           `env:"NOVADEX_CATALOG_LIMIT" envDefault:"2000"`

	CacheCapacity      int           `env:"NOVADEX_CACHE_CAPACITY" envDefault:"120"`
	CacheTTL           time.Duration `env:"NOVADEX_CACHE_TTL" envDefault:"10m"`
	CacheSweepInterval time.Duration `env:"NOVADEX_CACHE_SWEEP" envDefault:"30s"`

	// empty disables tracing
	OtelEndpoint string `env:"NOVADEX_OTEL_ENDPOINT"`

	MirrorDir  string `env:"NOVADEX_MIRROR_DIR" envDefault:"data/mirror"`
	MirrorAddr string `env:"NOVADEX_MIRROR_ADDR" envDefault:":9000"`
}

// LoadConfig reads the environment, filling in dev defaults.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.CacheCapacity <= 0:
		return fmt.Errorf("NOVADEX_CACHE_CAPACITY must be positive, got %d", c.CacheCapacity)
	case c.CacheTTL <= 0:
		return fmt.Errorf("NOVADEX_CACHE_TTL must be positive, got %s", c.CacheTTL)
	case c.UpstreamTimeout <= 0:
		return fmt.Errorf("NOVADEX_UPSTREAM_TIMEOUT must be positive, got %s", c.UpstreamTimeout)
	case c.CatalogLimit <= 0:
		return fmt.Errorf("NOVADEX_CATALOG_LIMIT must be positive, got %d", c.CatalogLimit)
	}
	return nil
}
