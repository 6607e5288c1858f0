// Package config loads service configuration from an optional YAML file
// with METEORGO_* environment overrides. Invalid override values log a
// warning and keep the default rather than failing startup.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const configPathEnv = "METEORGO_CONFIG"

// Config holds all service settings.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Catalog CatalogConfig `yaml:"catalog"`
	Engine  EngineConfig  `yaml:"engine"`
	Auth    AuthConfig    `yaml:"auth"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr       string `yaml:"addr"`
	TrustProxy bool   `yaml:"trustProxy"`
}

// CatalogConfig describes the NASA SBDB proxy.
type CatalogConfig struct {
	BaseURL        string        `yaml:"baseUrl"`
	CacheTTL       time.Duration `yaml:"cacheTtl"`
	RateLimitRPS   float64       `yaml:"rateLimitRps"`
	RateLimitBurst int           `yaml:"rateLimitBurst"`
}

// EngineConfig holds engine-adjacent defaults applied by the API layer.
type EngineConfig struct {
	// DefaultPopulationDensity is used when a request does not supply
	// one, in people per km².
	DefaultPopulationDensity float64 `yaml:"defaultPopulationDensity"`
	// ScenarioWorkers bounds the parallelism of batch scenario runs.
	ScenarioWorkers int `yaml:"scenarioWorkers"`
}

// AuthConfig enables bearer-token auth on analysis routes.
type AuthConfig struct {
	Enabled bool   `yaml:"enabled"`
	Token   string `yaml:"token"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Catalog: CatalogConfig{
			CacheTTL:       5 * time.Minute,
			RateLimitRPS:   5,
			RateLimitBurst: 10,
		},
		Engine: EngineConfig{
			DefaultPopulationDensity: 100,
			ScenarioWorkers:          4,
		},
	}
}

// Load builds the configuration from defaults, then the YAML file named
// by METEORGO_CONFIG (if any), then environment overrides.
func Load(logger *slog.Logger) (Config, error) {
	cfg := Default()

	if path := os.Getenv(configPathEnv); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		logger.Info("config file loaded", "path", path)
	}

	applyEnvOverrides(&cfg, logger)

	if cfg.Auth.Enabled && cfg.Auth.Token == "" {
		return Config{}, fmt.Errorf("auth enabled but no token configured")
	}

	logger.Info("config",
		"addr", cfg.Server.Addr,
		"trust_proxy", cfg.Server.TrustProxy,
		"catalog_cache_ttl_seconds", cfg.Catalog.CacheTTL.Seconds(),
		"catalog_rate_limit_rps", cfg.Catalog.RateLimitRPS,
		"default_population_density", cfg.Engine.DefaultPopulationDensity,
		"scenario_workers", cfg.Engine.ScenarioWorkers,
		"auth_enabled", cfg.Auth.Enabled,
	)

	return cfg, nil
}

func applyEnvOverrides(cfg *Config, logger *slog.Logger) {
	if v := os.Getenv("METEORGO_HTTP_ADDR"); v != "" {
		cfg.Server.Addr = v
	}

	if v := os.Getenv("METEORGO_TRUST_PROXY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("invalid METEORGO_TRUST_PROXY value, using default", "value", v)
		} else {
			cfg.Server.TrustProxy = b
		}
	}

	if v := os.Getenv("METEORGO_SBDB_URL"); v != "" {
		cfg.Catalog.BaseURL = v
	}

	if v := os.Getenv("METEORGO_SBDB_CACHE_TTL"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds < 0 {
			logger.Warn("invalid METEORGO_SBDB_CACHE_TTL value, using default", "value", v)
		} else {
			cfg.Catalog.CacheTTL = time.Duration(seconds) * time.Second
		}
	}

	if v := os.Getenv("METEORGO_RATE_LIMIT_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			logger.Warn("invalid METEORGO_RATE_LIMIT_RPS value, using default", "value", v)
		} else {
			cfg.Catalog.RateLimitRPS = f
		}
	}

	if v := os.Getenv("METEORGO_RATE_LIMIT_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid METEORGO_RATE_LIMIT_BURST value, using default", "value", v)
		} else {
			cfg.Catalog.RateLimitBurst = n
		}
	}

	if v := os.Getenv("METEORGO_POPULATION_DENSITY"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			logger.Warn("invalid METEORGO_POPULATION_DENSITY value, using default", "value", v)
		} else {
			cfg.Engine.DefaultPopulationDensity = f
		}
	}

	if v := os.Getenv("METEORGO_SCENARIO_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid METEORGO_SCENARIO_WORKERS value, using default", "value", v)
		} else {
			cfg.Engine.ScenarioWorkers = n
		}
	}

	if v := os.Getenv("METEORGO_AUTH_TOKEN"); v != "" {
		cfg.Auth.Enabled = true
		cfg.Auth.Token = v
	}
}
