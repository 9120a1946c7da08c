package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AppConfig holds the application configuration.
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	Cors      CorsConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	Mode string `yaml:"mode"`
}

type AuthConfig struct {
	// LoginDelay is the simulated authentication latency, e.g. "1s".
	LoginDelay string `yaml:"login_delay"`
}

type CorsConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// GetLoginDelay parses the configured latency, falling back to one second.
func (a *AuthConfig) GetLoginDelay() time.Duration {
	d, err := time.ParseDuration(a.LoginDelay)
	if err != nil {
		return time.Second
	}
	return d
}

// Default returns the configuration used when no file is supplied.
func Default() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{Addr: ":8930", Mode: "release"},
		Auth:   AuthConfig{LoginDelay: "1s"},
		Cors: CorsConfig{
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		RateLimit: RateLimitConfig{RequestsPerSecond: 15, Burst: 30},
	}
}

// Load reads configuration from a YAML file, layering it over the defaults.
// A missing path returns the defaults unchanged.
func Load(path string) (*AppConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}
