// Package config loads runtime settings from the environment (prefix
// PYME_), an optional .env file and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "PYME"

type Config struct {
	// HTTP Server
	Port string

	// Calculation history
	DataBackend string // memory, sqlite
	SQLitePath  string

	// Scenario cache; empty RedisAddr keeps it in memory
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	// Rate limiting per client IP
	RateLimit  int
	RateWindow time.Duration

	// Engine
	BreakEvenHorizon int

	// Logging
	LogLevel  string
	LogFormat string
}

// Options selects the optional files Load reads.
type Options struct {
	EnvFile    string // default ".env", missing file is fine
	ConfigFile string // YAML; must exist when set
}

func defaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("data_backend", "memory")
	v.SetDefault("sqlite_path", "./data/pyme.db")
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("cache_ttl", 10*time.Minute)
	v.SetDefault("rate_limit", 30)
	v.SetDefault("rate_window", time.Minute)
	v.SetDefault("break_even_horizon", 60)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
}

// Load reads the configuration. Environment variables win over the config
// file, which wins over defaults.
func Load(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", opts.EnvFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	defaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
	}

	cfg := &Config{
		Port:             v.GetString("port"),
		DataBackend:      v.GetString("data_backend"),
		SQLitePath:       v.GetString("sqlite_path"),
		RedisAddr:        v.GetString("redis_addr"),
		RedisPassword:    v.GetString("redis_password"),
		RedisDB:          v.GetInt("redis_db"),
		CacheTTL:         v.GetDuration("cache_ttl"),
		RateLimit:        v.GetInt("rate_limit"),
		RateWindow:       v.GetDuration("rate_window"),
		BreakEvenHorizon: v.GetInt("break_even_horizon"),
		LogLevel:         v.GetString("log_level"),
		LogFormat:        v.GetString("log_format"),
	}
	return cfg, nil
}

// Validate validates the configuration and returns every problem found.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "memory":
	case "sqlite":
		if c.SQLitePath == "" {
			problems = append(problems, "sqlite path cannot be empty when using sqlite backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid data backend '%s': must be one of [memory sqlite]", c.DataBackend))
	}

	if c.CacheTTL < 0 {
		problems = append(problems, "cache ttl cannot be negative")
	}
	if c.RateLimit < 1 {
		problems = append(problems, fmt.Sprintf("invalid rate limit %d: must be at least 1", c.RateLimit))
	}
	if c.RateWindow <= 0 {
		problems = append(problems, "rate window must be positive")
	}
	if c.BreakEvenHorizon < 1 || c.BreakEvenHorizon > 600 {
		problems = append(problems, fmt.Sprintf("invalid break-even horizon %d: must be between 1 and 600", c.BreakEvenHorizon))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
