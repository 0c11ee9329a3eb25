package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "SBNET"

// Config holds the CLI configuration loaded from .env files and environment variables.
type Config struct {
	LogLevel           string        `mapstructure:"log_level"`
	LogFormat          string        `mapstructure:"log_format"`
	DialTimeoutSeconds int64         `mapstructure:"dial_timeout_seconds"`
	DialTimeout        time.Duration `mapstructure:"-"`
	ReadBufferSize     int           `mapstructure:"read_buffer_size"`
}

// Load reads configuration from environment variables, after loading envFiles
// into the environment. Missing env files are ignored.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "auto")
	v.SetDefault("dial_timeout_seconds", 0)
	v.SetDefault("read_buffer_size", 4096)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	switch cfg.LogFormat {
	case "auto", "json", "console":
	default:
		return nil, fmt.Errorf("invalid log_format %q (want auto, json or console)", cfg.LogFormat)
	}

	if cfg.DialTimeoutSeconds < 0 {
		return nil, fmt.Errorf("invalid dial_timeout_seconds (must be zero or positive)")
	}
	cfg.DialTimeout = time.Duration(cfg.DialTimeoutSeconds) * time.Second

	if cfg.ReadBufferSize <= 0 {
		return nil, fmt.Errorf("invalid read_buffer_size (must be positive)")
	}

	return &cfg, nil
}
