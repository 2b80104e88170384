// Package config loads transgate settings from defaults, an optional config
// file, TRANSGATE_* environment variables and command-line flags.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/valpere/transgate/internal/api"
	"github.com/valpere/transgate/internal/submit"
)

const EnvPrefix = "TRANSGATE"

type Config struct {
	BaseURL   string        `mapstructure:"base_url" json:"base_url"`
	Endpoint  string        `mapstructure:"endpoint" json:"endpoint"`
	Timeout   time.Duration `mapstructure:"timeout" json:"timeout"`
	IdleLabel string        `mapstructure:"idle_label" json:"idle_label"`
	BusyLabel string        `mapstructure:"busy_label" json:"busy_label"`

	Listen string `mapstructure:"listen" json:"listen"`
	Prefix string `mapstructure:"prefix" json:"prefix"`

	LogLevel  string `mapstructure:"log_level" json:"log_level"`
	LogFormat string `mapstructure:"log_format" json:"log_format"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("base_url", "http://localhost:8000")
	v.SetDefault("endpoint", submit.DefaultEndpoint)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("idle_label", submit.DefaultIdleLabel)
	v.SetDefault("busy_label", submit.DefaultBusyLabel)
	v.SetDefault("listen", ":8000")
	v.SetDefault("prefix", api.DefaultPrefix)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
}

// Load reads the configuration into a Config. file may be empty.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("timeout must not be negative")
	}

	return &cfg, nil
}

func (c *Config) Submit() submit.Config {
	return submit.Config{
		BaseURL:   c.BaseURL,
		Endpoint:  c.Endpoint,
		Timeout:   c.Timeout,
		IdleLabel: c.IdleLabel,
		BusyLabel: c.BusyLabel,
	}
}

// NewLogger builds the process logger writing to w.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
