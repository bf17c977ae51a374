package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "streamable-http"
)

type Config struct {
	Fakturoid  FakturoidConfig `mapstructure:"fakturoid"`
	Server     ServerConfig    `mapstructure:"server"`
	Journal    JournalConfig   `mapstructure:"journal"`
	Cache      CacheConfig     `mapstructure:"cache"`
	Log        LogConfig       `mapstructure:"log"`
	ConfigPath string          `mapstructure:"-"`
}

type FakturoidConfig struct {
	Slug              string        `mapstructure:"slug"`
	Email             string        `mapstructure:"email"`
	ClientID          string        `mapstructure:"client_id"`
	ClientSecret      string        `mapstructure:"client_secret"`
	UserAgent         string        `mapstructure:"user_agent"`
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
}

type ServerConfig struct {
	Transport string `mapstructure:"transport"`
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
}

type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	// RetentionDays prunes older entries at startup. Zero keeps everything.
	RetentionDays int `mapstructure:"retention_days"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	return &Config{
		Fakturoid: FakturoidConfig{
			UserAgent:         "FakturoidMCP (mcp@example.com)",
			BaseURL:           "https://app.fakturoid.cz/api/v3",
			Timeout:           30 * time.Second,
			RequestsPerMinute: 400,
		},
		Server: ServerConfig{
			Transport: TransportStdio,
			Host:      "0.0.0.0",
			Port:      8000,
		},
		Journal: JournalConfig{Enabled: true},
		Cache:   CacheConfig{TTL: 5 * time.Minute},
		Log:     LogConfig{Level: "info"},
	}
}

// Validate checks settings every command needs.
func (c *Config) Validate() error {
	switch c.Server.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("invalid transport %q: expected %s or %s", c.Server.Transport, TransportStdio, TransportHTTP)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.Fakturoid.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	return nil
}

// ValidateCredentials checks the settings needed to reach the API.
func (c *Config) ValidateCredentials() error {
	var missing []string
	if c.Fakturoid.Slug == "" {
		missing = append(missing, "FAKTUROID_SLUG")
	}
	if c.Fakturoid.ClientID == "" {
		missing = append(missing, "FAKTUROID_CLIENT_ID")
	}
	if c.Fakturoid.ClientSecret == "" {
		missing = append(missing, "FAKTUROID_CLIENT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing credentials: set %s or run 'fakturoid-mcp init'", strings.Join(missing, ", "))
	}
	return nil
}
