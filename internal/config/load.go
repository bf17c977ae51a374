package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "FAKTUROID"

// envKeys maps the flat FAKTUROID_* variables onto nested config keys.
var envKeys = map[string]string{
	"fakturoid.slug":                "SLUG",
	"fakturoid.email":               "EMAIL",
	"fakturoid.client_id":           "CLIENT_ID",
	"fakturoid.client_secret":       "CLIENT_SECRET",
	"fakturoid.user_agent":          "USER_AGENT",
	"fakturoid.base_url":            "BASE_URL",
	"fakturoid.timeout":             "TIMEOUT",
	"fakturoid.requests_per_minute": "REQUESTS_PER_MINUTE",
	"server.transport":              "TRANSPORT",
	"server.host":                   "HOST",
	"server.port":                   "PORT",
	"journal.enabled":               "JOURNAL_ENABLED",
	"journal.path":                  "JOURNAL_PATH",
	"journal.retention_days":        "JOURNAL_RETENTION_DAYS",
	"cache.ttl":                     "CACHE_TTL",
	"log.level":                     "LOG_LEVEL",
}

// Load reads configuration into v and decodes it. Sources, highest priority
// first: environment, a .env file in the working directory, the config file,
// defaults. An explicit file must exist; the default location may not.
func Load(v *viper.Viper, file string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		appDir, err := AppDataDir()
		if err != nil {
			return nil, fmt.Errorf("error getting app dir: %w", err)
		}
		v.AddConfigPath(appDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	setDefaults(v, NewDefault())
	for key, env := range envKeys {
		if err := v.BindEnv(key, EnvPrefix+"_"+env); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if file != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if cfg.Journal.Path == "" {
		appDir, err := AppDataDir()
		if err != nil {
			return nil, err
		}
		cfg.Journal.Path = filepath.Join(appDir, "journal.db")
	}
	expanded, err := ExpandPath(cfg.Journal.Path)
	if err != nil {
		return nil, err
	}
	cfg.Journal.Path = expanded

	return cfg, cfg.Validate()
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("fakturoid.user_agent", d.Fakturoid.UserAgent)
	v.SetDefault("fakturoid.base_url", d.Fakturoid.BaseURL)
	v.SetDefault("fakturoid.timeout", d.Fakturoid.Timeout)
	v.SetDefault("fakturoid.requests_per_minute", d.Fakturoid.RequestsPerMinute)
	v.SetDefault("server.transport", d.Server.Transport)
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("journal.enabled", d.Journal.Enabled)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("log.level", d.Log.Level)
}

// AppDataDir is where the config file and the journal live by default.
func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".fakturoid-mcp"), nil
	}

	return filepath.Join(configDir, "fakturoid-mcp"), nil
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

// Save writes the credentials to the config file v was loaded from, or to
// the default location when there is none.
func Save(v *viper.Viper, f FakturoidConfig) (string, error) {
	v.Set("fakturoid.slug", f.Slug)
	v.Set("fakturoid.email", f.Email)
	v.Set("fakturoid.client_id", f.ClientID)
	v.Set("fakturoid.client_secret", f.ClientSecret)
	if f.UserAgent != "" {
		v.Set("fakturoid.user_agent", f.UserAgent)
	}

	path := v.ConfigFileUsed()
	if path == "" {
		appDir, err := AppDataDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(appDir, "config.yaml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("failed to save config to file: %w", err)
	}
	return path, nil
}
