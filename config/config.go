package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override the config file
const EnvPrefix = "SAFETYDASH"

// Load loads the configuration from file and environment. A missing config file is only
// an error when configPath names one explicitly.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".safetydash"))
		}

		v.AddConfigPath("/etc/safetydash/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://localhost:5276")
	v.SetDefault("api.timeout", "30s")

	v.SetDefault("dashboard.recent_recalls_count", 10)
	v.SetDefault("dashboard.top_manufacturers_count", 10)
	v.SetDefault("dashboard.most_recalled_vehicles_count", 5)

	v.SetDefault("search.page_size", 20)
	v.SetDefault("search.strict", false)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "safetydash")
	v.SetDefault("telemetry.endpoint", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// Validate checks if the configuration is valid. Callers that override values after Load
// should validate again.
func Validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute http(s) URL: %s", cfg.API.BaseURL)
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}

	if cfg.Dashboard.RecentRecallsCount < 0 ||
		cfg.Dashboard.TopManufacturersCount < 0 ||
		cfg.Dashboard.MostRecalledVehiclesCount < 0 {
		return fmt.Errorf("dashboard counts must not be negative")
	}

	if cfg.Search.PageSize <= 0 {
		return fmt.Errorf("search.page_size must be positive")
	}

	if cfg.Telemetry.Enabled {
		if cfg.Telemetry.ServiceName == "" {
			return fmt.Errorf("telemetry.service_name is required when telemetry is enabled")
		}
		if cfg.Telemetry.Endpoint != "" {
			u, err := url.Parse(cfg.Telemetry.Endpoint)
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				return fmt.Errorf("telemetry.endpoint must be an absolute http(s) URL: %s", cfg.Telemetry.Endpoint)
			}
		}
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
