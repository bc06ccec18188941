package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Search    SearchConfig    `mapstructure:"search"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// APIConfig holds the vehicle-safety service connection details
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// DashboardConfig sizes the analytics lists
type DashboardConfig struct {
	RecentRecallsCount        int `mapstructure:"recent_recalls_count"`
	TopManufacturersCount     int `mapstructure:"top_manufacturers_count"`
	MostRecalledVehiclesCount int `mapstructure:"most_recalled_vehicles_count"`
}

// SearchConfig contains vehicle search settings
type SearchConfig struct {
	PageSize int  `mapstructure:"page_size"`
	Strict   bool `mapstructure:"strict"`
}

// TelemetryConfig controls tracing of outbound requests
type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
	// Endpoint is the OTLP/HTTP collector URL. Empty defers to OTEL_EXPORTER_OTLP_* variables.
	Endpoint string `mapstructure:"endpoint"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
