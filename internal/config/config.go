// Package config provides centralized configuration management for suitctl.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Catalog CatalogConfig
	Repair  RepairConfig
	Logging LoggingConfig
}

// CatalogConfig holds the backing file settings.
type CatalogConfig struct {
	// Path is the catalog CSV file (default: suits.csv)
	Path string `env:"CATALOG_PATH" default:"suits.csv"`

	// SampleSize is the number of suits generated when the file is missing (default: 50)
	SampleSize int `env:"SAMPLE_SIZE" default:"50"`

	// SamplePerCategory is the number of suits seeded per category (default: 10)
	SamplePerCategory int `env:"SAMPLE_PER_CATEGORY" default:"10"`
}

// RepairConfig holds repair settings.
type RepairConfig struct {
	// Increment is the durability added by one repair (default: 25)
	Increment int `env:"REPAIR_INCREMENT" default:"25"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	Level string `env:"LOG_LEVEL" default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
