package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/JonMunkholm/suitctl/internal/core"
)

// Minimums for the generated sample catalog.
const (
	minSampleSize        = 50
	minSamplePerCategory = 10
	maxSampleSize        = 100000
)

// Load reads configuration from environment variables.
// It applies defaults for unset values and validates the result.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom is Load with a custom variable lookup.
func LoadFrom(getenv func(string) string) (*Config, error) {
	cfg := &Config{}

	if err := loadStruct(reflect.ValueOf(cfg).Elem(), getenv); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// loadStruct recursively populates struct fields from environment variables.
func loadStruct(v reflect.Value, getenv func(string) string) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)

		if !fieldVal.CanSet() {
			continue
		}

		if field.Type.Kind() == reflect.Struct {
			if err := loadStruct(fieldVal, getenv); err != nil {
				return err
			}
			continue
		}

		envName := field.Tag.Get("env")
		if envName == "" {
			continue
		}

		value := strings.TrimSpace(getenv(envName))
		if value == "" {
			if field.Tag.Get("required") == "true" {
				return fmt.Errorf("required environment variable %s is not set", envName)
			}
			value = field.Tag.Get("default")
		}
		if value == "" {
			continue
		}

		if err := setField(fieldVal, value); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", envName, value, err)
		}
	}

	return nil
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int64:
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer: %w", err)
		}
		field.SetInt(i)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Catalog.Path) == "" {
		errs = append(errs, "CATALOG_PATH must not be empty")
	}
	if c.Catalog.SampleSize < minSampleSize || c.Catalog.SampleSize > maxSampleSize {
		errs = append(errs, fmt.Sprintf("SAMPLE_SIZE (%d) must be %d-%d",
			c.Catalog.SampleSize, minSampleSize, maxSampleSize))
	}
	if c.Catalog.SamplePerCategory < minSamplePerCategory {
		errs = append(errs, fmt.Sprintf("SAMPLE_PER_CATEGORY (%d) must be at least %d",
			c.Catalog.SamplePerCategory, minSamplePerCategory))
	}
	if seeded := c.Catalog.SamplePerCategory * len(core.Categories()); seeded > c.Catalog.SampleSize {
		errs = append(errs, fmt.Sprintf("SAMPLE_SIZE (%d) must be >= %d (SAMPLE_PER_CATEGORY for every category)",
			c.Catalog.SampleSize, seeded))
	}

	if c.Repair.Increment < 0 || c.Repair.Increment > core.MaxDurability {
		errs = append(errs, fmt.Sprintf("REPAIR_INCREMENT (%d) must be 0-%d", c.Repair.Increment, core.MaxDurability))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a compact representation of the config for logging.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Catalog: {Path: %q, SampleSize: %d, SamplePerCategory: %d}, Repair: {Increment: %d}, Logging: {Level: %q, Format: %q}}",
		c.Catalog.Path, c.Catalog.SampleSize, c.Catalog.SamplePerCategory,
		c.Repair.Increment, c.Logging.Level, c.Logging.Format)
}
