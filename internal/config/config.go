package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all configuration options for the project tracker application
type Config struct {
	Storage     StorageConfig
	Time        TimeConfig
	Validation  ValidationConfig
	Application ApplicationConfig
}

// StorageConfig holds data-directory and backup configuration
type StorageConfig struct {
	DataDir    string `env:"PT_DATA_DIR"`
	BackupKeep int    `env:"PT_BACKUP_KEEP"`
}

// TimeConfig holds time formatting configuration
type TimeConfig struct {
	DisplayFormat string `env:"PT_TIME_DISPLAY_FORMAT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	NameMinLength int `env:"PT_VALIDATION_NAME_MIN"`
	NameMaxLength int `env:"PT_VALIDATION_NAME_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool `env:"PT_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDataDir := filepath.Join(homeDir, ".pt")

	return &Config{
		Storage: StorageConfig{
			DataDir:    defaultDataDir,
			BackupKeep: 10,
		},
		Time: TimeConfig{
			DisplayFormat: "2006-01-02 15:04:05",
		},
		Validation: ValidationConfig{
			NameMinLength: 1,
			NameMaxLength: 255,
		},
		Application: ApplicationConfig{
			Verbose: false,
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("PT_DATA_DIR"); dir != "" {
		c.Storage.DataDir = dir
	}
	if keep := os.Getenv("PT_BACKUP_KEEP"); keep != "" {
		if n, err := strconv.Atoi(keep); err == nil {
			c.Storage.BackupKeep = n
		}
	}

	// Time configuration
	if format := os.Getenv("PT_TIME_DISPLAY_FORMAT"); format != "" {
		c.Time.DisplayFormat = format
	}

	// Validation configuration
	if minLen := os.Getenv("PT_VALIDATION_NAME_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.NameMinLength = n
		}
	}
	if maxLen := os.Getenv("PT_VALIDATION_NAME_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.NameMaxLength = n
		}
	}

	// Application configuration
	if verbose := os.Getenv("PT_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.DataDir == "" {
		return &ConfigError{Field: "storage.data_dir", Message: "data directory cannot be empty"}
	}
	if c.Storage.BackupKeep < 0 {
		return &ConfigError{Field: "storage.backup_keep", Message: "backup keep count cannot be negative"}
	}

	if c.Time.DisplayFormat == "" {
		return &ConfigError{Field: "time.display_format", Message: "display format cannot be empty"}
	}

	if c.Validation.NameMinLength < 1 {
		return &ConfigError{Field: "validation.name_min_length", Message: "name minimum length must be at least 1"}
	}
	if c.Validation.NameMaxLength < c.Validation.NameMinLength {
		return &ConfigError{Field: "validation.name_max_length", Message: "name maximum length must be greater than minimum length"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
