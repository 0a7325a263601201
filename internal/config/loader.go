package config

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	DataDir       *string
	BackupKeep    *int
	TimeFormat    *string
	NameMinLength *int
	NameMaxLength *int
	Verbose       *bool
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DataDir != nil {
		config.Storage.DataDir = *overrides.DataDir
	}
	if overrides.BackupKeep != nil {
		config.Storage.BackupKeep = *overrides.BackupKeep
	}
	if overrides.TimeFormat != nil {
		config.Time.DisplayFormat = *overrides.TimeFormat
	}
	if overrides.NameMinLength != nil {
		config.Validation.NameMinLength = *overrides.NameMinLength
	}
	if overrides.NameMaxLength != nil {
		config.Validation.NameMaxLength = *overrides.NameMaxLength
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
