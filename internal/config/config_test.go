package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Contains(t, cfg.Storage.DataDir, ".pt")
	assert.Equal(t, 10, cfg.Storage.BackupKeep)
	assert.Equal(t, "2006-01-02 15:04:05", cfg.Time.DisplayFormat)
	assert.Equal(t, 1, cfg.Validation.NameMinLength)
	assert.Equal(t, 255, cfg.Validation.NameMaxLength)
	assert.False(t, cfg.Application.Verbose)
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("PT_DATA_DIR", "/tmp/pt-test")
	t.Setenv("PT_BACKUP_KEEP", "3")
	t.Setenv("PT_TIME_DISPLAY_FORMAT", "2006-01-02")
	t.Setenv("PT_VALIDATION_NAME_MIN", "2")
	t.Setenv("PT_VALIDATION_NAME_MAX", "50")
	t.Setenv("PT_APP_VERBOSE", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/pt-test", cfg.Storage.DataDir)
	assert.Equal(t, 3, cfg.Storage.BackupKeep)
	assert.Equal(t, "2006-01-02", cfg.Time.DisplayFormat)
	assert.Equal(t, 2, cfg.Validation.NameMinLength)
	assert.Equal(t, 50, cfg.Validation.NameMaxLength)
	assert.True(t, cfg.Application.Verbose)
}

func TestConfig_LoadFromEnvironment_IgnoresBadValues(t *testing.T) {
	t.Setenv("PT_BACKUP_KEEP", "lots")
	t.Setenv("PT_APP_VERBOSE", "maybe")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, 10, cfg.Storage.BackupKeep)
	assert.False(t, cfg.Application.Verbose)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "empty data dir",
			mutate:  func(cfg *Config) { cfg.Storage.DataDir = "" },
			wantErr: "data directory cannot be empty",
		},
		{
			name:    "negative backup keep",
			mutate:  func(cfg *Config) { cfg.Storage.BackupKeep = -1 },
			wantErr: "backup keep count cannot be negative",
		},
		{
			name:    "empty display format",
			mutate:  func(cfg *Config) { cfg.Time.DisplayFormat = "" },
			wantErr: "display format cannot be empty",
		},
		{
			name:    "zero minimum name length",
			mutate:  func(cfg *Config) { cfg.Validation.NameMinLength = 0 },
			wantErr: "name minimum length must be at least 1",
		},
		{
			name: "max below min",
			mutate: func(cfg *Config) {
				cfg.Validation.NameMinLength = 10
				cfg.Validation.NameMaxLength = 5
			},
			wantErr: "name maximum length must be greater than minimum length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoader_Load(t *testing.T) {
	t.Setenv("PT_DATA_DIR", "/tmp/pt-loader-test")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/pt-loader-test", cfg.Storage.DataDir)
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	dataDir := "/tmp/pt-override"
	backupKeep := 5
	verbose := true

	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		DataDir:    &dataDir,
		BackupKeep: &backupKeep,
		Verbose:    &verbose,
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/pt-override", cfg.Storage.DataDir)
	assert.Equal(t, 5, cfg.Storage.BackupKeep)
	assert.True(t, cfg.Application.Verbose)
}
