package config

import (
	"errors"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config  *Config
	envFile string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config:  NewConfig(),
		envFile: DefaultEnvFile,
	}
}

// WithEnvFile points the loader at a different dotenv file. An empty path disables it.
func (l *Loader) WithEnvFile(path string) *Loader {
	l.envFile = path
	return l
}

// Load loads configuration using the cascading strategy:
// defaults, then the dotenv file, then SLASH_* environment variables.
// Variables already present in the environment win over the dotenv file.
func (l *Loader) Load() (*Config, error) {
	if l.envFile != "" {
		if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigError{Field: "env_file", Message: err.Error()}
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides. Nil fields are left alone.
type ConfigOverrides struct {
	StorageBackend *string
	StorageDSN     *string

	DateLayout  *string
	InputLayout *string

	TaskTextMaxLength *int

	CompletionPolicy *string
	Seed             *bool

	ServerAddr *string

	Timeout  *time.Duration
	Verbose  *bool
	Language *string

	LogLevel  *string
	LogFormat *string
}

func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.StorageBackend != nil {
		config.Storage.Backend = *overrides.StorageBackend
	}
	if overrides.StorageDSN != nil {
		config.Storage.DSN = *overrides.StorageDSN
	}

	if overrides.DateLayout != nil {
		config.Time.DateLayout = *overrides.DateLayout
	}
	if overrides.InputLayout != nil {
		config.Time.InputLayout = *overrides.InputLayout
	}

	if overrides.TaskTextMaxLength != nil {
		config.Validation.TaskTextMaxLength = *overrides.TaskTextMaxLength
	}

	if overrides.CompletionPolicy != nil {
		config.Tasks.CompletionPolicy = *overrides.CompletionPolicy
	}
	if overrides.Seed != nil {
		config.Tasks.Seed = *overrides.Seed
	}

	if overrides.ServerAddr != nil {
		config.Server.Addr = *overrides.ServerAddr
	}

	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
		if *overrides.Verbose {
			config.Log.Level = "debug"
		}
	}
	if overrides.Language != nil {
		config.Application.Language = *overrides.Language
	}

	if overrides.LogLevel != nil {
		config.Log.Level = *overrides.LogLevel
	}
	if overrides.LogFormat != nil {
		config.Log.Format = *overrides.LogFormat
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}
