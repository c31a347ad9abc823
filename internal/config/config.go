package config

import (
	"os"
	"strings"
	"time"

	"ticket-slash/internal/domain"
)

// Storage backends. Both keep all state in process memory.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for the ticket slash application
type Config struct {
	Storage     StorageConfig
	Time        TimeConfig
	Validation  ValidationConfig
	Tasks       TasksConfig
	Server      ServerConfig
	Application ApplicationConfig
	Log         LogConfig
}

// StorageConfig selects where the task collection lives during a session
type StorageConfig struct {
	Backend string `env:"SLASH_STORAGE_BACKEND"`
	DSN     string `env:"SLASH_STORAGE_DSN"`
}

// TimeConfig holds date parsing and formatting configuration
type TimeConfig struct {
	// DateLayout renders search bounds in result descriptions.
	DateLayout string `env:"SLASH_TIME_DATE_LAYOUT"`
	// InputLayout parses dates typed by users and API clients.
	InputLayout   string `env:"SLASH_TIME_INPUT_LAYOUT"`
	DisplayFormat string `env:"SLASH_TIME_DISPLAY_FORMAT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskTextMaxLength int `env:"SLASH_VALIDATION_TEXT_MAX"`
}

// TasksConfig holds task lifecycle options
type TasksConfig struct {
	CompletionPolicy string `env:"SLASH_COMPLETION_POLICY"`
	Seed             bool   `env:"SLASH_SEED"`
}

// ServerConfig holds HTTP surface configuration
type ServerConfig struct {
	Addr            string        `env:"SLASH_SERVER_ADDR"`
	ReadTimeout     time.Duration `env:"SLASH_SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `env:"SLASH_SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"SLASH_SERVER_SHUTDOWN_TIMEOUT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout  time.Duration `env:"SLASH_APP_TIMEOUT"`
	Verbose  bool          `env:"SLASH_APP_VERBOSE"`
	Language string        `env:"SLASH_APP_LANGUAGE"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `env:"SLASH_LOG_LEVEL"`
	Format string `env:"SLASH_LOG_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendMemory,
			DSN:     ":memory:",
		},
		Time: TimeConfig{
			DateLayout:    "1/2/2006",
			InputLayout:   "2006-01-02",
			DisplayFormat: "2006-01-02 15:04",
		},
		Validation: ValidationConfig{
			TaskTextMaxLength: 255,
		},
		Tasks: TasksConfig{
			CompletionPolicy: string(domain.CompletionNextDay),
			Seed:             true,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Application: ApplicationConfig{
			Timeout:  30 * time.Second,
			Verbose:  false,
			Language: "en",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// GetCompletionPolicy returns the parsed completion policy.
// Validate guarantees the stored value parses.
func (c *Config) GetCompletionPolicy() domain.CompletionPolicy {
	p, err := domain.ParseCompletionPolicy(c.Tasks.CompletionPolicy)
	if err != nil {
		return domain.CompletionNextDay
	}
	return p
}

// LoadFromEnvironment loads configuration from SLASH_* environment variables
func (c *Config) LoadFromEnvironment() error {
	if v, ok := os.LookupEnv("SLASH_STORAGE_BACKEND"); ok {
		c.Storage.Backend = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv("SLASH_STORAGE_DSN"); ok {
		c.Storage.DSN = v
	}

	if v := os.Getenv("SLASH_TIME_DATE_LAYOUT"); v != "" {
		c.Time.DateLayout = v
	}
	if v := os.Getenv("SLASH_TIME_INPUT_LAYOUT"); v != "" {
		c.Time.InputLayout = v
	}
	if v := os.Getenv("SLASH_TIME_DISPLAY_FORMAT"); v != "" {
		c.Time.DisplayFormat = v
	}

	if v := os.Getenv("SLASH_VALIDATION_TEXT_MAX"); v != "" {
		c.Validation.TaskTextMaxLength = ParseIntWithFallback(v, c.Validation.TaskTextMaxLength)
	}

	if v := os.Getenv("SLASH_COMPLETION_POLICY"); v != "" {
		c.Tasks.CompletionPolicy = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("SLASH_SEED"); v != "" {
		c.Tasks.Seed = ParseBoolWithFallback(v, c.Tasks.Seed)
	}

	if v := os.Getenv("SLASH_SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("SLASH_SERVER_READ_TIMEOUT"); v != "" {
		c.Server.ReadTimeout = ParseDurationWithFallback(v, c.Server.ReadTimeout)
	}
	if v := os.Getenv("SLASH_SERVER_WRITE_TIMEOUT"); v != "" {
		c.Server.WriteTimeout = ParseDurationWithFallback(v, c.Server.WriteTimeout)
	}
	if v := os.Getenv("SLASH_SERVER_SHUTDOWN_TIMEOUT"); v != "" {
		c.Server.ShutdownTimeout = ParseDurationWithFallback(v, c.Server.ShutdownTimeout)
	}

	if v := os.Getenv("SLASH_APP_TIMEOUT"); v != "" {
		c.Application.Timeout = ParseDurationWithFallback(v, c.Application.Timeout)
	}
	if v := os.Getenv("SLASH_APP_VERBOSE"); v != "" {
		c.Application.Verbose = ParseBoolWithFallback(v, c.Application.Verbose)
	}
	if v := os.Getenv("SLASH_APP_LANGUAGE"); v != "" {
		c.Application.Language = v
	}

	if v := os.Getenv("SLASH_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("SLASH_LOG_FORMAT"); v != "" {
		c.Log.Format = strings.ToLower(v)
	}

	return nil
}

// Validate validates the configuration and returns the first problem found
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory:
	case BackendSQLite:
		if !IsInMemoryDSN(c.Storage.DSN) {
			return &ConfigError{Field: "storage.dsn", Message: "sqlite storage must use an in-memory DSN"}
		}
	default:
		return &ConfigError{Field: "storage.backend", Message: "backend must be memory or sqlite"}
	}

	if c.Time.DateLayout == "" {
		return &ConfigError{Field: "time.date_layout", Message: "date layout cannot be empty"}
	}
	if c.Time.InputLayout == "" {
		return &ConfigError{Field: "time.input_layout", Message: "input layout cannot be empty"}
	}
	if c.Time.DisplayFormat == "" {
		return &ConfigError{Field: "time.display_format", Message: "display format cannot be empty"}
	}

	if c.Validation.TaskTextMaxLength < 1 {
		return &ConfigError{Field: "validation.task_text_max_length", Message: "task text maximum length must be at least 1"}
	}

	if _, err := domain.ParseCompletionPolicy(c.Tasks.CompletionPolicy); err != nil {
		return &ConfigError{Field: "tasks.completion_policy", Message: "completion policy must be next-day or now"}
	}

	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "server address cannot be empty"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "log.level", Message: "log level must be debug, info, warn or error"}
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return &ConfigError{Field: "log.format", Message: "log format must be console or json"}
	}

	return nil
}

// IsInMemoryDSN reports whether a sqlite DSN keeps the database in memory.
func IsInMemoryDSN(dsn string) bool {
	if dsn == ":memory:" {
		return true
	}
	return strings.Contains(dsn, "mode=memory")
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
