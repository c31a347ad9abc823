package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ticket-slash/internal/config"
)

// DebugEnabled returns true if debug mode is enabled via SLASH_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("SLASH_DEBUG") != ""
}

// New builds a zap logger from the log configuration. SLASH_DEBUG forces debug level.
// Logs go to stderr so they never mix with command output.
func New(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if DebugEnabled() {
		level = zapcore.DebugLevel
	}

	var zc zap.Config
	if cfg.Log.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = level != zapcore.DebugLevel

	return zc.Build()
}

// NewNop returns a logger that discards everything. Used when a caller passes nil.
func NewNop() *zap.Logger {
	return zap.NewNop()
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
