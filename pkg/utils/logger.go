package utils

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger from a level name (debug, info, warn, error)
// and an encoding (json or console)
func NewLogger(level, encoding string) (*zap.Logger, error) {
	atomic := zap.NewAtomicLevel()
	if level == "" {
		level = "info"
	}
	if err := atomic.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		fmt.Fprintf(os.Stderr, "[UTILS]: Invalid log level %q, using info\n", level)
		atomic.SetLevel(zap.InfoLevel)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	encoding = strings.ToLower(encoding)
	if encoding != "console" {
		encoding = "json"
	}

	zapConfig := zap.Config{
		Level:             atomic,
		Development:       false,
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}

// NewLoggerFromConfig builds a logger using LOG_LEVEL and LOG_ENCODING
func NewLoggerFromConfig(cfg *Config) (*zap.Logger, error) {
	return NewLogger(cfg.GetWithDefault("LOG_LEVEL", "info"), cfg.GetWithDefault("LOG_ENCODING", "json"))
}
