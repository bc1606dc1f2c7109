package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		encoding string
		enabled  zapcore.Level
		disabled zapcore.Level
	}{
		{name: "default level", level: "", encoding: "", enabled: zapcore.InfoLevel, disabled: zapcore.DebugLevel},
		{name: "debug console", level: "debug", encoding: "console", enabled: zapcore.DebugLevel, disabled: zapcore.DebugLevel - 1},
		{name: "upper case warn", level: "WARN", encoding: "json", enabled: zapcore.WarnLevel, disabled: zapcore.InfoLevel},
		{name: "invalid level falls back to info", level: "loud", encoding: "xml", enabled: zapcore.InfoLevel, disabled: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.level, tt.encoding)
			require.NoError(t, err)
			require.NotNil(t, logger)

			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.disabled))
		})
	}
}

func TestNewLoggerFromConfig(t *testing.T) {
	logger, err := NewLoggerFromConfig(NewConfig(map[string]string{"LOG_LEVEL": "error"}))
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}
