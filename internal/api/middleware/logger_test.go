package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/paarad/27-backroom-generator/pkg/backroom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestZapLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		level  zapcore.Level
	}{
		{name: "ok", status: http.StatusOK, level: zapcore.InfoLevel},
		{name: "client error", status: http.StatusBadRequest, level: zapcore.WarnLevel},
		{name: "server error", status: http.StatusInternalServerError, level: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)

			engine := gin.New()
			engine.Use(ZapLogger(zap.New(core)))
			engine.GET("/api/health", func(c *gin.Context) { c.Status(tt.status) })

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health?x=1", nil))

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, "Request handled", entry.Message)

			fields := entry.ContextMap()
			assert.EqualValues(t, tt.status, fields["status"])
			assert.Equal(t, "/api/health", fields["path"])
			assert.Equal(t, "x=1", fields["query"])
		})
	}
}

func TestZapLogger_HandlerError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	engine := gin.New()
	engine.Use(ZapLogger(zap.New(core)))
	engine.POST("/api/generate", func(c *gin.Context) {
		_ = c.Error(&backroom.Error{
			Kind:    backroom.KindGenerationMalformed,
			Op:      "generate level",
			Err:     errors.New("unexpected end of JSON input"),
			Raw:     "```json\n{\"name\":",
			Cleaned: "{\"name\":",
		})
		c.Status(http.StatusInternalServerError)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/generate", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "generation_malformed", fields["kind"])
	assert.Equal(t, "```json\n{\"name\":", fields["raw"])
	assert.Equal(t, "{\"name\":", fields["cleaned"])
}

func TestErrorFields_PlainError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	zap.New(core).Error("failed", ErrorFields(errors.New("boom"))...)

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "boom", fields["error"])
	assert.Equal(t, "unknown", fields["kind"])
	assert.NotContains(t, fields, "raw")
}
