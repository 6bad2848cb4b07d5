package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func newBufferLogger(level zapcore.Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(zapcore.AddSync(&buf), level), &buf
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log output: %s", buf.String())
	return entry
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger()
	require.NotNil(t, logger)
	assert.NotNil(t, logger.Zap())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected zapcore.Level
	}{
		{"debug level", "DEBUG", zapcore.DebugLevel},
		{"info level", "INFO", zapcore.InfoLevel},
		{"warn level", "WARN", zapcore.WarnLevel},
		{"warning level", "WARNING", zapcore.WarnLevel},
		{"error level", "ERROR", zapcore.ErrorLevel},
		{"lowercase debug", "debug", zapcore.DebugLevel},
		{"mixed case", "Info", zapcore.InfoLevel},
		{"invalid level", "INVALID", zapcore.InfoLevel},
		{"empty value", "", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.value))
		})
	}
}

func TestNewLoggerReadsEnvLevel(t *testing.T) {
	original := os.Getenv(LevelEnvVar)
	defer os.Setenv(LevelEnvVar, original)

	os.Setenv(LevelEnvVar, "ERROR")
	logger := NewLogger()

	assert.False(t, logger.Zap().Core().Enabled(zapcore.WarnLevel))
	assert.True(t, logger.Zap().Core().Enabled(zapcore.ErrorLevel))
}

func TestCorrelationID(t *testing.T) {
	t.Run("generate correlation ID", func(t *testing.T) {
		id1 := GenerateCorrelationID()
		id2 := GenerateCorrelationID()

		assert.NotEmpty(t, id1)
		assert.NotEqual(t, id1, id2)
		assert.Len(t, id1, 36)
	})

	t.Run("context with correlation ID", func(t *testing.T) {
		ctx := WithCorrelationID(context.Background(), "test-correlation-id")
		assert.Equal(t, "test-correlation-id", GetCorrelationID(ctx))
	})

	t.Run("context without correlation ID", func(t *testing.T) {
		assert.Empty(t, GetCorrelationID(context.Background()))
	})

	t.Run("auto-generate correlation ID", func(t *testing.T) {
		ctx := WithCorrelationID(context.Background(), "")
		assert.Len(t, GetCorrelationID(ctx), 36)
	})
}

func TestSanitizeValue(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		expected string
	}{
		{"password field", "password", "secret123", "[REDACTED]"},
		{"token field", "auth_token", "bearer-token", "[REDACTED]"},
		{"secret field", "api_secret", "my-secret", "[REDACTED]"},
		{"normal field", "asset", "map.svg", "map.svg"},
		{"key code is not sensitive", "key_code", "KeyW", "KeyW"},
		{"case insensitive password", "PASSWORD", "secret123", "[REDACTED]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeValue(tt.key, tt.value))
		})
	}
}

func TestLoggerMethods(t *testing.T) {
	logger, buf := newBufferLogger(zapcore.DebugLevel)
	ctx := WithCorrelationID(context.Background(), "test-id-123")

	t.Run("info logging", func(t *testing.T) {
		buf.Reset()
		logger.Info(ctx, "test info message", "key", "value")

		entry := decodeEntry(t, buf)
		assert.Equal(t, "test info message", entry["msg"])
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "test-id-123", entry["correlation_id"])
		assert.Equal(t, "value", entry["key"])
	})

	t.Run("error logging", func(t *testing.T) {
		buf.Reset()
		logger.Error(ctx, "test error message", errors.New("test error"), "context", "test")

		entry := decodeEntry(t, buf)
		assert.Equal(t, "ERROR", entry["level"])
		assert.Equal(t, "test error", entry["error"])
		assert.Equal(t, "test", entry["context"])
	})

	t.Run("debug logging", func(t *testing.T) {
		buf.Reset()
		logger.Debug(ctx, "debug message", "debug_key", "debug_value")
		assert.Equal(t, "DEBUG", decodeEntry(t, buf)["level"])
	})

	t.Run("warn logging", func(t *testing.T) {
		buf.Reset()
		logger.Warn(ctx, "warning message", "warn_key", "warn_value")
		assert.Equal(t, "WARN", decodeEntry(t, buf)["level"])
	})

	t.Run("redacts sensitive values", func(t *testing.T) {
		buf.Reset()
		logger.Info(ctx, "login", "session_id", "abc")
		assert.Equal(t, "[REDACTED]", decodeEntry(t, buf)["session_id"])
	})

	t.Run("dangling key is kept", func(t *testing.T) {
		buf.Reset()
		logger.Info(ctx, "odd args", "lonely")
		entry := decodeEntry(t, buf)
		assert.Equal(t, "lonely", entry["!BADKEY"])
		assert.Equal(t, "test-id-123", entry["correlation_id"])
	})
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(zapcore.WarnLevel)

	logger.Info(context.Background(), "hidden")
	assert.Zero(t, buf.Len())

	logger.Warn(context.Background(), "shown")
	assert.NotZero(t, buf.Len())
}

func TestWith(t *testing.T) {
	logger, buf := newBufferLogger(zapcore.InfoLevel)

	logger.With("component", "scenery").Info(context.Background(), "built")
	assert.Equal(t, "scenery", decodeEntry(t, buf)["component"])
}

func TestWrapError(t *testing.T) {
	t.Run("wrap nil error", func(t *testing.T) {
		assert.NoError(t, WrapError(nil, "context"))
	})

	t.Run("wrap error with context", func(t *testing.T) {
		originalErr := errors.New("original error")
		wrapped := WrapError(originalErr, "additional context")

		assert.EqualError(t, wrapped, "additional context: original error")
		assert.ErrorIs(t, wrapped, originalErr)
	})

	t.Run("wrap error with formatted context", func(t *testing.T) {
		wrapped := WrapError(errors.New("original error"), "context with %s and %d", "string", 42)
		assert.EqualError(t, wrapped, "context with string and 42: original error")
	})
}

func TestLogWithoutCorrelationID(t *testing.T) {
	logger, buf := newBufferLogger(zapcore.InfoLevel)

	logger.Info(context.Background(), "test message")

	assert.NotContains(t, buf.String(), "correlation_id")
}
