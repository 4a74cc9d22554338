package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARNING"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}

func TestNew(t *testing.T) {
	logger := New("debug", "json", "stdout")
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger = New("error", "console", "stderr")
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewForEnvironment(t *testing.T) {
	prod := NewForEnvironment("production")
	assert.False(t, prod.Core().Enabled(zapcore.DebugLevel))

	dev := NewForEnvironment("development")
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))
}

func TestContextRoundTrip(t *testing.T) {
	base := zap.NewNop()
	ctx := WithContext(context.Background(), base)
	assert.Same(t, base, FromContext(ctx))

	assert.NotNil(t, FromContext(context.Background()))
}

func TestWithRequestID(t *testing.T) {
	ctx, enriched := WithRequestID(context.Background(), zap.NewNop(), "req-123")

	assert.Equal(t, "req-123", GetRequestID(ctx))
	assert.Same(t, enriched, FromContext(ctx))
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestGetGinLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	// No logger set yet, fall back to no-op
	assert.NotNil(t, GetGinLogger(c))

	l := zap.NewNop()
	c.Set("logger", l)
	assert.Same(t, l, GetGinLogger(c))
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("warn"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("info"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("silent"))
}

func TestGormLoggerLogMode(t *testing.T) {
	gl := NewGormLogger(zap.NewNop(), gormlogger.Warn)
	clone := gl.LogMode(gormlogger.Info)

	assert.NotSame(t, gl, clone)
	assert.Equal(t, gormlogger.Warn, gl.logLevel)
}
