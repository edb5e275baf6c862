package logger

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with request and security helpers
type Logger struct {
	*zap.Logger
}

// New creates a logger for the given level. Debug mode gets a console
// encoder, everything else JSON.
func New(level string, development bool) *Logger {
	var encoder zapcore.Encoder
	if development {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.TimeKey = "time"
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderCfg.EncodeDuration = zapcore.StringDurationEncoder
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(getLogLevel(level)))

	return &Logger{
		Logger: zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)),
	}
}

// NewFromGinMode picks the encoder from the current gin mode, as the server does.
func NewFromGinMode(level string) *Logger {
	return New(level, gin.Mode() == gin.DebugMode)
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// getLogLevel converts string to zapcore.Level
func getLogLevel(levelStr string) zapcore.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// WithRequestID adds request ID to logger context
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{Logger: l.Logger.With(zap.String("request_id", requestID))}
}

// LogHTTPRequest logs an HTTP request
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.Info("HTTP Request",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("query", c.Request.URL.RawQuery),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("duration", duration),
		zap.String("ip", c.ClientIP()),
		zap.String("user_agent", c.Request.UserAgent()),
		zap.Int("size", c.Writer.Size()),
	)
}

// LogHTTPError logs an HTTP error
func (l *Logger) LogHTTPError(c *gin.Context, err error, statusCode int) {
	l.Logger.Error("HTTP Error",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", statusCode),
		zap.Error(err),
		zap.String("ip", c.ClientIP()),
	)
}

// LogAuthSuccess logs successful authentication
func (l *Logger) LogAuthSuccess(_ context.Context, userID, method string) {
	l.Logger.Info("Authentication Success",
		zap.String("user_id", userID),
		zap.String("method", method),
	)
}

// LogAuthFailure logs failed authentication. Tokens are never logged.
func (l *Logger) LogAuthFailure(_ context.Context, reason, ip string) {
	l.Logger.Warn("Authentication Failure",
		zap.String("reason", reason),
		zap.String("ip", ip),
	)
}

// RequestIDHeader carries the request id in and out
const RequestIDHeader = "X-Request-ID"

// RequestLogger logs every request after the handler chain has run. A
// missing X-Request-ID is generated and echoed back.
func RequestLogger(l *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		c.Next()
		l.WithRequestID(requestID).LogHTTPRequest(c, time.Since(start))
	}
}
