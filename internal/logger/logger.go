package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the tenant and request identifiers
// placed in the context by the middleware.
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if tenantID, ok := ctx.Value("tenant_id").(string); ok && tenantID != "" {
		logger.Entry = logger.Entry.WithField("tenant_id", tenantID)
	}
	if requestID, ok := ctx.Value("request_id").(string); ok && requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}

	return logger
}

// WithFields creates a new logger with the given fields attached
func WithFields(fields map[string]interface{}) *Logger {
	return New().WithFields(fields)
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}
