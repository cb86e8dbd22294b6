package domain

import (
	"context"
	"time"
)

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetExtractorBackend() string
	GetExtractionTimeout() time.Duration
	GetMaxConcurrentExtractions() int
	GetAllowedOrigins() []string
}

// ExtractionService runs extractions on behalf of a host
type ExtractionService interface {
	Extract(ctx context.Context, document []byte) (*ExtractionResult, error)
}
