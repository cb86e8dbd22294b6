package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"pdf-ocr-bridge/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort               string
	MaxFileSize              int64
	LogLevel                 string
	ExtractorBackend         string
	ExtractionTimeout        time.Duration
	MaxConcurrentExtractions int
	AllowedOrigins           []string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:               getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize:              getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:                 getEnvOrDefault("LOG_LEVEL", "info"),
		ExtractorBackend:         strings.ToLower(getEnvOrDefault("EXTRACTOR_BACKEND", domain.BackendLedongthuc)),
		ExtractionTimeout:        getEnvDurationOrDefault("EXTRACTION_TIMEOUT", 60*time.Second),
		MaxConcurrentExtractions: int(getEnvInt64OrDefault("MAX_CONCURRENT_EXTRACTIONS", 4)),
		AllowedOrigins:           getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum accepted request body size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetExtractorBackend returns the configured extractor backend name
func (c *AppConfig) GetExtractorBackend() string {
	return c.ExtractorBackend
}

// GetExtractionTimeout returns how long a host waits for one extraction; 0 means forever
func (c *AppConfig) GetExtractionTimeout() time.Duration {
	return c.ExtractionTimeout
}

// GetMaxConcurrentExtractions returns the number of extractions allowed in flight
func (c *AppConfig) GetMaxConcurrentExtractions() int {
	return c.MaxConcurrentExtractions
}

// GetAllowedOrigins returns the CORS origin allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDurationOrDefault accepts Go durations ("90s") or plain seconds ("90").
func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d >= 0 {
		return d
	}
	if secs, err := strconv.ParseInt(value, 10, 64); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
