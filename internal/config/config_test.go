package config

import (
	"reflect"
	"testing"
	"time"

	"pdf-ocr-bridge/internal/domain"
)

const defaultMaxFileSize int64 = 50 * 1024 * 1024

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "SERVER_PORT", "MAX_FILE_SIZE", "LOG_LEVEL", "EXTRACTOR_BACKEND",
		"EXTRACTION_TIMEOUT", "MAX_CONCURRENT_EXTRACTIONS", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetExtractorBackend() != domain.BackendLedongthuc {
		t.Fatalf("expected default backend %s, got %s", domain.BackendLedongthuc, cfg.GetExtractorBackend())
	}
	if cfg.GetExtractionTimeout() != 60*time.Second {
		t.Fatalf("expected default timeout 60s, got %s", cfg.GetExtractionTimeout())
	}
	if cfg.GetMaxConcurrentExtractions() != 4 {
		t.Fatalf("expected default concurrency 4, got %d", cfg.GetMaxConcurrentExtractions())
	}
	want := []string{"http://localhost:5173", "http://localhost:3000"}
	if !reflect.DeepEqual(cfg.GetAllowedOrigins(), want) {
		t.Fatalf("expected default origins %v, got %v", want, cfg.GetAllowedOrigins())
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("MAX_FILE_SIZE", "12345")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("EXTRACTOR_BACKEND", "FITZ")
	t.Setenv("EXTRACTION_TIMEOUT", "90s")
	t.Setenv("MAX_CONCURRENT_EXTRACTIONS", "16")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != 12345 {
		t.Fatalf("expected max file size 12345, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.GetLogLevel())
	}
	if cfg.GetExtractorBackend() != domain.BackendFitz {
		t.Fatalf("expected backend fitz, got %s", cfg.GetExtractorBackend())
	}
	if cfg.GetExtractionTimeout() != 90*time.Second {
		t.Fatalf("expected timeout 90s, got %s", cfg.GetExtractionTimeout())
	}
	if cfg.GetMaxConcurrentExtractions() != 16 {
		t.Fatalf("expected concurrency 16, got %d", cfg.GetMaxConcurrentExtractions())
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.GetAllowedOrigins(), want) {
		t.Fatalf("expected origins %v, got %v", want, cfg.GetAllowedOrigins())
	}
}

func TestNewConfig_Fallbacks(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9091")
	t.Setenv("MAX_FILE_SIZE", "not-a-number")
	t.Setenv("EXTRACTION_TIMEOUT", "soon")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9091" {
		t.Fatalf("expected server port 9091, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetExtractionTimeout() != 60*time.Second {
		t.Fatalf("expected default timeout, got %s", cfg.GetExtractionTimeout())
	}
}

func TestNewConfig_TimeoutInSecondsAndDisabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("EXTRACTION_TIMEOUT", "15")
	if got := NewConfig().GetExtractionTimeout(); got != 15*time.Second {
		t.Fatalf("expected 15s, got %s", got)
	}

	t.Setenv("EXTRACTION_TIMEOUT", "0")
	if got := NewConfig().GetExtractionTimeout(); got != 0 {
		t.Fatalf("expected disabled timeout, got %s", got)
	}
}

func TestNewContainerWithConfig(t *testing.T) {
	for _, backend := range domain.Backends {
		c, err := NewContainerWithConfig(&AppConfig{ExtractorBackend: backend, LogLevel: "error", MaxConcurrentExtractions: 1})
		if err != nil {
			t.Fatalf("backend %s: unexpected error %v", backend, err)
		}
		if c.Extractor.Name() != backend {
			t.Fatalf("expected extractor %s, got %s", backend, c.Extractor.Name())
		}
		if c.Bridge.Extractor() != backend {
			t.Fatalf("bridge wraps %s, want %s", c.Bridge.Extractor(), backend)
		}
		if c.ExtractionService == nil {
			t.Fatalf("expected extraction service to be wired")
		}
	}
}

func TestNewContainerWithConfig_UnknownBackend(t *testing.T) {
	_, err := NewContainerWithConfig(&AppConfig{ExtractorBackend: "pdfium"})
	if err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
