package config

import (
	"fmt"
	"strings"

	"pdf-ocr-bridge/internal/bridge"
	"pdf-ocr-bridge/internal/domain"
	"pdf-ocr-bridge/internal/extractor"
	"pdf-ocr-bridge/internal/extractor/fitz"
	"pdf-ocr-bridge/internal/service"
	"pdf-ocr-bridge/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	Extractor         domain.Extractor
	Bridge            *bridge.Bridge
	ExtractionService *service.ExtractionService
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	return NewContainerWithConfig(NewConfig())
}

// NewContainerWithConfig wires the application around an existing config
func NewContainerWithConfig(config domain.Config) (*Container, error) {
	appLogger := logger.NewLogger(config.GetLogLevel())

	ext, err := NewExtractor(config.GetExtractorBackend())
	if err != nil {
		return nil, err
	}

	b := bridge.New(ext, bridge.WithLogger(appLogger))
	extractionService := service.NewExtractionService(
		b,
		ext.Name(),
		config.GetMaxConcurrentExtractions(),
		config.GetExtractionTimeout(),
		appLogger,
	)

	return &Container{
		Config:            config,
		Logger:            appLogger,
		Extractor:         ext,
		Bridge:            b,
		ExtractionService: extractionService,
	}, nil
}

// NewExtractor resolves a backend name, including the MuPDF backend.
func NewExtractor(name string) (domain.Extractor, error) {
	if name == domain.BackendFitz {
		return fitz.New(), nil
	}
	ext, err := extractor.New(name)
	if err != nil {
		return nil, fmt.Errorf("failed to configure extractor (supported: %s): %w", strings.Join(domain.Backends, ", "), err)
	}
	return ext, nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
