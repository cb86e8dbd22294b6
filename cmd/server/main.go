package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdf-ocr-bridge/internal/config"
	"pdf-ocr-bridge/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	container, err := config.NewContainer()
	if err != nil {
		log.Fatalf("Failed to initialise: %v", err)
	}
	cfg := container.GetConfig()

	ocrHandler := handler.NewOCRHandler(
		container.ExtractionService,
		cfg.GetMaxFileSize(),
		container.Logger,
	)
	requestLogger := handler.NewRequestLogger(container.Logger)

	router := handler.NewRouter(
		ocrHandler,
		container.Extractor.Name(),
		cfg.GetAllowedOrigins(),
		requestLogger.Middleware,
	)

	server := &http.Server{
		Addr:              ":" + cfg.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		container.Logger.Info("Server listening", "address", server.Addr, "extractor", container.Extractor.Name())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		container.Logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	container.Logger.Info("Server exited")
}
