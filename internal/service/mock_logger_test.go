package service

import "pdf-ocr-bridge/internal/domain"

// MockLogger for testing
type MockLogger struct{}

func NewMockLogger() domain.Logger {
	return &MockLogger{}
}

func (l *MockLogger) Info(msg string, fields ...interface{}) {}
func (l *MockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockLogger) Debug(msg string, fields ...interface{}) {}
func (l *MockLogger) Warn(msg string, fields ...interface{}) {}
