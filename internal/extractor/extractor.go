// Package extractor adapts third-party PDF libraries to domain.Extractor.
// Adapters hand back whatever text the library produced; they never trim,
// normalise or sanitise it.
package extractor

import (
	"fmt"

	"pdf-ocr-bridge/internal/domain"
)

// New returns the pure-Go extractor registered under name.
// The MuPDF backend is built by package fitz.
func New(name string) (domain.Extractor, error) {
	switch name {
	case "", domain.BackendLedongthuc:
		return NewLedongthuc(), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, name)
	}
}
