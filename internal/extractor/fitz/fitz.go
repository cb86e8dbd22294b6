// Package fitz wraps MuPDF through github.com/gen2brain/go-fitz.
// It is kept apart from package extractor because MuPDF cannot be linked
// into every target the bridge is built for.
package fitz

import (
	"fmt"
	"strings"

	gofitz "github.com/gen2brain/go-fitz"

	"pdf-ocr-bridge/internal/domain"
)

// Extractor extracts text with MuPDF.
type Extractor struct{}

// New creates a MuPDF backed extractor
func New() *Extractor {
	return &Extractor{}
}

var _ domain.Extractor = (*Extractor)(nil)

func (e *Extractor) Name() string {
	return domain.BackendFitz
}

// Extract concatenates MuPDF's text for each page in order. A failing page
// fails the whole document; there is no partial result.
func (e *Extractor) Extract(document []byte) (string, error) {
	doc, err := gofitz.NewFromMemory(document)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", pageNum+1, err)
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}
