package extractor

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"

	"pdf-ocr-bridge/internal/domain"
)

// Ledongthuc extracts text with github.com/ledongthuc/pdf.
type Ledongthuc struct{}

// NewLedongthuc creates the default pure-Go extractor
func NewLedongthuc() *Ledongthuc {
	return &Ledongthuc{}
}

var _ domain.Extractor = (*Ledongthuc)(nil)

func (e *Ledongthuc) Name() string {
	return domain.BackendLedongthuc
}

// Extract returns the plain text of every page, concatenated in page order.
func (e *Ledongthuc) Extract(document []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(document), int64(len(document)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract text from PDF: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}
	return buf.String(), nil
}
