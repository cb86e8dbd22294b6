package domain

import "errors"

// Domain errors
var (
	ErrEmptyDocument  = errors.New("empty document")
	ErrUnknownBackend = errors.New("unknown extractor backend")
)

// ExtractionError is returned whenever the external extractor could not
// produce text from a buffer. Message is always non-empty.
type ExtractionError struct {
	Message string
	// Fault is set when the extractor panicked and the panic was contained.
	Fault bool
	Cause error
}

func (e *ExtractionError) Error() string {
	if e.Message == "" {
		return "extraction failed"
	}
	return e.Message
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// IsExtractionError reports whether err carries an *ExtractionError.
func IsExtractionError(err error) bool {
	var extErr *ExtractionError
	return errors.As(err, &extErr)
}
