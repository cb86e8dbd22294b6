// Package bridge is the single entry point between a host runtime and an
// external PDF text extractor. It validates nothing about PDF structure,
// calls the extractor exactly once per request and converts every failure,
// panics included, into a *domain.ExtractionError.
package bridge

import (
	"fmt"
	"runtime/debug"

	"pdf-ocr-bridge/internal/domain"
	"pdf-ocr-bridge/pkg/logger"
)

// Bridge forwards documents to an Extractor. It holds no per-call state and
// is safe for concurrent use as long as the extractor is.
type Bridge struct {
	extractor domain.Extractor
	logger    domain.Logger
}

// Option configures a Bridge
type Option func(*Bridge)

// WithLogger enables logging; a Bridge logs nothing by default.
func WithLogger(l domain.Logger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.logger = l
		}
	}
}

// New creates a bridge around extractor
func New(extractor domain.Extractor, opts ...Option) *Bridge {
	b := &Bridge{
		extractor: extractor,
		logger:    logger.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var _ domain.TextExtractor = (*Bridge)(nil)

// Extractor returns the wrapped extractor's backend name.
func (b *Bridge) Extractor() string {
	return b.extractor.Name()
}

// ExtractText returns the text of document exactly as the extractor
// produced it. document is borrowed for the duration of the call.
func (b *Bridge) ExtractText(document []byte) (string, error) {
	if len(document) == 0 {
		return "", &domain.ExtractionError{
			Message: "cannot extract text: " + domain.ErrEmptyDocument.Error(),
			Cause:   domain.ErrEmptyDocument,
		}
	}

	b.logger.Debug("Extracting text", "extractor", b.extractor.Name(), "bytes", len(document))

	text, err := b.guardedExtract(document)
	if err != nil {
		b.logger.Debug("Extraction failed", "extractor", b.extractor.Name(), "error", err)
		return "", err
	}

	b.logger.Debug("Extraction succeeded", "extractor", b.extractor.Name(), "chars", len(text))
	return text, nil
}

func (b *Bridge) guardedExtract(document []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Extractor panicked", fmt.Errorf("%v", r), "extractor", b.extractor.Name(), "stack", string(debug.Stack()))
			text = ""
			err = &domain.ExtractionError{
				Message: fmt.Sprintf("internal fault in extractor %s: %v", b.extractor.Name(), r),
				Fault:   true,
				Cause:   panicError(r),
			}
		}
	}()

	text, err = b.extractor.Extract(document)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = "extractor " + b.extractor.Name() + " failed"
		}
		return "", &domain.ExtractionError{Message: msg, Cause: err}
	}
	return text, nil
}

// panicError keeps an error value passed to panic reachable through Unwrap.
func panicError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
