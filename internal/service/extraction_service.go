package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/semaphore"

	"pdf-ocr-bridge/internal/domain"
	apperrors "pdf-ocr-bridge/pkg/errors"
)

// ErrExtractionTimeout is returned when a call is abandoned at its deadline.
var ErrExtractionTimeout = errors.New("extraction timed out")

// ExtractionService runs bridge calls for a host. The bridge call itself
// cannot be interrupted, so on deadline the service stops waiting and lets
// the worker finish in the background.
type ExtractionService struct {
	bridge  domain.TextExtractor
	backend string
	sem     *semaphore.Weighted
	timeout time.Duration
	logger  domain.Logger
}

// NewExtractionService creates a new extraction service.
// maxConcurrent < 1 is treated as 1; timeout <= 0 disables the deadline.
func NewExtractionService(
	bridge domain.TextExtractor,
	backend string,
	maxConcurrent int,
	timeout time.Duration,
	logger domain.Logger,
) *ExtractionService {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &ExtractionService{
		bridge:  bridge,
		backend: backend,
		sem:     semaphore.NewWeighted(int64(maxConcurrent)),
		timeout: timeout,
		logger:  logger,
	}
}

type extractResult struct {
	text string
	err  error
}

// Extract returns the document's text or an *apperrors.AppError.
func (s *ExtractionService) Extract(ctx context.Context, document []byte) (*domain.ExtractionResult, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, s.contextError(ctx, "waiting for an extraction slot", err)
	}

	resultCh := make(chan extractResult, 1)
	start := time.Now()
	go func() {
		defer s.sem.Release(1)
		text, err := s.bridge.ExtractText(document)
		resultCh <- extractResult{text: text, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			s.logger.Warn("Extraction failed", "extractor", s.backend, "bytes", len(document), "error", res.err)
			return nil, fromExtraction(res.err)
		}
		s.logger.Debug("Extraction finished", "extractor", s.backend, "bytes", len(document), "duration_ms", time.Since(start).Milliseconds())
		return &domain.ExtractionResult{
			Text:      res.text,
			Extractor: s.backend,
			Bytes:     len(document),
		}, nil
	case <-ctx.Done():
		s.logger.Warn("Abandoning extraction", "extractor", s.backend, "bytes", len(document), "elapsed_ms", time.Since(start).Milliseconds())
		return nil, s.contextError(ctx, "extracting text", ctx.Err())
	}
}

func (s *ExtractionService) contextError(ctx context.Context, stage string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperrors.NewTimeoutError(ErrExtractionTimeout.Error()+" while "+stage, errors.Join(ErrExtractionTimeout, err))
	}
	return apperrors.NewInternalError("extraction cancelled while "+stage, err)
}
