package service

import (
	"errors"
	"net/http"

	"pdf-ocr-bridge/internal/domain"
	apperrors "pdf-ocr-bridge/pkg/errors"
)

// fromExtraction maps a bridge error onto the host taxonomy.
// Empty documents are the caller's fault; every other extraction
// failure is unprocessable content.
func fromExtraction(err error) *apperrors.AppError {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, domain.ErrEmptyDocument) {
		return &apperrors.AppError{
			Type:       apperrors.ErrorTypeValidation,
			Message:    err.Error(),
			StatusCode: http.StatusBadRequest,
			Cause:      err,
		}
	}
	var extErr *domain.ExtractionError
	if errors.As(err, &extErr) {
		return apperrors.NewProcessingError(extErr.Error(), err)
	}
	return apperrors.NewInternalError(err.Error(), err)
}
