package handler

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"pdf-ocr-bridge/internal/domain"
	apperrors "pdf-ocr-bridge/pkg/errors"
)

// OCRHandler handles HTTP requests for text extraction
type OCRHandler struct {
	service     domain.ExtractionService
	maxFileSize int64
	logger      domain.Logger
}

// NewOCRHandler creates a new OCR handler instance
func NewOCRHandler(service domain.ExtractionService, maxFileSize int64, logger domain.Logger) *OCRHandler {
	return &OCRHandler{
		service:     service,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Extract accepts raw PDF bytes or a multipart "file" field and returns the text.
func (h *OCRHandler) Extract(w http.ResponseWriter, r *http.Request) {
	if h.maxFileSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	}

	document, err := h.readDocument(r)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	result, err := h.service.Extract(r.Context(), document)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}

	h.logger.Info("Text extracted", "request_id", GetRequestID(r), "extractor", result.Extractor, "bytes", result.Bytes, "chars", len(result.Text))
	writeJSON(w, http.StatusOK, result)
}

func (h *OCRHandler) readDocument(r *http.Request) ([]byte, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "multipart/form-data" {
		file, _, err := r.FormFile("file")
		if err != nil {
			if isTooLarge(err) {
				return nil, h.tooLarge()
			}
			return nil, apperrors.NewValidationError("File is required")
		}
		defer file.Close()

		var buf bytes.Buffer
		if _, err := io.Copy(&buf, file); err != nil {
			return nil, apperrors.NewInternalError("Failed to read uploaded file", err)
		}
		return buf.Bytes(), nil
	}

	document, err := io.ReadAll(r.Body)
	if err != nil {
		if isTooLarge(err) {
			return nil, h.tooLarge()
		}
		return nil, apperrors.NewInternalError("Failed to read request body", err)
	}
	return document, nil
}

func (h *OCRHandler) tooLarge() error {
	return apperrors.NewValidationError("File too large", "maximum size is "+humanBytes(h.maxFileSize))
}

func (h *OCRHandler) writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.GetStatusCode(err)
	message := err.Error()

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
		if appErr.Details != "" {
			message += ": " + appErr.Details
		}
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("Extraction request failed", err, "request_id", GetRequestID(r), "status", status)
	} else {
		h.logger.Debug("Extraction request rejected", "request_id", GetRequestID(r), "status", status, "reason", message)
	}
	writeError(w, status, message)
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large")
}

func humanBytes(n int64) string {
	const mb = 1024 * 1024
	if n >= mb && n%mb == 0 {
		return strconv.FormatInt(n/mb, 10) + "MB"
	}
	return strconv.FormatInt(n, 10) + " bytes"
}
