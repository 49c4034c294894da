package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError là custom error type cho application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

func ErrFeatureDisabled(feature string) AppError {
	return AppError{
		HTTPCode: http.StatusNotImplemented,
		Code:     ErrorCode_FEATURE_DISABLED,
		Message:  fmt.Sprintf("%s is not enabled on this server", feature),
	}
}

// Ingestion Errors
func ErrUnsupportedFileType(fileName string) AppError {
	return AppError{
		HTTPCode: http.StatusUnsupportedMediaType,
		Code:     ErrorCode_UNSUPPORTED_FILE_TYPE,
		Message:  "Unsupported file type. Please upload .docx or .md files.",
	}.WithDetail("file_name", fileName)
}

func ErrExtractionFailed(fileName string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_EXTRACTION_FAILED,
		Message:  "Failed to process file. Please try again.",
	}.WithDetail("file_name", fileName)
}

func ErrMissingFile() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_MISSING_FILE,
		Message:  "Missing file in form field \"file\"",
	}
}

// Agenda Errors
func ErrAgendaGenerationFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_AGENDA_GENERATION_FAILED,
		Message:  "Failed to generate agenda. Please check your document and try again.",
	}
}

func ErrAgendaNotFound() AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_AGENDA_NOT_FOUND,
		Message:  "No agenda has been generated for this session",
	}
}

func ErrGenerationInProgress() AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_GENERATION_IN_PROGRESS,
		Message:  "A document is already being processed",
	}
}

func ErrAgendaAlreadyDisplayed() AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_AGENDA_ALREADY_DISPLAYED,
		Message:  "Start a new agenda before uploading another document",
	}
}

func ErrExportFailed(format string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_EXPORT_FAILED,
		Message:  "Failed to export agenda",
	}.WithDetail("format", format)
}

// Integration Errors
func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}

func ErrCacheFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_CACHE_FAILED,
		Message:  fmt.Sprintf("Cache operation failed: %s", operation),
	}
}

func ErrDBQueryFailed(query string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_QUERY_FAILED,
		Message:  "Database query failed",
	}.WithDetail("query", query)
}
