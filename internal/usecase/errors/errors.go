package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal server error")
)

// Ingestion errors
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrExtractionFailed    = errors.New("failed to extract document text")
	ErrEmptyFileName       = errors.New("file name is required")
)

// Agenda errors
var (
	ErrGenerationFailed       = errors.New("failed to generate agenda")
	ErrAgendaNotFound         = errors.New("agenda not found")
	ErrGenerationInProgress   = errors.New("generation already in progress")
	ErrAgendaAlreadyDisplayed = errors.New("agenda already displayed")
	ErrUnsupportedExport      = errors.New("unsupported export format")
)
