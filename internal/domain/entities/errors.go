package entities

import "errors"

// Domain errors
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Audit errors
	ErrGenerationRecordNotFound = errors.New("generation record not found")
)
