package errors

// ErrorCode is the machine-readable code returned in error bodies
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 200

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003
	ErrorCode_CONFLICT         ErrorCode = 1004
	ErrorCode_UNAUTHENTICATED  ErrorCode = 1005

	// Ingestion
	ErrorCode_UNSUPPORTED_FILE_TYPE ErrorCode = 2000
	ErrorCode_EXTRACTION_FAILED     ErrorCode = 2001
	ErrorCode_MISSING_FILE          ErrorCode = 2002

	// Agenda
	ErrorCode_AGENDA_GENERATION_FAILED ErrorCode = 3000
	ErrorCode_AGENDA_NOT_FOUND         ErrorCode = 3001
	ErrorCode_GENERATION_IN_PROGRESS   ErrorCode = 3002
	ErrorCode_AGENDA_ALREADY_DISPLAYED ErrorCode = 3003
	ErrorCode_EXPORT_FAILED            ErrorCode = 3004

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 4000
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 4001
	ErrorCode_DB_QUERY_FAILED            ErrorCode = 4002
	ErrorCode_FEATURE_DISABLED           ErrorCode = 4003
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_CONFLICT:                   "CONFLICT",
	ErrorCode_UNAUTHENTICATED:            "UNAUTHENTICATED",
	ErrorCode_UNSUPPORTED_FILE_TYPE:      "UNSUPPORTED_FILE_TYPE",
	ErrorCode_EXTRACTION_FAILED:          "EXTRACTION_FAILED",
	ErrorCode_MISSING_FILE:               "MISSING_FILE",
	ErrorCode_AGENDA_GENERATION_FAILED:   "AGENDA_GENERATION_FAILED",
	ErrorCode_AGENDA_NOT_FOUND:           "AGENDA_NOT_FOUND",
	ErrorCode_GENERATION_IN_PROGRESS:     "GENERATION_IN_PROGRESS",
	ErrorCode_AGENDA_ALREADY_DISPLAYED:   "AGENDA_ALREADY_DISPLAYED",
	ErrorCode_EXPORT_FAILED:              "EXPORT_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
	ErrorCode_DB_QUERY_FAILED:            "DB_QUERY_FAILED",
	ErrorCode_FEATURE_DISABLED:           "FEATURE_DISABLED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText renders the code by name in JSON bodies and log fields
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
