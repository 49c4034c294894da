package agenda

// UpdateDurationRequest represents the request to change the total meeting length.
// Values below one minute are accepted and clamped to one; the upper bound is one week.
type UpdateDurationRequest struct {
	TotalDuration *int `json:"total_duration" validate:"required,max=10080"`
}

// ExportRequest represents query parameters for exporting an agenda
type ExportRequest struct {
	Format string `query:"format" validate:"omitempty,oneof=text docx"`
}

// GetGenerationRequest represents the path parameter of one audit record
type GetGenerationRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

// ListGenerationsRequest represents query parameters for listing audit records
type ListGenerationsRequest struct {
	Limit int `query:"limit" validate:"min=0,max=100"`
}
