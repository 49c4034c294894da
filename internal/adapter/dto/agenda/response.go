package agenda

import "time"

// AgendaItemResponse represents one agenda item with its derived minutes
type AgendaItemResponse struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Summary             string   `json:"summary"`
	ActionItems         []string `json:"action_items"`
	Stakeholders        []string `json:"stakeholders"`
	SuggestedPercentage float64  `json:"suggested_percentage"`
	Minutes             int      `json:"minutes"`
}

// AgendaResponse represents a displayed agenda
type AgendaResponse struct {
	Title            string                `json:"title"`
	TotalDuration    int                   `json:"total_duration"`
	AllocatedMinutes int                   `json:"allocated_minutes"`
	PercentageSum    float64               `json:"percentage_sum"`
	Items            []*AgendaItemResponse `json:"items"`
}

// SessionResponse represents the agenda session view
type SessionResponse struct {
	State               string          `json:"state"`
	TotalDuration       int             `json:"total_duration"`
	FileName            string          `json:"file_name,omitempty"`
	Error               string          `json:"error,omitempty"`
	Agenda              *AgendaResponse `json:"agenda,omitempty"`
	SupportedExtensions []string        `json:"supported_extensions"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// GenerationRecordResponse represents one audit record
type GenerationRecordResponse struct {
	ID            string    `json:"id"`
	SessionID     string    `json:"session_id"`
	FileName      string    `json:"file_name"`
	FileType      string    `json:"file_type"`
	TextLength    int       `json:"text_length"`
	ItemCount     int       `json:"item_count"`
	PercentageSum float64   `json:"percentage_sum"`
	Status        string    `json:"status"`
	ErrorCode     *string   `json:"error_code,omitempty"`
	LatencyMs     int64     `json:"latency_ms"`
	SourceObject  *string   `json:"source_object,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// GenerationListResponse represents a list of audit records
type GenerationListResponse struct {
	Generations []*GenerationRecordResponse `json:"generations"`
	Total       int                         `json:"total"`
}
