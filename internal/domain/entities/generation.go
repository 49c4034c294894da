package entities

import (
	"encoding/json"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GenerationStatus is the outcome of one generation attempt
type GenerationStatus string

const (
	GenerationStatusSucceeded GenerationStatus = "succeeded"
	GenerationStatusFailed    GenerationStatus = "failed"
)

// GenerationRecord is the audit entry of one generation attempt.
// It never stores document text or agenda content.
type GenerationRecord struct {
	ID            uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SessionID     uuid.UUID        `json:"session_id" gorm:"type:uuid;not null;index"`
	FileName      string           `json:"file_name" gorm:"type:varchar(255);not null"`
	FileType      string           `json:"file_type" gorm:"type:varchar(20);not null"`
	TextLength    int              `json:"text_length" gorm:"type:integer;not null;default:0"`
	ItemCount     int              `json:"item_count" gorm:"type:integer;not null;default:0"`
	PercentageSum float64          `json:"percentage_sum" gorm:"type:double precision;not null;default:0"`
	Status        GenerationStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	ErrorCode     *string          `json:"error_code,omitempty" gorm:"type:varchar(64)"`
	LatencyMs     int64            `json:"latency_ms" gorm:"type:bigint;not null;default:0"`
	SourceObject  *string          `json:"source_object,omitempty" gorm:"type:text"`
	Metadata      datatypes.JSON   `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt     time.Time        `json:"created_at" gorm:"autoCreateTime;index"`
}

// Column widths of generation_records
const (
	MaxRecordFileName = 255
	MaxRecordFileType = 20
)

// NewGenerationRecord creates a record for an attempt on the given session.
// File name and type are cut to their column widths.
func NewGenerationRecord(sessionID uuid.UUID, fileName, fileType string) *GenerationRecord {
	return &GenerationRecord{
		ID:        uuid.New(),
		SessionID: sessionID,
		FileName:  truncateRunes(fileName, MaxRecordFileName),
		FileType:  truncateRunes(fileType, MaxRecordFileType),
		CreatedAt: time.Now(),
	}
}

// truncateRunes keeps at most n characters so multi-byte names are never split
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// MarkSucceeded fills in the agenda shape of a successful attempt
func (r *GenerationRecord) MarkSucceeded(agenda *MeetingAgenda, latency time.Duration) {
	r.Status = GenerationStatusSucceeded
	r.ItemCount = len(agenda.Items)
	r.PercentageSum = agenda.PercentageSum()
	r.LatencyMs = latency.Milliseconds()

	percentages := make([]float64, len(agenda.Items))
	for i, it := range agenda.Items {
		percentages[i] = it.SuggestedPercentage
	}
	if b, err := json.Marshal(map[string]interface{}{"percentages": percentages}); err == nil {
		r.Metadata = datatypes.JSON(b)
	}
}

// MarkFailed records the error code of a failed attempt
func (r *GenerationRecord) MarkFailed(code string, latency time.Duration) {
	r.Status = GenerationStatusFailed
	r.ErrorCode = &code
	r.LatencyMs = latency.Milliseconds()
}

// TableName specifies the table name for GORM
func (GenerationRecord) TableName() string {
	return "generation_records"
}
