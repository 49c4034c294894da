package entities

import (
	"time"

	"github.com/google/uuid"
)

// SessionState is the presentation state of an anonymous session
type SessionState string

const (
	SessionStateIdle       SessionState = "idle"       // No agenda, ready for upload
	SessionStateUploading  SessionState = "uploading"  // Reading the uploaded file
	SessionStateProcessing SessionState = "processing" // Waiting for the model
	SessionStateDisplaying SessionState = "displaying" // Agenda available
)

// DefaultTotalDuration is the meeting length used before the user changes it
const DefaultTotalDuration = 60

// MaxTotalDuration caps the meeting length at one week of minutes
const MaxTotalDuration = 7 * 24 * 60

// Session holds the transient agenda state of one browser session
type Session struct {
	ID            uuid.UUID      `json:"id"`
	State         SessionState   `json:"state"`
	Agenda        *MeetingAgenda `json:"agenda,omitempty"`
	TotalDuration int            `json:"total_duration"`
	FileName      string         `json:"file_name,omitempty"`
	LastError     string         `json:"last_error,omitempty"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// NewSession creates an idle session
func NewSession(id uuid.UUID, totalDuration int) *Session {
	if totalDuration < 1 || totalDuration > MaxTotalDuration {
		totalDuration = DefaultTotalDuration
	}
	return &Session{
		ID:            id,
		State:         SessionStateIdle,
		TotalDuration: totalDuration,
		UpdatedAt:     time.Now(),
	}
}

// IsBusy reports whether a generation is running for this session
func (s *Session) IsBusy() bool {
	return s.State == SessionStateUploading || s.State == SessionStateProcessing
}

// MarkUploading moves the session into the uploading state
func (s *Session) MarkUploading(fileName string) {
	s.State = SessionStateUploading
	s.FileName = fileName
	s.LastError = ""
	s.touch()
}

// MarkProcessing moves the session into the processing state
func (s *Session) MarkProcessing() {
	s.State = SessionStateProcessing
	s.touch()
}

// MarkDisplaying stores the agenda and shows it
func (s *Session) MarkDisplaying(agenda *MeetingAgenda) {
	s.State = SessionStateDisplaying
	s.Agenda = agenda
	s.LastError = ""
	s.touch()
}

// MarkFailed returns to idle with a message for the user
func (s *Session) MarkFailed(message string) {
	s.State = SessionStateIdle
	s.Agenda = nil
	s.LastError = message
	s.touch()
}

// SetTotalDuration updates the preference and the displayed agenda
func (s *Session) SetTotalDuration(minutes int) {
	s.TotalDuration = minutes
	if s.Agenda != nil {
		s.Agenda.TotalDuration = minutes
	}
	s.touch()
}

// Reset drops the agenda; the total duration preference is kept
func (s *Session) Reset() {
	s.State = SessionStateIdle
	s.Agenda = nil
	s.FileName = ""
	s.LastError = ""
	s.touch()
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}
