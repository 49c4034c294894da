package entities

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewSession_DefaultsDuration(t *testing.T) {
	assert.Equal(t, DefaultTotalDuration, NewSession(uuid.New(), 0).TotalDuration)
	assert.Equal(t, 30, NewSession(uuid.New(), 30).TotalDuration)
	assert.Equal(t, SessionStateIdle, NewSession(uuid.New(), 30).State)
}

func TestSession_Lifecycle(t *testing.T) {
	s := NewSession(uuid.New(), 60)
	s.LastError = "previous failure"

	s.MarkUploading("plan.docx")
	assert.Equal(t, SessionStateUploading, s.State)
	assert.True(t, s.IsBusy())
	assert.Empty(t, s.LastError)
	assert.Equal(t, "plan.docx", s.FileName)

	s.MarkProcessing()
	assert.Equal(t, SessionStateProcessing, s.State)
	assert.True(t, s.IsBusy())

	s.MarkDisplaying(&MeetingAgenda{Title: "Plan", TotalDuration: 60})
	assert.Equal(t, SessionStateDisplaying, s.State)
	assert.False(t, s.IsBusy())

	s.SetTotalDuration(90)
	assert.Equal(t, 90, s.TotalDuration)
	assert.Equal(t, 90, s.Agenda.TotalDuration)

	s.Reset()
	assert.Equal(t, SessionStateIdle, s.State)
	assert.Nil(t, s.Agenda)
	assert.Empty(t, s.FileName)
	assert.Equal(t, 90, s.TotalDuration)
}

func TestSession_MarkFailed(t *testing.T) {
	s := NewSession(uuid.New(), 60)
	s.MarkUploading("plan.md")
	s.MarkProcessing()

	s.MarkFailed("Failed to generate agenda. Please check your document and try again.")

	assert.Equal(t, SessionStateIdle, s.State)
	assert.Nil(t, s.Agenda)
	assert.Equal(t, "Failed to generate agenda. Please check your document and try again.", s.LastError)
	assert.False(t, s.IsBusy())
}
