package entities

import (
	"github.com/google/uuid"
)

// AgendaItem is one topic of a meeting with its share of the total time
type AgendaItem struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Summary             string   `json:"summary"`
	ActionItems         []string `json:"actionItems"`
	Stakeholders        []string `json:"stakeholders"`
	SuggestedPercentage float64  `json:"suggestedPercentage"` // 0-100, never normalized
}

// MeetingAgenda is the structured agenda shown to the user
type MeetingAgenda struct {
	Title         string       `json:"title"`
	Items         []AgendaItem `json:"items"`
	TotalDuration int          `json:"totalDuration"` // minutes
}

// AgendaDraft is the model reply before item IDs are assigned.
// Pointer fields let validation tell a missing key from a zero value.
type AgendaDraft struct {
	Title *string            `json:"title" validate:"required"`
	Items []*AgendaItemDraft `json:"items" validate:"required,dive,required"`
}

// AgendaItemDraft is one item of the model reply
type AgendaItemDraft struct {
	Title               *string  `json:"title" validate:"required"`
	Summary             *string  `json:"summary" validate:"required"`
	ActionItems         []string `json:"actionItems" validate:"required"`
	Stakeholders        []string `json:"stakeholders" validate:"required"`
	SuggestedPercentage *float64 `json:"suggestedPercentage" validate:"required,lte=100"`
}

// ToAgenda assigns a fresh ID to every item and attaches the total duration
func (d *AgendaDraft) ToAgenda(totalDuration int) *MeetingAgenda {
	agenda := &MeetingAgenda{
		Title:         deref(d.Title),
		Items:         make([]AgendaItem, 0, len(d.Items)),
		TotalDuration: totalDuration,
	}

	for _, it := range d.Items {
		agenda.Items = append(agenda.Items, AgendaItem{
			ID:                  uuid.NewString(),
			Title:               deref(it.Title),
			Summary:             deref(it.Summary),
			ActionItems:         nonNil(it.ActionItems),
			Stakeholders:        nonNil(it.Stakeholders),
			SuggestedPercentage: *it.SuggestedPercentage,
		})
	}

	return agenda
}

// PercentageSum adds up the suggested percentages; it is reported, never enforced
func (a *MeetingAgenda) PercentageSum() float64 {
	var sum float64
	for _, it := range a.Items {
		sum += it.SuggestedPercentage
	}
	return sum
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
