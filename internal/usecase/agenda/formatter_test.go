package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/agendacraft/internal/domain/entities"
)

func TestFormatText(t *testing.T) {
	agenda := &entities.MeetingAgenda{
		Title:         "Q3 Kickoff",
		TotalDuration: 60,
		Items: []entities.AgendaItem{
			{
				Title:               "Roadmap",
				Summary:             "Review the plan.",
				ActionItems:         []string{"Draft OKRs", "Share deck"},
				Stakeholders:        []string{"PM", "Eng"},
				SuggestedPercentage: 25,
			},
			{
				Title:               "Budget",
				Summary:             "Confirm spend.",
				ActionItems:         []string{},
				Stakeholders:        []string{"Finance"},
				SuggestedPercentage: 75,
			},
		},
	}

	want := "Meeting Agenda: Q3 Kickoff\n\n" +
		"1. Roadmap (15m)\n" +
		"Summary: Review the plan.\n" +
		"Action Items: Draft OKRs, Share deck\n" +
		"Stakeholders: PM, Eng\n" +
		"\n" +
		"2. Budget (45m)\n" +
		"Summary: Confirm spend.\n" +
		"Action Items: \n" +
		"Stakeholders: Finance\n"

	assert.Equal(t, want, FormatText(agenda))
}

func TestFormatText_NoItems(t *testing.T) {
	agenda := &entities.MeetingAgenda{Title: "Empty", TotalDuration: 30}

	assert.Equal(t, "Meeting Agenda: Empty\n\n", FormatText(agenda))
}

func TestFormatText_UsesCurrentDuration(t *testing.T) {
	agenda := &entities.MeetingAgenda{
		Title:         "Sync",
		TotalDuration: 90,
		Items: []entities.AgendaItem{
			{Title: "Only", Summary: "s", SuggestedPercentage: 50},
		},
	}

	assert.Contains(t, FormatText(agenda), "1. Only (45m)\n")
}
