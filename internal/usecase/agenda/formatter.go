package agenda

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/agendacraft/internal/domain/entities"
)

// FormatText renders the agenda in the plain-text clipboard format:
//
//	Meeting Agenda: <title>
//
//	1. <item> (<minutes>m)
//	Summary: <summary>
//	Action Items: <a, b>
//	Stakeholders: <x, y>
//
// Item blocks are separated by a blank line.
func FormatText(a *entities.MeetingAgenda) string {
	var sb strings.Builder
	sb.WriteString("Meeting Agenda: ")
	sb.WriteString(a.Title)
	sb.WriteString("\n\n")

	minutes := Allocate(a.Items, a.TotalDuration)
	for i, it := range a.Items {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%d. %s (%dm)\n", i+1, it.Title, minutes[i])
		fmt.Fprintf(&sb, "Summary: %s\n", it.Summary)
		fmt.Fprintf(&sb, "Action Items: %s\n", strings.Join(it.ActionItems, ", "))
		fmt.Fprintf(&sb, "Stakeholders: %s\n", strings.Join(it.Stakeholders, ", "))
	}

	return sb.String()
}
