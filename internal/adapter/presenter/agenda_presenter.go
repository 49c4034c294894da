package presenter

import (
	"github.com/johnquangdev/agendacraft/internal/adapter/dto/agenda"
	"github.com/johnquangdev/agendacraft/internal/domain/entities"
	agendaUsecase "github.com/johnquangdev/agendacraft/internal/usecase/agenda"
	"github.com/johnquangdev/agendacraft/pkg/extractor"
)

// ToSessionResponse converts a Session entity to SessionResponse DTO
func ToSessionResponse(s *entities.Session) *agenda.SessionResponse {
	if s == nil {
		return nil
	}

	return &agenda.SessionResponse{
		State:               string(s.State),
		TotalDuration:       s.TotalDuration,
		FileName:            s.FileName,
		Error:               s.LastError,
		Agenda:              ToAgendaResponse(s.Agenda),
		SupportedExtensions: extractor.SupportedExtensions(),
		UpdatedAt:           s.UpdatedAt,
	}
}

// ToAgendaResponse converts a MeetingAgenda entity to AgendaResponse DTO.
// Minutes are derived here on every render, never stored.
func ToAgendaResponse(a *entities.MeetingAgenda) *agenda.AgendaResponse {
	if a == nil {
		return nil
	}

	minutes := agendaUsecase.Allocate(a.Items, a.TotalDuration)
	items := make([]*agenda.AgendaItemResponse, len(a.Items))
	allocated := 0
	for i, it := range a.Items {
		items[i] = &agenda.AgendaItemResponse{
			ID:                  it.ID,
			Title:               it.Title,
			Summary:             it.Summary,
			ActionItems:         it.ActionItems,
			Stakeholders:        it.Stakeholders,
			SuggestedPercentage: it.SuggestedPercentage,
			Minutes:             minutes[i],
		}
		allocated += minutes[i]
	}

	return &agenda.AgendaResponse{
		Title:            a.Title,
		TotalDuration:    a.TotalDuration,
		AllocatedMinutes: allocated,
		PercentageSum:    a.PercentageSum(),
		Items:            items,
	}
}

// ToGenerationRecordResponse converts one audit record to GenerationRecordResponse
func ToGenerationRecordResponse(r *entities.GenerationRecord) *agenda.GenerationRecordResponse {
	return &agenda.GenerationRecordResponse{
		ID:            r.ID.String(),
		SessionID:     r.SessionID.String(),
		FileName:      r.FileName,
		FileType:      r.FileType,
		TextLength:    r.TextLength,
		ItemCount:     r.ItemCount,
		PercentageSum: r.PercentageSum,
		Status:        string(r.Status),
		ErrorCode:     r.ErrorCode,
		LatencyMs:     r.LatencyMs,
		SourceObject:  r.SourceObject,
		CreatedAt:     r.CreatedAt,
	}
}

// ToGenerationListResponse converts audit records to GenerationListResponse
func ToGenerationListResponse(records []*entities.GenerationRecord) *agenda.GenerationListResponse {
	out := make([]*agenda.GenerationRecordResponse, len(records))
	for i, r := range records {
		out[i] = ToGenerationRecordResponse(r)
	}

	return &agenda.GenerationListResponse{
		Generations: out,
		Total:       len(out),
	}
}
