package handler

import (
	stdErrors "errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/agendacraft/errors"
	"github.com/johnquangdev/agendacraft/internal/adapter/dto/agenda"
	"github.com/johnquangdev/agendacraft/internal/adapter/presenter"
	httpmw "github.com/johnquangdev/agendacraft/internal/infrastructure/http/middleware"
	agendaUsecase "github.com/johnquangdev/agendacraft/internal/usecase/agenda"
	usecaseErrors "github.com/johnquangdev/agendacraft/internal/usecase/errors"
)

// Generation serves the caller's generation audit log
type Generation struct {
	service *agendaUsecase.Service
	logger  *zap.Logger
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(service *agendaUsecase.Service, logger *zap.Logger) *Generation {
	return &Generation{
		service: service,
		logger:  logger,
	}
}

// List handles GET /agenda/generations
// @Summary      List this session's generation attempts
// @Description  Returns audit records of the current session, newest first. Records never include document text or agenda content.
// @Tags         Generations
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of records (default 20, max 100)"
// @Success      200    {object}  agenda.GenerationListResponse  "Generation records"
// @Failure      400    {object}  map[string]interface{}  "Invalid limit"
// @Failure      501    {object}  map[string]interface{}  "Audit log disabled"
// @Router       /agenda/generations [get]
func (h *Generation) List(c echo.Context) error {
	sessionID, ok := httpmw.GetSessionID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrInternal(fmt.Errorf("session middleware not installed")))
	}

	var req agenda.ListGenerationsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}

	records, err := h.service.Generations(c.Request().Context(), sessionID, req.Limit)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("list_generations", err))
	}

	return HandleSuccess(h.logger, c, presenter.ToGenerationListResponse(records))
}

// Get handles GET /agenda/generations/:id
// @Summary      Get one generation attempt
// @Description  Returns a single audit record of the current session
// @Tags         Generations
// @Produce      json
// @Param        id   path      string  true  "Generation record ID"
// @Success      200  {object}  agenda.GenerationRecordResponse  "Generation record"
// @Failure      400  {object}  map[string]interface{}  "Invalid ID"
// @Failure      404  {object}  map[string]interface{}  "Record not found"
// @Failure      501  {object}  map[string]interface{}  "Audit log disabled"
// @Router       /agenda/generations/{id} [get]
func (h *Generation) Get(c echo.Context) error {
	sessionID, ok := httpmw.GetSessionID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrInternal(fmt.Errorf("session middleware not installed")))
	}

	var req agenda.GetGenerationRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid generation id"))
	}

	record, err := h.service.Generation(c.Request().Context(), sessionID, id)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrNotFound) {
			return HandleError(h.logger, c, errors.ErrNotFound("Generation record"))
		}
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("find_generation", err))
	}

	return HandleSuccess(h.logger, c, presenter.ToGenerationRecordResponse(record))
}
