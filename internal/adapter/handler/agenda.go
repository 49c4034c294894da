package handler

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/agendacraft/errors"
	"github.com/johnquangdev/agendacraft/internal/adapter/dto/agenda"
	"github.com/johnquangdev/agendacraft/internal/adapter/presenter"
	httpmw "github.com/johnquangdev/agendacraft/internal/infrastructure/http/middleware"
	agendaUsecase "github.com/johnquangdev/agendacraft/internal/usecase/agenda"
)

const uploadFormField = "file"

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Agenda handles agenda session HTTP requests
type Agenda struct {
	service        *agendaUsecase.Service
	logger         *zap.Logger
	maxUploadBytes int64
}

// NewAgendaHandler creates a new agenda handler
func NewAgendaHandler(service *agendaUsecase.Service, maxUploadBytes int64, logger *zap.Logger) *Agenda {
	return &Agenda{
		service:        service,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// GetSession handles GET /agenda
// @Summary      Get the current agenda session
// @Description  Returns the session state, the displayed agenda with per-item minutes, the total duration and the last error
// @Tags         Agenda
// @Produce      json
// @Success      200  {object}  agenda.SessionResponse  "Current session"
// @Failure      500  {object}  map[string]interface{}  "Failed to load session"
// @Router       /agenda [get]
func (h *Agenda) GetSession(c echo.Context) error {
	sessionID, ok := httpmw.GetSessionID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrInternal(fmt.Errorf("session middleware not installed")))
	}

	sess, err := h.service.Current(c.Request().Context(), sessionID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, ""))
	}

	return HandleSuccess(h.logger, c, presenter.ToSessionResponse(sess))
}

// Upload handles POST /agenda/upload
// @Summary      Upload a document and generate an agenda
// @Description  Accepts .docx, .md, .markdown or .txt in the "file" form field, extracts its text and asks the model for a structured agenda
// @Tags         Agenda
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Source document"
// @Success      200  {object}  agenda.SessionResponse  "Agenda generated"
// @Failure      400  {object}  map[string]interface{}  "Missing file"
// @Failure      409  {object}  map[string]interface{}  "Generation in progress or agenda already displayed"
// @Failure      415  {object}  map[string]interface{}  "Unsupported file type"
// @Failure      422  {object}  map[string]interface{}  "Failed to process file"
// @Failure      502  {object}  map[string]interface{}  "Failed to generate agenda"
// @Router       /agenda/upload [post]
func (h *Agenda) Upload(c echo.Context) error {
	sessionID, ok := httpmw.GetSessionID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrInternal(fmt.Errorf("session middleware not installed")))
	}

	fh, err := c.FormFile(uploadFormField)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrMissingFile())
	}
	if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(
			fmt.Sprintf("File is larger than %d bytes", h.maxUploadBytes)))
	}

	f, err := fh.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrExtractionFailed(fh.Filename, err))
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrExtractionFailed(fh.Filename, err))
	}

	sess, err := h.service.Upload(c.Request().Context(), sessionID, fh.Filename, data)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, fh.Filename))
	}

	return HandleSuccess(h.logger, c, presenter.ToSessionResponse(sess))
}

// UpdateDuration handles PUT /agenda/duration
// @Summary      Set the total meeting duration
// @Description  Stores the total meeting length in minutes. Values below 1 become 1. Item minutes are recomputed on the next read.
// @Tags         Agenda
// @Accept       json
// @Produce      json
// @Param        request  body      agenda.UpdateDurationRequest  true  "Total duration in minutes"
// @Success      200      {object}  agenda.SessionResponse  "Updated session"
// @Failure      400      {object}  map[string]interface{}  "Invalid request"
// @Router       /agenda/duration [put]
func (h *Agenda) UpdateDuration(c echo.Context) error {
	sessionID, ok := httpmw.GetSessionID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrInternal(fmt.Errorf("session middleware not installed")))
	}

	var req agenda.UpdateDurationRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}

	sess, err := h.service.SetTotalDuration(c.Request().Context(), sessionID, *req.TotalDuration)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, ""))
	}

	return HandleSuccess(h.logger, c, presenter.ToSessionResponse(sess))
}

// Export handles GET /agenda/export
// @Summary      Export the displayed agenda
// @Description  format=text returns the plain-text clipboard format, format=docx returns a Word document attachment
// @Tags         Agenda
// @Produce      plain
// @Produce      application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param        format  query     string  false  "text (default) or docx"
// @Success      200     {string}  string  "Exported agenda"
// @Failure      400     {object}  map[string]interface{}  "Unknown format"
// @Failure      404     {object}  map[string]interface{}  "No agenda displayed"
// @Router       /agenda/export [get]
func (h *Agenda) Export(c echo.Context) error {
	sessionID, ok := httpmw.GetSessionID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrInternal(fmt.Errorf("session middleware not installed")))
	}

	var req agenda.ExportRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}

	ctx := c.Request().Context()
	switch req.Format {
	case "docx":
		doc, title, err := h.service.ExportDocx(ctx, sessionID)
		if err != nil {
			return HandleError(h.logger, c, exportError("docx", err))
		}
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="%s"`, exportFileName(title)))
		return c.Blob(http.StatusOK, presenter.DocxContentType, doc)
	default:
		text, err := h.service.ExportText(ctx, sessionID)
		if err != nil {
			return HandleError(h.logger, c, exportError("text", err))
		}
		return c.String(http.StatusOK, text)
	}
}

// Reset handles DELETE /agenda
// @Summary      Start a new agenda
// @Description  Discards the displayed agenda and returns to the upload state. The total duration is kept.
// @Tags         Agenda
// @Produce      json
// @Success      200  {object}  agenda.SessionResponse  "Session reset"
// @Failure      409  {object}  map[string]interface{}  "Generation in progress"
// @Router       /agenda [delete]
func (h *Agenda) Reset(c echo.Context) error {
	sessionID, ok := httpmw.GetSessionID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrInternal(fmt.Errorf("session middleware not installed")))
	}

	sess, err := h.service.Reset(c.Request().Context(), sessionID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, ""))
	}

	return HandleSuccess(h.logger, c, presenter.ToSessionResponse(sess))
}

// exportError keeps not-found errors as-is and reports everything else as an export failure
func exportError(format string, err error) error {
	mapped := toAppError(err, "")
	if appErr, ok := mapped.(errors.AppError); ok && appErr.Code == errors.ErrorCode_INTERNAL {
		return errors.ErrExportFailed(format, err)
	}
	return mapped
}

// exportFileName derives an ASCII attachment name from the agenda title
func exportFileName(title string) string {
	name := strings.Trim(unsafeFileChars.ReplaceAllString(title, "-"), "-.")
	if name == "" {
		name = "agenda"
	}
	if len(name) > 80 {
		name = name[:80]
	}
	return name + ".docx"
}
