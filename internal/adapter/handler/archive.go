package handler

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/agendacraft/errors"
	httpmw "github.com/johnquangdev/agendacraft/internal/infrastructure/http/middleware"
)

// ArchiveLister lists archived object keys under a prefix
type ArchiveLister interface {
	ListFiles(ctx context.Context, prefix string) ([]string, error)
}

// Archive serves the caller's archived source documents
type Archive struct {
	lister ArchiveLister
	logger *zap.Logger
}

// NewArchiveHandler creates a new archive handler
func NewArchiveHandler(lister ArchiveLister, logger *zap.Logger) *Archive {
	return &Archive{
		lister: lister,
		logger: logger,
	}
}

// ListUploads handles GET /agenda/uploads
// @Summary      List archived uploads of this session
// @Description  Returns the object keys of source documents archived for the current session
// @Tags         Agenda
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "Archived object keys"
// @Failure      500  {object}  map[string]interface{}  "Storage error"
// @Failure      501  {object}  map[string]interface{}  "Archive disabled"
// @Router       /agenda/uploads [get]
func (h *Archive) ListUploads(c echo.Context) error {
	sessionID, ok := httpmw.GetSessionID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrInternal(fmt.Errorf("session middleware not installed")))
	}

	prefix := fmt.Sprintf("uploads/%s/", sessionID)
	keys, err := h.lister.ListFiles(c.Request().Context(), prefix)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("list_uploads", err))
	}
	if keys == nil {
		keys = []string{}
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"uploads": keys,
		"total":   len(keys),
	})
}
