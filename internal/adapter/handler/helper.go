package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/agendacraft/errors"
	usecaseErrors "github.com/johnquangdev/agendacraft/internal/usecase/errors"
	"github.com/johnquangdev/agendacraft/pkg/validator"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID reads the request ID set by echo's RequestID middleware,
// falling back to the X-Request-ID sent by the client
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if rid := c.Response().Header().Get(echo.HeaderXRequestID); rid != "" {
		return rid
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code,
			Message: appErr.Message,
			Info:    info,
			Details: appErr.Details,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}

// toAppError maps use-case errors onto the API error taxonomy
func toAppError(err error, fileName string) error {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrUnsupportedFileType):
		return errors.ErrUnsupportedFileType(fileName)
	case stdErrors.Is(err, usecaseErrors.ErrExtractionFailed):
		return errors.ErrExtractionFailed(fileName, err)
	case stdErrors.Is(err, usecaseErrors.ErrGenerationFailed):
		return errors.ErrAgendaGenerationFailed(err)
	case stdErrors.Is(err, usecaseErrors.ErrGenerationInProgress):
		return errors.ErrGenerationInProgress()
	case stdErrors.Is(err, usecaseErrors.ErrAgendaAlreadyDisplayed):
		return errors.ErrAgendaAlreadyDisplayed()
	case stdErrors.Is(err, usecaseErrors.ErrAgendaNotFound):
		return errors.ErrAgendaNotFound()
	case stdErrors.Is(err, usecaseErrors.ErrUnsupportedExport):
		return errors.ErrInvalidArgument(err.Error())
	default:
		return errors.ErrInternal(err)
	}
}

// validationError reports failed fields by their json names
func validationError(err error) errors.AppError {
	appErr := errors.ErrInvalidArgument("Validation failed")
	for field, tag := range validator.FieldErrors(err) {
		appErr = appErr.WithDetail(field, tag)
	}
	return appErr
}
