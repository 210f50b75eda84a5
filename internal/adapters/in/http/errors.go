package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"warehouse/internal/generated/servers"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusFor maps an application error to its HTTP status code.
func StatusFor(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidPrice),
		errors.Is(err, errs.ErrInvalidQuantity),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrValidation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorHandler renders every error returned by a handler or middleware as
// servers.Error. Server errors are logged and their details hidden.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := StatusFor(err)
		message := err.Error()

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			message = fmt.Sprint(httpErr.Message)
		}

		if code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
			message = http.StatusText(code)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, servers.Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}
