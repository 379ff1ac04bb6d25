package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/benjaminhze/cribhunter/internal/domain"
	"github.com/benjaminhze/cribhunter/internal/infrastructure/logging"
)

type ErrorResponse struct {
	Detail  string `json:"detail"`
	Success bool   `json:"success"`
	Code    string `json:"code"`
}

func statusForKind(kind domain.Kind) int {
	switch kind {
	case domain.KindAuthentication:
		return http.StatusUnauthorized
	case domain.KindAuthorization:
		return http.StatusForbidden
	case domain.KindValidation, domain.KindConflict:
		return http.StatusBadRequest
	case domain.KindUnprocessable:
		return http.StatusUnprocessableEntity
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewHTTPErrorHandler renders every error as an ErrorResponse. Causes of
// server-side failures are logged and never sent to the client.
func NewHTTPErrorHandler(logger *logging.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			status   int
			response ErrorResponse
		)
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			response = ErrorResponse{
				Detail: fmt.Sprint(httpErr.Message),
				Code:   strings.ReplaceAll(strings.ToLower(http.StatusText(status)), " ", "_"),
			}
		} else {
			kind := domain.KindOf(err)
			status = statusForKind(kind)
			response = ErrorResponse{Detail: domain.MessageOf(err), Code: kind.String()}
		}

		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", status,
				"error", err,
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, response)
		}
		if err != nil {
			logger.Warn("failed to write error response", "error", err)
		}
	}
}
