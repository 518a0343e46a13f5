package http

import (
	"errors"
	"net/http"

	"github.com/townkitchenn/fnp-delivery-backend/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorBody is the JSON envelope returned for every failed request.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusForError maps the error taxonomy onto HTTP status codes. Unknown
// errors land on 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidReference),
		errors.Is(err, errs.ErrAlreadyAssigned),
		errors.Is(err, errs.ErrNotAssigned),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInvalidOperation):
		return http.StatusConflict
	case errors.Is(err, errs.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, errs.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// renderError writes the error envelope for err. Server-side failures are
// logged and returned with a generic message unless dev mode is on.
func (s *Server) renderError(ctx echo.Context, err error) error {
	code := statusForError(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Request().URL.Path,
			"error", err)

		message = "internal server error"
		if s.deps.DevMode {
			message = err.Error()
		}
	}

	return ctx.JSON(code, errorBody{Code: code, Message: message})
}
