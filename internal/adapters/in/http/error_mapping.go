package http

import (
	"errors"
	"net/http"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFromError maps application errors to HTTP status codes.
//
// Validation failures are 400, missing objects 404, and every conflict-shaped
// outcome (duplicate serial, illegal transition, lost dispatch race, no drone
// available) is 409. Anything unclassified is a 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, ports.ErrDroneStatusChanged),
		errors.Is(err, ports.ErrOrderStatusChanged),
		errors.Is(err, commands.ErrNoDroneAvailable):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the uniform error body for err. Internal failures hide
// the underlying error text from the client.
func respondError(ctx echo.Context, err error) error {
	code := statusFromError(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
