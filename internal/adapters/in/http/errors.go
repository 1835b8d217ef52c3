package http

import (
	"errors"
	"net/http"

	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps an application error onto the uniform HTTP error payload.
// Validation, conflict and transition failures all land on 400 like the rest
// of the API's input errors; only genuinely unknown errors become 500, with
// the full error logged server-side and a generic body returned.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		return writeUnauthenticated(ctx)

	case errors.Is(err, errs.ErrForbidden):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "Not authorized to access this order",
		})

	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: notFoundMessage(err),
		})

	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Email already registered",
		})

	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeBadRequest(ctx, err)

	default:
		ctx.Logger().Errorf("internal error: %v", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

// writeBadRequest reports an input validation failure with its message.
func writeBadRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// writeUnauthenticated reports an authentication failure. The body is the
// same for every cause so callers cannot probe which accounts exist.
func writeUnauthenticated(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "Invalid authentication credentials",
	})
}

// notFoundMessage names the missing object kind without echoing internals.
func notFoundMessage(err error) string {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return notFound.ParamName + " not found"
	}
	return "not found"
}
