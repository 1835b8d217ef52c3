package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordError runs writeError against a fresh echo context and decodes the
// uniform error payload.
func recordError(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	require.NoError(t, writeError(ctx, err))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestWriteError_Unauthenticated_Returns401WithGenericMessage(t *testing.T) {
	code, body := recordError(t, errs.NewUnauthenticatedErrorWithCause(errors.New("token expired")))

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, http.StatusUnauthorized, body.Code)
	assert.Equal(t, "Invalid authentication credentials", body.Message)
	// The underlying cause must never leak to the caller
	assert.NotContains(t, body.Message, "expired")
}

func TestWriteError_Forbidden_Returns403(t *testing.T) {
	code, body := recordError(t, errs.NewForbiddenError("order", "some-id"))

	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Not authorized to access this order", body.Message)
}

func TestWriteError_NotFound_Returns404NamingTheObjectKind(t *testing.T) {
	code, body := recordError(t, errs.NewObjectNotFoundError("order", "some-id"))

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "order not found", body.Message)
}

func TestWriteError_Conflict_Returns400(t *testing.T) {
	code, body := recordError(t, errs.NewConflictError("email", "taken@example.com"))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Email already registered", body.Message)
}

func TestWriteError_InvalidTransition_Returns400WithDetails(t *testing.T) {
	code, body := recordError(t, errs.NewInvalidTransitionError("completed", "cancelled"))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body.Message, "completed")
	assert.Contains(t, body.Message, "cancelled")
}

func TestWriteError_ValidationErrors_Return400(t *testing.T) {
	validationErrs := []error{
		errs.NewValueIsRequiredError("name"),
		errs.NewValueIsInvalidError("quantity"),
		errs.NewValueIsOutOfRangeError("item_name length", 0, 1, 200),
	}

	for _, err := range validationErrs {
		code, body := recordError(t, err)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, err.Error(), body.Message)
	}
}

func TestWriteError_UnknownError_Returns500WithoutDetails(t *testing.T) {
	code, body := recordError(t, errors.New("connection refused"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", body.Message)
	assert.NotContains(t, body.Message, "connection refused")
}
