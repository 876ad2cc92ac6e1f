package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"logistics/internal/delivery/api/validator"
	deliverycontext "logistics/internal/delivery/context"
	domainerrors "logistics/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "not found",
			err:        domainerrors.ErrNotFound.WrapMessage("failed to find customer"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":{"code":"NOT_FOUND","message":"Not found."},"meta":{"request_id":"req-1"}}`,
		},
		{
			name:       "invalid page",
			err:        errors.Wrap(domainerrors.ErrInvalidPage, "page 9 is past the last page"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":{"code":"INVALID_PAGE","message":"Invalid page."},"meta":{"request_id":"req-1"}}`,
		},
		{
			name:       "conflict hides driver detail",
			err:        domainerrors.ErrConflict.WithDetails("UNIQUE constraint failed: customers.c_id").WrapMessage("failed to create customer"),
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":{"code":"CONFLICT","message":"A record with this identifier already exists."},"meta":{"request_id":"req-1"}}`,
		},
		{
			name:       "missing parent",
			err:        domainerrors.ErrReferentialIntegrity.WithDetails("FOREIGN KEY constraint failed"),
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":{"code":"REFERENCE_NOT_FOUND","message":"A referenced record does not exist."},"meta":{"request_id":"req-1"}}`,
		},
		{
			name:       "unavailable",
			err:        domainerrors.ErrUnavailable.WithDetails("context deadline exceeded"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"error":{"code":"SERVICE_UNAVAILABLE","message":"The service is temporarily unavailable, please retry."},"meta":{"request_id":"req-1"}}`,
		},
		{
			name:       "unexpected store failure",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("pq: relation does not exist"), "failed to list customers"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"code":"DATABASE_ERROR","message":"A database error occurred"},"meta":{"request_id":"req-1"}}`,
		},
		{
			name:       "field validation",
			err:        errors.Wrap(validator.FieldErrors{"E_NAME": "This field is required."}, "invalid employee"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":{"code":"VALIDATION_FAILED","message":"Input validation failed.","details":{"E_NAME":"This field is required."}},"meta":{"request_id":"req-1"}}`,
		},
		{
			name:       "echo error",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"error":{"code":"METHOD_NOT_ALLOWED","message":"Method Not Allowed"},"meta":{"request_id":"req-1"}}`,
		},
		{
			name:       "rate limited",
			err:        echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded"),
			wantStatus: http.StatusTooManyRequests,
			wantBody:   `{"error":{"code":"THROTTLED","message":"rate limit exceeded"},"meta":{"request_id":"req-1"}}`,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"code":"INTERNAL_ERROR","message":"Internal server error, please try again later."},"meta":{"request_id":"req-1"}}`,
		},
	}

	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))
	e := echo.New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/customers", nil), rec)
			deliverycontext.SetRequestID(c, "req-1")

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
