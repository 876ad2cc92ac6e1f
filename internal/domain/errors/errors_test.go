package errors

import (
	"net/http"
	"testing"

	"logistics/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesDerivedErrors(t *testing.T) {
	derived := ErrNotFound.WithDetails("customer 7")

	assert.True(t, errors.Is(derived, ErrNotFound))
	assert.True(t, errors.Is(derived.WrapMessage("load customer"), ErrNotFound))
	assert.False(t, errors.Is(derived, ErrConflict))
	assert.Equal(t, "Not found.: customer 7", derived.Error())
	assert.Equal(t, "Not found.", derived.Message())
}

func TestAppErrorStatusCodes(t *testing.T) {
	tests := []struct {
		err  AppError
		code int
	}{
		{err: ErrNotFound, code: http.StatusNotFound},
		{err: ErrConflict, code: http.StatusConflict},
		{err: ErrReferentialIntegrity, code: http.StatusConflict},
		{err: ErrUnavailable, code: http.StatusServiceUnavailable},
		{err: ErrValidationFailed, code: http.StatusBadRequest},
		{err: ErrInvalidPage, code: http.StatusNotFound},
		{err: NewDatabaseExecuteError(errors.New("boom"), "list shipments"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.ErrorCode(), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.HTTPCode())
		})
	}
}

func TestDatabaseExecuteError_HidesCauseFromMessage(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	err := NewDatabaseExecuteError(cause, "list shipments")

	assert.Equal(t, "A database error occurred", err.Message())
	assert.Contains(t, err.Error(), "relation does not exist")
	assert.True(t, errors.Is(err, cause))
}
