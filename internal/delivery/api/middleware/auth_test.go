package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "logistics/internal/delivery/context"
	"logistics/internal/domain/service"
	mockService "logistics/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(*mockService.MockTokenService)
		wantStatus int
		wantCode   string
		wantLog    string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "MISSING_TOKEN",
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN_FORMAT",
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(tokenSvc *mockService.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(tokenSvc *mockService.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{
					Scope:            "read",
					RegisteredClaims: jwt.RegisteredClaims{Subject: "dispatcher-7"},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantLog:    "subject=dispatcher-7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			var logs bytes.Buffer
			requestLogger := slog.New(slog.NewTextHandler(&logs, nil))

			e := echo.New()
			e.GET("/api/employees", func(c echo.Context) error {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("Handled")

				return c.NoContent(http.StatusOK)
			}, NewAuthMiddleware(tokenSvc).Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
			req = req.WithContext(deliverycontext.WithLogger(req.Context(), requestLogger))
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), `"code":"`+tt.wantCode+`"`)
			}
			if tt.wantLog != "" {
				assert.Contains(t, logs.String(), tt.wantLog)
			}
		})
	}
}
