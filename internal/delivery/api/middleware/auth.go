package middleware

import (
	"log/slog"
	"strings"

	"logistics/internal/delivery/api/response"
	deliverycontext "logistics/internal/delivery/context"
	"logistics/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates bearer access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid "Authorization: Bearer <token>" header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authentication credentials were not provided.")
		}

		scheme, tokenString, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token.")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token.")
		}

		// Later log lines of the request name the caller.
		req := c.Request()
		ctx := req.Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).With(slog.String("subject", claims.Subject))
		c.SetRequest(req.WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}
