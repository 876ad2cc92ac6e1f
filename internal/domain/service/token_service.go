package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the access-token claims the API relies on.
type Claims struct {
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// TokenService validates bearer tokens issued by the external authorization server.
type TokenService interface {
	// ValidateToken parses tokenString and verifies its signature and expiry.
	ValidateToken(tokenString string) (*Claims, error)
}
