package ds

import (
	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims - токен доступа к API отчетов
type JWTClaims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope,omitempty"`
}
