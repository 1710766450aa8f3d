package utils

import (
	"errors"
	"fmt"
	"time"

	"boatyard/internal/app/ds"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// ScopeReadBoats - право на чтение отчетов по лодкам
const ScopeReadBoats = "boats:read"

var ErrEmptyJWTKey = errors.New("jwt key is empty")

// GenerateJWT создаёт токен доступа
func GenerateJWT(key []byte, subject, scope string, ttl time.Duration) (string, error) {
	if len(key) == 0 {
		return "", ErrEmptyJWTKey
	}
	now := time.Now()
	claims := &ds.JWTClaims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(key)
	if err != nil {
		return "", err
	}
	logrus.Debugf("jwt issued for subject=%s scope=%s", subject, scope)
	return tokenStr, nil
}

// ParseJWT проверяет подпись и срок и возвращает Claims
func ParseJWT(key []byte, tokenStr string) (*ds.JWTClaims, error) {
	if len(key) == 0 {
		return nil, ErrEmptyJWTKey
	}
	claims := &ds.JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
