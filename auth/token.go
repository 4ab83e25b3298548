package auth

import (
	"chatroom/errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultIssuer = "auth-issuer"

// TokenManager signs and verifies HS256 tokens for one issuer.
// The chat server only verifies; the authority also issues.
type TokenManager struct {
	key      []byte
	issuer   string
	duration time.Duration
}

func NewTokenManager(secret, issuer string, duration time.Duration) *TokenManager {
	return &TokenManager{key: []byte(secret), issuer: issuer, duration: duration}
}

// Generate creates a signed token whose subject is the user id.
// A zero duration produces a token without expiry.
func (m *TokenManager) Generate(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:  subject,
		Issuer:   m.issuer,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if m.duration != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.duration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrTokenGeneration, err)
	}
	return signed, nil
}

// Validate checks signature, algorithm, issuer and expiry, and returns the claims.
func (m *TokenManager) Validate(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.key, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidToken, jwt.ErrSignatureInvalid)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: subject is missing", errors.ErrInvalidToken)
	}
	return claims, nil
}
