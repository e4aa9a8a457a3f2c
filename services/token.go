package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dietSurvivalWeb/internal/types/user"
)

const tokenIssuer = "diet-survival-web"

type sessionClaims struct {
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"`
	Provider string `json:"provider,omitempty"`
	jwt.RegisteredClaims
}

// TokenMinter signs the mock bearer tokens handed out at login. The token
// id is the session id.
type TokenMinter struct {
	secret []byte
}

func NewTokenMinter(secret string) *TokenMinter {
	return &TokenMinter{secret: []byte(secret)}
}

func (m *TokenMinter) Mint(u user.SessionUser, sessionID string, issuedAt, expiresAt time.Time) (string, error) {
	claims := sessionClaims{
		Email:    u.Email,
		Role:     u.Role,
		Provider: u.Provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   u.ID,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// SessionID verifies a token and returns the session it names.
func (m *TokenMinter) SessionID(tokenString string) (string, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if claims.ID == "" {
		return "", errors.New("invalid token: missing session id")
	}
	return claims.ID, nil
}
