// Package auth owns password hashing and the signed token the session
// state is persisted as.
//
// Passwords are stored as bcrypt hashes and compared with bcrypt's
// constant-time check. The accept/reject contract is the same as a
// plain string comparison: exact password match succeeds, anything
// else fails.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/foodipy/foodipy/config"
)

// sessionTTL bounds how long a persisted session survives between runs.
const sessionTTL = 30 * 24 * time.Hour

func secret() []byte {
	return []byte(config.AppKey())
}

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// SessionClaims is the typed payload of a persisted session token.
// Payload carries the password-stripped user record.
type SessionClaims[T any] struct {
	Payload T `json:"payload"`
	jwt.RegisteredClaims
}

// SignSession wraps payload in a signed HS256 token.
func SignSession[T any](payload T) (string, error) {
	claims := SessionClaims[T]{
		Payload: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ParseSession validates a session token and returns its payload.
func ParseSession[T any](token string) (T, error) {
	var claims SessionClaims[T]
	parsed, err := jwt.ParseWithClaims(token, &claims, func(tok *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	if !parsed.Valid {
		var zero T
		return zero, jwt.ErrTokenInvalidClaims
	}
	return claims.Payload, nil
}
