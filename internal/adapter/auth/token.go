// Package auth issues and verifies session tokens, carries the signed-in
// user through request contexts and signs users in with Google.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vadimbarashkov/url-shortener-web/internal/entity"
)

// ErrInvalidToken is returned for tokens that are malformed, expired or not signed by us.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues HS256 session tokens whose subject is the username.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue returns a signed token for username and the moment it expires.
func (m *TokenManager) Issue(username string) (string, time.Time, error) {
	const op = "adapter.auth.TokenManager.Issue"

	if username == "" {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, entity.ErrUserRequired)
	}

	now := m.now()
	expiresAt := now.Add(m.ttl)

	claims := &jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: failed to sign token: %w", op, err)
	}

	return token, expiresAt, nil
}

// Parse verifies the token and returns the signed-in user it names.
func (m *TokenManager) Parse(token string) (entity.User, error) {
	const op = "adapter.auth.TokenManager.Parse"

	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return entity.Anonymous, fmt.Errorf("%s: %w: %w", op, ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return entity.Anonymous, fmt.Errorf("%s: %w: missing subject", op, ErrInvalidToken)
	}

	return entity.User{Username: claims.Subject, SignedIn: true}, nil
}
