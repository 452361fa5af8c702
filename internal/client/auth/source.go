// Package auth выдает bearer токен для WebSocket handshake
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/liveclient/internal/client/conn"
	"github.com/iudanet/liveclient/internal/client/storage"
)

var (
	// ErrNoToken indicates that neither a static nor a stored token is available
	ErrNoToken = errors.New("no bearer token")

	// ErrTokenExpired indicates that the token's exp claim is in the past
	ErrTokenExpired = errors.New("bearer token expired")
)

// Compile-time check that Source implements conn.TokenSource
var _ conn.TokenSource = (*Source)(nil)

// Source provides the bearer token. A static token takes precedence over the stored one.
type Source struct {
	store  storage.TokenStorage
	now    func() time.Time
	static string
	// leeway допуск на расхождение часов
	leeway time.Duration
}

// NewSource creates a token source; store may be nil when only a static token is used
func NewSource(static string, store storage.TokenStorage) *Source {
	return &Source{
		static: strings.TrimSpace(static),
		store:  store,
		now:    time.Now,
		leeway: 5 * time.Second,
	}
}

// Token returns the current token. JWT tokens are checked for expiry without
// verifying the signature; opaque tokens are returned as is.
func (s *Source) Token(ctx context.Context) (string, error) {
	token := s.static
	if token == "" {
		if s.store == nil {
			return "", ErrNoToken
		}

		stored, err := s.store.GetToken(ctx)
		if errors.Is(err, storage.ErrTokenNotFound) {
			return "", ErrNoToken
		}
		if err != nil {
			return "", fmt.Errorf("failed to load token: %w", err)
		}
		token = stored
	}

	if err := s.checkExpiry(token); err != nil {
		return "", err
	}

	return token, nil
}

// Expiry returns the exp claim of a JWT token; ok is false for opaque tokens
// and tokens without exp
func Expiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

func (s *Source) checkExpiry(token string) error {
	exp, ok := Expiry(token)
	if !ok {
		return nil
	}

	if s.now().After(exp.Add(s.leeway)) {
		return fmt.Errorf("%w at %s", ErrTokenExpired, exp.Format(time.RFC3339))
	}

	return nil
}
