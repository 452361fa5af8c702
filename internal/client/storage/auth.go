package storage

import "context"

//go:generate moq -out token_mock.go . TokenStorage

// TokenStorage keeps the bearer token presented on the WebSocket handshake
type TokenStorage interface {
	SaveToken(ctx context.Context, token string) error

	// GetToken returns ErrTokenNotFound if no token is stored
	GetToken(ctx context.Context) (string, error)

	DeleteToken(ctx context.Context) error
}
