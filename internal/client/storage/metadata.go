package storage

import (
	"context"

	"github.com/iudanet/liveclient/internal/models"
)

//go:generate moq -out state_mock.go . StateStorage

// StateStorage persists client identity and per-page connection state
type StateStorage interface {
	// NodeID returns the stable id of this client installation, generating it on first use
	NodeID(ctx context.Context) (string, error)

	// SavePageState stores the state of one page, keyed by its URL
	SavePageState(ctx context.Context, state *models.PageState) error

	// GetPageState returns ErrPageStateNotFound when nothing is stored for url
	GetPageState(ctx context.Context, url string) (*models.PageState, error)

	// DeletePageState forgets the page
	DeletePageState(ctx context.Context, url string) error
}
