// Package cli реализует команды клиента поверх live, journal и хранилища состояния
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/iudanet/liveclient/internal/client/conn"
	"github.com/iudanet/liveclient/internal/client/iocli"
	"github.com/iudanet/liveclient/internal/client/journal"
	"github.com/iudanet/liveclient/internal/client/storage/boltdb"
	"github.com/iudanet/liveclient/internal/config"
	"github.com/iudanet/liveclient/internal/logging"
)

var (
	// ErrNoURL indicates that no page URL was configured
	ErrNoURL = errors.New("page url is not set")
	// ErrNoJournal indicates that no journal path was configured
	ErrNoJournal = errors.New("journal path is not set")
	// ErrEmptyToken indicates that an empty token was supplied
	ErrEmptyToken = errors.New("token is empty")
)

// Cli runs client commands against one configuration
type Cli struct {
	cfg        *config.Config
	io         iocli.IO
	logger     *slog.Logger
	dialer     conn.Dialer
	httpClient *http.Client
}

// Option customises a Cli
type Option func(*Cli)

// WithDialer replaces the WebSocket dialer
func WithDialer(d conn.Dialer) Option {
	return func(c *Cli) { c.dialer = d }
}

// WithHTTPClient replaces the client used to fetch pages
func WithHTTPClient(h *http.Client) Option {
	return func(c *Cli) { c.httpClient = h }
}

// New creates a Cli; a nil logger discards logs
func New(cfg *config.Config, io iocli.IO, logger *slog.Logger, opts ...Option) *Cli {
	if logger == nil {
		logger = logging.Discard()
	}

	c := &Cli{
		cfg:    cfg,
		io:     io,
		logger: logger,
		dialer: conn.NewWebSocketDialer(cfg.HandshakeTimeout),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// openState opens the BoltDB state file, creating its directory if needed
func (c *Cli) openState(ctx context.Context) (*boltdb.Storage, error) {
	if err := os.MkdirAll(filepath.Dir(c.cfg.StatePath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	s, err := boltdb.New(ctx, c.cfg.StatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open state: %w", err)
	}
	return s, nil
}

func (c *Cli) openJournal(ctx context.Context) (*journal.Journal, error) {
	if c.cfg.JournalPath == "" {
		return nil, ErrNoJournal
	}

	if err := os.MkdirAll(filepath.Dir(c.cfg.JournalPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	j, err := journal.New(ctx, c.cfg.JournalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	return j, nil
}

func closeQuietly(logger *slog.Logger, name string, closer interface{ Close() error }) {
	if err := closer.Close(); err != nil {
		logger.Warn("Failed to close "+name, "error", err)
	}
}
