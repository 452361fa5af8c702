package live

import (
	"context"

	"github.com/iudanet/liveclient/internal/client/conn"
	"github.com/iudanet/liveclient/pkg/api"
)

//go:generate moq -out connection_mock.go . Connection

// Connection is the part of conn.Manager the client drives
type Connection interface {
	Run(ctx context.Context, h conn.Handler) error
	Enqueue(msg api.Message)
	Flush() error
	State() conn.State
	SessionID() string
	SetSessionID(id string)
}

var _ Connection = (*conn.Manager)(nil)

// offline принимает сообщения и выбрасывает их; используется при replay
type offline struct {
	sessionID string
}

func (o *offline) Run(ctx context.Context, h conn.Handler) error { return ErrOffline }
func (o *offline) Enqueue(msg api.Message)                       {}
func (o *offline) Flush() error                                  { return nil }
func (o *offline) State() conn.State                             { return conn.Disconnected }
func (o *offline) SessionID() string                             { return o.sessionID }
func (o *offline) SetSessionID(id string)                        { o.sessionID = id }
