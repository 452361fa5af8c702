package conn

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Типы фреймов, совпадают с gorilla/websocket
const (
	TextMessage   = websocket.TextMessage
	BinaryMessage = websocket.BinaryMessage
)

//go:generate moq -out dialer_mock.go . Dialer

// Conn is one established connection. One goroutine may read while another writes.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Dialer opens connections
type Dialer interface {
	DialContext(ctx context.Context, url string, header http.Header) (Conn, error)
}

// WebSocketDialer dials with gorilla/websocket
type WebSocketDialer struct {
	Dialer *websocket.Dialer
}

// NewWebSocketDialer создает dialer с таймаутом рукопожатия
func NewWebSocketDialer(handshakeTimeout time.Duration) *WebSocketDialer {
	d := *websocket.DefaultDialer
	d.HandshakeTimeout = handshakeTimeout
	return &WebSocketDialer{Dialer: &d}
}

// DialContext implements Dialer
func (d *WebSocketDialer) DialContext(ctx context.Context, url string, header http.Header) (Conn, error) {
	ws, resp, err := d.Dialer.DialContext(ctx, url, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("failed to dial %s: %s: %w", url, resp.Status, err)
		}
		return nil, fmt.Errorf("failed to dial %s: %w", url, err)
	}
	return ws, nil
}
