// Package conn управляет WebSocket соединением страницы: подключение, переподключение,
// session ID и отправка исходящих сообщений.
package conn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"github.com/iudanet/liveclient/pkg/api"
)

// Параметры запроса при подключении
const (
	QuerySessionID = "hlive"
	QueryHash      = "hhash"

	// InitialSessionID asks the server for a new session
	InitialSessionID = "1"
)

// Handler receives connection events. OnFrame is called from the reader goroutine.
type Handler interface {
	OnOpen()
	OnFrame(frame string)
	OnClose(err error)
	OnPermanentClose()
}

// TokenSource provides a bearer token for every dial attempt
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Options настройки менеджера соединения
type Options struct {
	Token  TokenSource // optional
	Logger *slog.Logger
	// OnWrite is called from Flush with every frame written to the connection
	OnWrite func(data []byte, binary bool)
	// SessionID is the id presented on the first dial, InitialSessionID when empty
	SessionID      string
	Hash           string
	ReconnectLimit int
}

// Manager owns the connection lifecycle
type Manager struct {
	url     *url.URL
	dialer  Dialer
	token   TokenSource
	logger  *slog.Logger
	conn    Conn
	onWrite func(data []byte, binary bool)
	outbox  Outbox

	sessionID      string
	hash           string
	state          State
	reconnectCount int
	reconnectLimit int
	mu             sync.RWMutex
}

// New creates a manager for the page at pageURL. The http(s) scheme is mapped to ws(s).
func New(pageURL string, dialer Dialer, opts Options) (*Manager, error) {
	if dialer == nil {
		return nil, fmt.Errorf("%w: no dialer", ErrUnsupportedTransport)
	}

	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedTransport, err)
	}

	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return nil, fmt.Errorf("%w: scheme %q", ErrUnsupportedTransport, u.Scheme)
	}
	u.Fragment, u.RawFragment = "", ""

	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = InitialSessionID
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		url:            u,
		dialer:         dialer,
		token:          opts.Token,
		logger:         logger,
		onWrite:        opts.OnWrite,
		sessionID:      sessionID,
		hash:           opts.Hash,
		reconnectLimit: opts.ReconnectLimit,
		state:          Disconnected,
	}, nil
}

// State returns the current state
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// SessionID returns the id the next dial will present
func (m *Manager) SessionID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessionID
}

// SetSessionID replaces the session id; the next (re)connect uses it
func (m *Manager) SetSessionID(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionID = id
}

// SetHash sets the page hash sent on connect
func (m *Manager) SetHash(hash string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hash = hash
}

// ReconnectCount returns the number of reconnects since the last successful open
func (m *Manager) ReconnectCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.reconnectCount
}

// URL returns the address of the next dial
func (m *Manager) URL() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u := *m.url
	q := u.Query()
	q.Set(QuerySessionID, m.sessionID)
	if m.hash != "" {
		q.Set(QueryHash, m.hash)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// Run connects and keeps the connection alive until ctx is done or the reconnect limit
// is exhausted, in which case it returns ErrConnectionLost.
func (m *Manager) Run(ctx context.Context, h Handler) error {
	for {
		m.setState(Connecting)

		c, err := m.dial(ctx)
		if err == nil {
			m.opened(c)
			h.OnOpen()

			err = m.read(ctx, c, h)
			m.closed()
		}

		if ctx.Err() != nil {
			m.setState(Disconnected)
			return ctx.Err()
		}

		h.OnClose(err)

		m.mu.Lock()
		if m.reconnectCount >= m.reconnectLimit {
			m.state = PermanentlyClosed
			m.mu.Unlock()

			m.logger.Error("Connection lost, reconnect limit reached", "limit", m.reconnectLimit, "error", err)
			h.OnPermanentClose()
			return ErrConnectionLost
		}
		m.reconnectCount++
		m.state = Reconnecting
		count := m.reconnectCount
		m.mu.Unlock()

		m.logger.Warn("Connection closed, reconnecting", "attempt", count, "limit", m.reconnectLimit, "error", err)
	}
}

func (m *Manager) dial(ctx context.Context) (Conn, error) {
	header := http.Header{}
	if m.token != nil {
		token, err := m.token.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get token: %w", err)
		}
		header.Set("Authorization", "Bearer "+token)
	}

	target := m.URL()
	m.logger.Debug("Dialing", "url", target)

	c, err := m.dialer.DialContext(ctx, target, header)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (m *Manager) opened(c Conn) {
	m.mu.Lock()
	m.conn = c
	m.state = Open
	m.reconnectCount = 0
	sessionID := m.sessionID
	m.mu.Unlock()

	m.logger.Info("Connection open", "session_id", sessionID)
}

func (m *Manager) closed() {
	m.mu.Lock()
	c := m.conn
	m.conn = nil
	m.state = Closed
	m.mu.Unlock()

	if c != nil {
		_ = c.Close()
	}
}

// read forwards text frames until the connection fails or ctx is done
func (m *Manager) read(ctx context.Context, c Conn, h Handler) error {
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		select {
		case <-ctx.Done():
			_ = c.Close()
		case <-stop:
		}
	}()

	for {
		typ, data, err := c.ReadMessage()
		if err != nil {
			return err
		}
		if typ != TextMessage {
			m.logger.Debug("Ignoring non-text frame", "type", typ, "size", len(data))
			continue
		}
		h.OnFrame(string(data))
	}
}

// Enqueue queues msg for the next Flush
func (m *Manager) Enqueue(msg api.Message) {
	m.outbox.Enqueue(msg)
}

// Pending returns the number of queued messages
func (m *Manager) Pending() int {
	return m.outbox.Len()
}

// Flush writes all queued messages in order. Messages queued while the connection is not
// open are dropped. Only the client loop calls Flush.
func (m *Manager) Flush() error {
	msgs := m.outbox.Drain()
	if len(msgs) == 0 {
		return nil
	}

	m.mu.RLock()
	c, state := m.conn, m.state
	m.mu.RUnlock()

	if c == nil || state != Open {
		m.logger.Debug("Dropping messages, connection not open", "count", len(msgs), "state", state.String())
		return ErrNotConnected
	}

	var errs []error
	for _, msg := range msgs {
		data, err := msg.Encode()
		if err != nil {
			errs = append(errs, err)
			continue
		}

		typ := TextMessage
		if msg.IsBinary() {
			typ = BinaryMessage
		}
		if err := c.WriteMessage(typ, data); err != nil {
			errs = append(errs, fmt.Errorf("failed to write message: %w", err))
			break
		}
		if m.onWrite != nil {
			m.onWrite(data, typ == BinaryMessage)
		}
	}

	return errors.Join(errs...)
}
