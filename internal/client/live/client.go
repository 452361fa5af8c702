// Package live собирает зеркальное дерево, применение патчей, события и соединение
// в один клиент страницы. Все изменения дерева выполняются в одной горутине цикла.
package live

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/liveclient/internal/client/conn"
	"github.com/iudanet/liveclient/internal/client/dom"
	"github.com/iudanet/liveclient/internal/client/events"
	"github.com/iudanet/liveclient/internal/client/hooks"
	"github.com/iudanet/liveclient/internal/client/patch"
	"github.com/iudanet/liveclient/internal/client/storage"
	"github.com/iudanet/liveclient/internal/models"
)

// KeyUpload registers the file upload post-batch action
const KeyUpload = "hlive-upload"

// OverlayMessage is the text of the disconnect overlay
const OverlayMessage = "Connection lost. Reload the page to continue."

// Options настройки клиента
type Options struct {
	Logger     *slog.Logger
	HTTPClient *http.Client
	// Prefill simulates form autofill after load, keyed by element id or name
	Prefill        map[string]string
	URL            string
	ReconnectLimit int
	// ResumeSession presents the stored session id when the page hash did not change
	ResumeSession bool
}

// Deps optional collaborators. With neither Connection nor Dialer the client is offline.
type Deps struct {
	Connection Connection // overrides Dialer
	Dialer     conn.Dialer
	Token      conn.TokenSource
	State      storage.StateStorage
	Journal    Recorder
}

// Client is the live view of one page load
type Client struct {
	deps     Deps
	logger   *slog.Logger
	pipeline *hooks.Pipeline
	doc      *dom.Document
	events   *events.Manager
	applier  *patch.Applier
	conn     Connection
	run      *models.JournalRun
	tasks    chan func()
	opts     Options
	hash     string

	diffApplyRegistered bool
	closed              bool
}

// New creates a client; built-in plugins are registered, nothing is loaded yet
func New(opts Options, deps Deps) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		opts:     opts,
		deps:     deps,
		logger:   logger,
		pipeline: hooks.New(),
		tasks:    make(chan func()),
	}

	hooks.RegisterBuiltins(c.pipeline)
	c.pipeline.RegisterPostBatch(KeyUpload, hooks.PostBatchFunc(func(b hooks.Batch) {
		c.events.SendUploads(b)
	}))

	return c
}

// Pipeline returns the extension pipeline; plugins registered before the first batch
// run ahead of diffapply
func (c *Client) Pipeline() *hooks.Pipeline { return c.pipeline }

// Document returns the mirror document, nil before Load
func (c *Client) Document() *dom.Document { return c.doc }

// Connection returns the connection, nil before Load
func (c *Client) Connection() Connection { return c.conn }

// Closed reports whether the connection was permanently lost
func (c *Client) Closed() bool { return c.closed }

// Load fetches the page over HTTP and loads it
func (c *Client) Load(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	if c.deps.Token != nil {
		token, err := c.deps.Token.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	httpClient := c.opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch page: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrPageStatus, resp.Status)
	}

	return c.LoadPage(ctx, resp.Body)
}

// LoadPage parses a server-rendered page and wires the components around it
func (c *Client) LoadPage(ctx context.Context, r io.Reader) error {
	page, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read page: %w", err)
	}

	doc, err := dom.ParseDocument(strings.NewReader(string(page)))
	if err != nil {
		return err
	}

	c.doc = doc
	c.hash, _ = doc.Hash()
	c.closed = false

	if c.conn, err = c.connect(ctx); err != nil {
		return err
	}

	c.events = events.NewManager(doc, c.pipeline, c.conn, c.logger)
	c.applier = patch.NewApplier(doc, c.events, c.logger)

	c.prefill()
	bound := c.events.Rebind()

	c.startRun(ctx, string(page))

	c.logger.Info("Page loaded",
		"url", c.opts.URL,
		"title", doc.Title(),
		"hash", c.hash,
		"bound", bound,
	)

	return nil
}

// connect builds the connection for the loaded page
func (c *Client) connect(ctx context.Context) (Connection, error) {
	if c.deps.Connection != nil {
		return c.deps.Connection, nil
	}
	if c.deps.Dialer == nil {
		return &offline{sessionID: conn.InitialSessionID}, nil
	}

	m, err := conn.New(c.opts.URL, c.deps.Dialer, conn.Options{
		Token:          c.deps.Token,
		Logger:         c.logger,
		SessionID:      c.resumeSessionID(ctx),
		Hash:           c.hash,
		ReconnectLimit: c.opts.ReconnectLimit,
		OnWrite:        c.recordOutbound,
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

// resumeSessionID returns the stored session id of the page if its hash is unchanged
func (c *Client) resumeSessionID(ctx context.Context) string {
	if !c.opts.ResumeSession || c.deps.State == nil {
		return ""
	}

	state, err := c.deps.State.GetPageState(ctx, c.opts.URL)
	if err != nil {
		if !errors.Is(err, storage.ErrPageStateNotFound) {
			c.logger.Warn("Failed to load page state", "error", err)
		}
		return ""
	}

	if state.Hash != c.hash {
		c.logger.Debug("Page changed, starting a new session", "stored_hash", state.Hash, "hash", c.hash)
		return ""
	}

	return state.SessionID
}

// saveSession persists the session id assigned by the server
func (c *Client) saveSession(ctx context.Context, id string) {
	if c.deps.State == nil {
		return
	}

	err := c.deps.State.SavePageState(ctx, &models.PageState{
		URL:       c.opts.URL,
		SessionID: id,
		Hash:      c.hash,
	})
	if err != nil {
		c.logger.Warn("Failed to save session id", "error", err)
	}
}
