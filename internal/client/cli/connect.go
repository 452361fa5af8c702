package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/liveclient/internal/client/auth"
	"github.com/iudanet/liveclient/internal/client/conn"
	"github.com/iudanet/liveclient/internal/client/live"
)

// RunConnect loads the configured page and keeps it live until ctx is done or the
// connection is permanently lost. Cancellation is a clean exit.
func (c *Cli) RunConnect(ctx context.Context) error {
	if c.cfg.URL == "" {
		return ErrNoURL
	}

	state, err := c.openState(ctx)
	if err != nil {
		return err
	}
	defer closeQuietly(c.logger, "state", state)

	deps := live.Deps{
		Dialer: c.dialer,
		State:  state,
	}

	// без токена страница открывается анонимно
	source := auth.NewSource(c.cfg.Token, state)
	switch _, err := source.Token(ctx); {
	case err == nil:
		deps.Token = source
	case !errors.Is(err, auth.ErrNoToken):
		return err
	}

	if c.cfg.JournalPath != "" {
		j, err := c.openJournal(ctx)
		if err != nil {
			return err
		}
		defer closeQuietly(c.logger, "journal", j)
		deps.Journal = j
	}

	client := live.New(live.Options{
		Logger:         c.logger,
		HTTPClient:     c.httpClient,
		Prefill:        c.cfg.Prefill,
		URL:            c.cfg.URL,
		ReconnectLimit: c.cfg.ReconnectLimit,
		ResumeSession:  c.cfg.ResumeSession,
	}, deps)

	if err := client.Load(ctx); err != nil {
		return fmt.Errorf("failed to load page: %w", err)
	}
	c.io.Printf("Connected: %s (%s)\n", c.cfg.URL, client.Document().Title())

	err = client.Run(ctx)

	c.io.Printf("Session: %s\n", client.Connection().SessionID())

	switch {
	case errors.Is(err, context.Canceled):
		c.io.Println("Disconnected")
		return nil
	case errors.Is(err, conn.ErrConnectionLost):
		c.io.Println(live.OverlayMessage)
		return err
	}
	return err
}
