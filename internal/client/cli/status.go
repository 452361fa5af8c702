package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/liveclient/internal/client/auth"
	"github.com/iudanet/liveclient/internal/client/storage"
)

// RunStatus prints the node id, the stored session of the configured page and the token state
func (c *Cli) RunStatus(ctx context.Context) error {
	state, err := c.openState(ctx)
	if err != nil {
		return err
	}
	defer closeQuietly(c.logger, "state", state)

	nodeID, err := state.NodeID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get node id: %w", err)
	}

	c.io.Println("=== Client Status ===")
	c.io.Printf("Node ID: %s\n", nodeID)

	if c.cfg.URL != "" {
		c.io.Printf("Page: %s\n", c.cfg.URL)

		page, err := state.GetPageState(ctx, c.cfg.URL)
		switch {
		case errors.Is(err, storage.ErrPageStateNotFound):
			c.io.Println("Session: none")
		case err != nil:
			return fmt.Errorf("failed to get page state: %w", err)
		default:
			c.io.Printf("Session: %s (hash %s, %s)\n",
				page.SessionID, page.Hash, time.Unix(page.UpdatedAt, 0).Format(time.RFC3339))
		}
	}

	token, err := state.GetToken(ctx)
	switch {
	case errors.Is(err, storage.ErrTokenNotFound):
		c.io.Println("Token: not set")
		return nil
	case err != nil:
		return fmt.Errorf("failed to get token: %w", err)
	}

	exp, ok := auth.Expiry(token)
	if !ok {
		c.io.Println("Token: set")
		return nil
	}

	if remaining := time.Until(exp); remaining > 0 {
		c.io.Printf("Token: expires %s (%s remaining)\n", exp.Format(time.RFC3339), remaining.Round(time.Second))
	} else {
		c.io.Printf("⚠️  Token: expired %s\n", exp.Format(time.RFC3339))
	}

	return nil
}
