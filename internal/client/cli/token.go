package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/iudanet/liveclient/internal/client/auth"
	"github.com/iudanet/liveclient/internal/config"
)

// TokenInput sources of the token for "token set"
type TokenInput struct {
	FromFile string
	FromArgs string
}

// EnvToken overrides every other token source of "token set"
const EnvToken = config.EnvPrefix + "TOKEN"

// RunTokenSet stores the bearer token presented on the page request and the handshake
func (c *Cli) RunTokenSet(ctx context.Context, in TokenInput) error {
	token, err := c.readToken(in)
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}

	if exp, ok := auth.Expiry(token); ok && time.Now().After(exp) {
		return fmt.Errorf("%w at %s", auth.ErrTokenExpired, exp.Format(time.RFC3339))
	}

	state, err := c.openState(ctx)
	if err != nil {
		return err
	}
	defer closeQuietly(c.logger, "state", state)

	if err := state.SaveToken(ctx, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	c.io.Println("✓ Token saved")
	return nil
}

// RunTokenClear removes the stored token
func (c *Cli) RunTokenClear(ctx context.Context) error {
	state, err := c.openState(ctx)
	if err != nil {
		return err
	}
	defer closeQuietly(c.logger, "state", state)

	if err := state.DeleteToken(ctx); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}

	c.io.Println("✓ Token removed")
	return nil
}

// readToken reads the token from various sources with priority:
// 1. Environment variable LIVECLIENT_TOKEN
// 2. File specified in FromFile
// 3. Command-line argument
// 4. Interactive prompt (fallback)
func (c *Cli) readToken(in TokenInput) (string, error) {
	if token := strings.TrimSpace(os.Getenv(EnvToken)); token != "" {
		return token, nil
	}

	if in.FromFile != "" {
		content, err := os.ReadFile(in.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read token file: %w", err)
		}
		return nonEmpty(string(content))
	}

	if in.FromArgs != "" {
		return nonEmpty(in.FromArgs)
	}

	token, err := c.io.ReadPassword("Bearer token: ")
	if err != nil {
		return "", err
	}
	return nonEmpty(token)
}

func nonEmpty(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}
