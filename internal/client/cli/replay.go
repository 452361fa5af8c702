package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/liveclient/internal/client/live"
	"github.com/iudanet/liveclient/internal/models"
)

// RunReplay rebuilds a journaled run offline: the recorded page is loaded, every
// inbound frame is applied in order and the resulting document is printed.
// An empty runID picks the latest run of the configured URL, or of any URL.
func (c *Cli) RunReplay(ctx context.Context, runID string) error {
	j, err := c.openJournal(ctx)
	if err != nil {
		return err
	}
	defer closeQuietly(c.logger, "journal", j)

	var run *models.JournalRun
	if runID != "" {
		run, err = j.Run(ctx, runID)
	} else {
		run, err = j.LatestRun(ctx, c.cfg.URL)
	}
	if err != nil {
		return fmt.Errorf("failed to find run: %w", err)
	}

	frames, err := j.Frames(ctx, run.ID)
	if err != nil {
		return fmt.Errorf("failed to read frames: %w", err)
	}

	client := live.New(live.Options{Logger: c.logger, URL: run.URL}, live.Deps{})
	if err := client.LoadPage(ctx, strings.NewReader(run.Page)); err != nil {
		return fmt.Errorf("failed to load recorded page: %w", err)
	}

	applied := 0
	for _, f := range frames {
		if f.Direction != models.DirectionInbound || f.Binary {
			continue
		}
		if err := client.ProcessBatch(ctx, string(f.Payload)); err != nil {
			return fmt.Errorf("failed to replay frame %d: %w", f.ID, err)
		}
		applied++
	}

	c.logger.Info("Run replayed",
		"run", run.ID,
		"url", run.URL,
		"frames", len(frames),
		"applied", applied,
	)

	c.io.Println(client.Document().HTML())
	return nil
}
