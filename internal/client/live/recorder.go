package live

import (
	"context"

	"github.com/iudanet/liveclient/internal/models"
)

// Recorder journals the frames of a run, see journal.Journal
type Recorder interface {
	StartRun(ctx context.Context, url, page, nodeID string) (*models.JournalRun, error)
	RecordInbound(ctx context.Context, runID, frame string) error
	RecordOutbound(ctx context.Context, runID string, payload []byte, binary bool) error
}

func (c *Client) startRun(ctx context.Context, page string) {
	if c.deps.Journal == nil {
		return
	}

	nodeID := ""
	if c.deps.State != nil {
		id, err := c.deps.State.NodeID(ctx)
		if err != nil {
			c.logger.Warn("Failed to get node id", "error", err)
		}
		nodeID = id
	}

	run, err := c.deps.Journal.StartRun(ctx, c.opts.URL, page, nodeID)
	if err != nil {
		c.logger.Warn("Journal disabled, failed to start run", "error", err)
		return
	}
	c.run = run
	c.logger.Debug("Journal run started", "run_id", run.ID)
}

func (c *Client) recordInbound(ctx context.Context, frame string) {
	if c.run == nil {
		return
	}
	if err := c.deps.Journal.RecordInbound(ctx, c.run.ID, frame); err != nil {
		c.logger.Warn("Failed to journal inbound frame", "error", err)
	}
}

func (c *Client) recordOutbound(data []byte, binary bool) {
	if c.run == nil {
		return
	}
	// Flush не передает контекст
	if err := c.deps.Journal.RecordOutbound(context.Background(), c.run.ID, data, binary); err != nil {
		c.logger.Warn("Failed to journal outbound frame", "error", err)
	}
}
