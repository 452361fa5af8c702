package live

import (
	"context"

	"github.com/iudanet/liveclient/internal/client/conn"
	"github.com/iudanet/liveclient/internal/client/hooks"
	"github.com/iudanet/liveclient/internal/client/wire"
	"github.com/iudanet/liveclient/internal/models"
	"github.com/iudanet/liveclient/pkg/api"
)

// ProcessBatch applies one inbound frame: parse, reorder deletes, apply each record,
// rebind, initial sync, post-batch actions. A bad record is reported and skipped.
func (c *Client) ProcessBatch(ctx context.Context, frame string) error {
	if c.doc == nil {
		return ErrNotLoaded
	}
	if c.closed {
		return conn.ErrConnectionLost
	}

	c.recordInbound(ctx, frame)

	records, errs := wire.ParseBatch(frame, c.pipeline.InterceptMessage)
	for _, err := range errs {
		c.report("Malformed record dropped", err)
	}

	applied := 0
	for _, rec := range wire.ReorderDeletes(records) {
		switch r := rec.(type) {
		case *models.SessionRecord:
			c.logger.Debug("Session assigned", "session_id", r.SessionID)
			c.conn.SetSessionID(r.SessionID)
			c.saveSession(ctx, r.SessionID)
		case *models.DiffRecord:
			if err := c.applier.Apply(r); err != nil {
				c.report("Record not applied", err)
				continue
			}
			applied++
		}
	}

	c.events.Rebind()
	c.events.InitialSync()

	// diffapply должен идти последним среди post-batch действий
	if !c.diffApplyRegistered {
		hooks.RegisterDiffApply(c.pipeline)
		c.diffApplyRegistered = true
	}
	c.pipeline.AfterBatch(hooks.Batch{Document: c.doc, Dispatcher: c.events})

	c.logger.Debug("Batch applied", "records", len(records), "applied", applied, "errors", len(errs))

	return nil
}

// report logs a local error and forwards it to the server while connected.
// Forwarding only queues a message.
func (c *Client) report(msg string, err error) {
	c.logger.Warn(msg, "error", err)

	if c.conn != nil && c.conn.State() == conn.Open {
		c.conn.Enqueue(api.NewLog(msg + ": " + err.Error()))
	}
}
