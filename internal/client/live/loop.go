package live

import (
	"context"
	"errors"

	"github.com/iudanet/liveclient/internal/client/conn"
)

// Run connects and serves the page until ctx is done or the connection is permanently
// lost. Frames, interactions posted with Do and connection events all run on the
// calling goroutine; the outbox is flushed after each of them.
func (c *Client) Run(ctx context.Context) error {
	if c.doc == nil {
		return ErrNotLoaded
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- c.conn.Run(ctx, &handler{client: c, ctx: ctx})
	}()

	for {
		select {
		case task := <-c.tasks:
			task()
		case err := <-done:
			// задачи передаются без буфера и ждут завершения, так что очередь пуста
			return err
		}
	}
}

// Do runs fn on the client loop and waits for it. Use it to touch the document or
// simulate interactions while Run is active.
func (c *Client) Do(ctx context.Context, fn func(c *Client)) error {
	finished := make(chan struct{})

	task := func() {
		defer close(finished)
		fn(c)
		c.flush()
	}

	select {
	case c.tasks <- task:
	case <-ctx.Done():
		return ctx.Err()
	}

	<-finished
	return nil
}

func (c *Client) flush() {
	err := c.conn.Flush()
	switch {
	case err == nil:
	case errors.Is(err, conn.ErrNotConnected):
		c.logger.Debug("Outgoing messages dropped", "state", c.conn.State().String())
	default:
		c.logger.Warn("Failed to send messages", "error", err)
	}
}

// post runs fn on the loop and waits until it and the following flush are done,
// so the reader does not take the next frame before replies to this one are sent
func (c *Client) post(ctx context.Context, fn func()) {
	_ = c.Do(ctx, func(*Client) { fn() })
}

// handler переводит события соединения в задачи цикла
type handler struct {
	client *Client
	ctx    context.Context
}

func (h *handler) OnOpen() {
	h.client.post(h.ctx, func() {
		h.client.logger.Debug("Connected", "session_id", h.client.conn.SessionID())
	})
}

func (h *handler) OnFrame(frame string) {
	h.client.post(h.ctx, func() {
		if err := h.client.ProcessBatch(h.ctx, frame); err != nil {
			h.client.logger.Debug("Frame ignored", "error", err)
		}
	})
}

func (h *handler) OnClose(err error) {
	h.client.logger.Debug("Connection closed", "error", err)
}

func (h *handler) OnPermanentClose() {
	h.client.post(h.ctx, func() {
		h.client.closed = true
		h.client.doc.ShowOverlay(OverlayMessage)
	})
}
