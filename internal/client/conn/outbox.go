package conn

import (
	"sync"

	"github.com/iudanet/liveclient/pkg/api"
)

// Outbox is the FIFO of messages waiting for the next flush
type Outbox struct {
	queue []api.Message
	mu    sync.Mutex
}

// Enqueue appends msg
func (o *Outbox) Enqueue(msg api.Message) {
	o.mu.Lock()
	o.queue = append(o.queue, msg)
	o.mu.Unlock()
}

// Drain removes and returns everything queued, oldest first
func (o *Outbox) Drain() []api.Message {
	o.mu.Lock()
	defer o.mu.Unlock()

	q := o.queue
	o.queue = nil
	return q
}

// Len returns the number of queued messages
func (o *Outbox) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.queue)
}
