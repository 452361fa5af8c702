// Package hooks содержит реестры расширений клиента и встроенные плагины.
package hooks

import (
	"sync"

	"github.com/iudanet/liveclient/internal/client/dom"
	"github.com/iudanet/liveclient/pkg/api"
)

// MessageInterceptor rewrites one inbound raw record before it is parsed.
// Returning an empty string drops the record.
type MessageInterceptor interface {
	InterceptMessage(raw string) string
}

// EventDecorator changes an outgoing event message right before it is queued.
// Returning nil suppresses the message.
type EventDecorator interface {
	DecorateEvent(ev *dom.Event, msg *api.Message) *api.Message
}

// Dispatcher fires synthetic events through the binding manager
type Dispatcher interface {
	Dispatch(target *dom.Node, ev *dom.Event)
}

// Batch is the state a post-batch action works on
type Batch struct {
	Document   *dom.Document
	Dispatcher Dispatcher
}

// PostBatchAction runs once after a batch has been applied and rebound
type PostBatchAction interface {
	AfterBatch(b Batch)
}

// RemovalHook brackets every listener teardown
type RemovalHook interface {
	BeforeRemove(n *dom.Node)
	AfterRemove(n *dom.Node)
}

// MessageInterceptorFunc adapts a function to MessageInterceptor
type MessageInterceptorFunc func(raw string) string

func (f MessageInterceptorFunc) InterceptMessage(raw string) string { return f(raw) }

// EventDecoratorFunc adapts a function to EventDecorator
type EventDecoratorFunc func(ev *dom.Event, msg *api.Message) *api.Message

func (f EventDecoratorFunc) DecorateEvent(ev *dom.Event, msg *api.Message) *api.Message {
	return f(ev, msg)
}

// PostBatchFunc adapts a function to PostBatchAction
type PostBatchFunc func(b Batch)

func (f PostBatchFunc) AfterBatch(b Batch) { f(b) }

// RemovalFuncs adapts a pair of functions to RemovalHook; nil members are skipped
type RemovalFuncs struct {
	Before func(n *dom.Node)
	After  func(n *dom.Node)
}

func (f RemovalFuncs) BeforeRemove(n *dom.Node) {
	if f.Before != nil {
		f.Before(n)
	}
}

func (f RemovalFuncs) AfterRemove(n *dom.Node) {
	if f.After != nil {
		f.After(n)
	}
}

// registry is an insertion ordered key → hook map where the first registration wins
type registry[T any] struct {
	items map[string]T
	keys  []string
	mu    sync.RWMutex
}

func (r *registry[T]) add(key string, v T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[key]; ok {
		return false
	}
	if r.items == nil {
		r.items = make(map[string]T)
	}
	r.items[key] = v
	r.keys = append(r.keys, key)
	return true
}

// snapshot returns the hooks in registration order; hooks may register more hooks while running
func (r *registry[T]) snapshot() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.items[k])
	}
	return out
}

func (r *registry[T]) list() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.keys...)
}

// Pipeline holds the four hook registries.
// Registration is safe from any goroutine; hooks are invoked from the client loop only.
type Pipeline struct {
	interceptors registry[MessageInterceptor]
	decorators   registry[EventDecorator]
	postBatch    registry[PostBatchAction]
	removal      registry[RemovalHook]
}

// New создает пустой pipeline
func New() *Pipeline {
	return &Pipeline{}
}

// RegisterInterceptor adds an inbound record interceptor. It returns false and changes
// nothing when key is already registered.
func (p *Pipeline) RegisterInterceptor(key string, h MessageInterceptor) bool {
	return p.interceptors.add(key, h)
}

// RegisterDecorator adds an outgoing event decorator
func (p *Pipeline) RegisterDecorator(key string, h EventDecorator) bool {
	return p.decorators.add(key, h)
}

// RegisterPostBatch adds a post-batch action
func (p *Pipeline) RegisterPostBatch(key string, h PostBatchAction) bool {
	return p.postBatch.add(key, h)
}

// RegisterRemoval adds a listener teardown hook
func (p *Pipeline) RegisterRemoval(key string, h RemovalHook) bool {
	return p.removal.add(key, h)
}

// InterceptMessage runs the interceptors in order. An empty result stops the chain.
func (p *Pipeline) InterceptMessage(raw string) string {
	for _, h := range p.interceptors.snapshot() {
		raw = h.InterceptMessage(raw)
		if raw == "" {
			return ""
		}
	}
	return raw
}

// DecorateEvent runs the decorators in order. A nil result stops the chain.
func (p *Pipeline) DecorateEvent(ev *dom.Event, msg *api.Message) *api.Message {
	for _, h := range p.decorators.snapshot() {
		msg = h.DecorateEvent(ev, msg)
		if msg == nil {
			return nil
		}
	}
	return msg
}

// AfterBatch runs the post-batch actions in order
func (p *Pipeline) AfterBatch(b Batch) {
	for _, h := range p.postBatch.snapshot() {
		h.AfterBatch(b)
	}
}

// BeforeRemove runs the pre teardown hooks
func (p *Pipeline) BeforeRemove(n *dom.Node) {
	for _, h := range p.removal.snapshot() {
		h.BeforeRemove(n)
	}
}

// AfterRemove runs the post teardown hooks
func (p *Pipeline) AfterRemove(n *dom.Node) {
	for _, h := range p.removal.snapshot() {
		h.AfterRemove(n)
	}
}

// InterceptorKeys returns the interceptor keys in registration order
func (p *Pipeline) InterceptorKeys() []string { return p.interceptors.list() }

// DecoratorKeys returns the decorator keys in registration order
func (p *Pipeline) DecoratorKeys() []string { return p.decorators.list() }

// PostBatchKeys returns the post-batch keys in registration order
func (p *Pipeline) PostBatchKeys() []string { return p.postBatch.list() }

// RemovalKeys returns the teardown hook keys in registration order
func (p *Pipeline) RemovalKeys() []string { return p.removal.list() }
