// Package events binds server handler IDs to the mirror tree and turns interactions
// into outgoing event messages.
package events

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/iudanet/liveclient/internal/client/dom"
	"github.com/iudanet/liveclient/internal/client/hooks"
	"github.com/iudanet/liveclient/internal/client/wire"
	"github.com/iudanet/liveclient/pkg/api"
)

//go:generate moq -out outbox_mock.go . Outbox

// Outbox принимает исходящие сообщения; отправка откладывается до конца текущей задачи
type Outbox interface {
	Enqueue(msg api.Message)
}

// Имена событий с особой обработкой
const (
	EventUpload = "upload"
	EventInput  = "input"
	EventChange = "change"
	EventKeyUp  = "keyup"
	EventKeyDn  = "keydown"
)

// InitKey marks messages produced by the initial form sync
const InitKey = "init"

// Manager owns the listener tables of the mirror tree
type Manager struct {
	doc      *dom.Document
	pipeline *hooks.Pipeline
	out      Outbox
	logger   *slog.Logger
	// значение data-hlive-upload, для которого файлы уже отправлены
	uploaded        map[*dom.Node]string
	initialSyncDone bool
}

// NewManager создает менеджер событий документа
func NewManager(doc *dom.Document, pipeline *hooks.Pipeline, out Outbox, logger *slog.Logger) *Manager {
	return &Manager{
		doc:      doc,
		pipeline: pipeline,
		out:      out,
		logger:   logger,
		uploaded: make(map[*dom.Node]string),
	}
}

// Rebind rebuilds the listener table of every element carrying the binding attribute
// whose value changed since its table was built. It returns the number of bound elements.
func (m *Manager) Rebind() int {
	bound := 0

	for _, n := range m.doc.QueryAttr(dom.AttrOn) {
		value, _ := n.Attr(dom.AttrOn)

		if src, ok := n.ListenerSource(); ok && src == value {
			bound++
			continue
		}
		if n.HasListeners() {
			m.Unbind(n)
		}

		n.SetListeners(value, buildListeners(wire.ParseBindings(value)))
		bound++
	}

	return bound
}

// buildListeners groups bindings into one listener per event, keeping first-seen order
func buildListeners(bindings []wire.Binding) []*dom.Listener {
	var listeners []*dom.Listener
	byEvent := make(map[string]*dom.Listener)

	for _, b := range bindings {
		l, ok := byEvent[b.Event]
		if !ok {
			l = &dom.Listener{Event: b.Event}
			byEvent[b.Event] = l
			listeners = append(listeners, l)
		}
		if !containsString(l.HandlerIDs, b.HandlerID) {
			l.HandlerIDs = append(l.HandlerIDs, b.HandlerID)
		}
	}

	return listeners
}

// Unbind tears down the listeners of n, bracketed by the removal hooks
func (m *Manager) Unbind(n *dom.Node) {
	if !n.HasListeners() {
		return
	}

	m.pipeline.BeforeRemove(n)
	n.ClearListeners()
	delete(m.uploaded, n)
	m.pipeline.AfterRemove(n)
}

// UnbindTree tears down the listeners of n and all its descendants
func (m *Manager) UnbindTree(n *dom.Node) {
	n.Walk(func(c *dom.Node) bool {
		m.Unbind(c)
		return true
	})
}

// Dispatch fires ev at target. Each element on the propagation path with a listener for
// the event type sends one message per handler ID.
func (m *Manager) Dispatch(target *dom.Node, ev *dom.Event) {
	if m.doc.OverlayShown() {
		m.logger.Debug("Interaction ignored, connection lost", "event", ev.Type)
		return
	}
	if target == nil {
		return
	}

	ev.Type = strings.ToLower(ev.Type)
	ev.Target = target

	if target.IsDisabled() && target.HasValue() && isClickClass(ev.Type) {
		return
	}

	bubbles := Bubbles(ev.Type)
	for cur := target; cur != nil; cur = cur.Parent() {
		if l := cur.Listener(ev.Type); l != nil {
			ev.CurrentTarget = cur
			for _, id := range l.HandlerIDs {
				m.send(cur, ev, id)
			}
		}

		if !bubbles || ev.PropagationStopped() {
			break
		}
	}
	ev.CurrentTarget = nil
}

// send builds the messages for one handler and passes each through the decorators
func (m *Manager) send(n *dom.Node, ev *dom.Event, handlerID string) {
	for _, msg := range Messages(n, ev, handlerID) {
		out := m.pipeline.DecorateEvent(ev, &msg)
		if out == nil {
			m.logger.Debug("Event message suppressed", "handler_id", handlerID, "event", ev.Type)
			continue
		}
		m.out.Enqueue(*out)
	}
}

// Messages builds the outgoing messages for handlerID when ev reaches n.
// File inputs fan out into one message per selected file.
func Messages(n *dom.Node, ev *dom.Event, handlerID string) []api.Message {
	msg := api.NewEvent(handlerID)

	if n.HasValue() {
		msg.SetData("value", n.Value())
	}

	if ev.IsKeyboard() {
		msg.SetData("key", ev.Key)
		msg.SetData("charCode", strconv.Itoa(ev.CharCode))
		msg.SetData("keyCode", strconv.Itoa(ev.KeyCode))
		msg.SetData("shiftKey", strconv.FormatBool(ev.ShiftKey))
		msg.SetData("altKey", strconv.FormatBool(ev.AltKey))
		msg.SetData("ctrlKey", strconv.FormatBool(ev.CtrlKey))
	}

	if ev.Initial {
		msg.SetData(InitKey, "true")
	}

	if n.IsCheckable() && n.Checked() {
		msg.Selected = true
	}

	if n.Tag == "select" && n.HasAttr("multiple") {
		msg.ValueMulti = n.SelectedValues()
	}

	if !n.IsFileInput() {
		return []api.Message{msg}
	}

	files := n.Files()
	if len(files) == 0 {
		msg.File = &api.FileInfo{}
		return []api.Message{msg}
	}

	msgs := make([]api.Message, 0, len(files))
	for i, f := range files {
		fm := msg.Clone()
		fm.File = &api.FileInfo{
			Name:  f.Name,
			Type:  f.Type,
			Size:  f.Len(),
			Index: i,
			Total: len(files),
		}
		if ev.Type == EventUpload {
			fm.Body = f.Data
			if fm.Body == nil {
				fm.Body = []byte{}
			}
		}
		msgs = append(msgs, fm)
	}
	return msgs
}

// Bubbles reports whether events of this type propagate to ancestors
func Bubbles(event string) bool {
	switch event {
	case "focus", "blur", "mouseenter", "mouseleave", hooks.EventDiffApply, EventUpload:
		return false
	}
	return !strings.HasPrefix(event, "animation")
}

func isClickClass(event string) bool {
	switch event {
	case "click", "dblclick", "auxclick", "mousedown", "mouseup", "contextmenu":
		return true
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
