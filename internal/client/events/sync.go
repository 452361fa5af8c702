package events

import (
	"github.com/iudanet/liveclient/internal/client/dom"
	"github.com/iudanet/liveclient/internal/client/hooks"
)

// события, которые получают начальную синхронизацию
var initialSyncEvents = []string{EventKeyUp, EventKeyDn, EventChange, EventInput}

// InitialSyncDone reports whether the initial sync already ran
func (m *Manager) InitialSyncDone() bool { return m.initialSyncDone }

// InitialSync reports pre-existing form state (autofill, restored drafts) once per page life.
// It does nothing until the document has bound elements. Every bound input, textarea or select
// whose live state differs from its markup default sends its key/change handlers with init=true.
func (m *Manager) InitialSync() {
	if m.initialSyncDone {
		return
	}

	bound := m.doc.FindAll(func(n *dom.Node) bool { return n.HasListeners() })
	if len(bound) == 0 {
		return
	}
	m.initialSyncDone = true

	for _, n := range bound {
		if !n.HasLiveValue() || n.IsFileInput() || !changedFromDefault(n) {
			continue
		}

		m.logger.Debug("Initial sync", "tag", n.Tag, "component_id", n.ComponentID())

		for _, event := range initialSyncEvents {
			l := n.Listener(event)
			if l == nil {
				continue
			}

			ev := dom.NewEvent(event, n)
			ev.CurrentTarget = n
			ev.Initial = true
			for _, id := range l.HandlerIDs {
				m.send(n, ev, id)
			}
		}
	}
}

func changedFromDefault(n *dom.Node) bool {
	switch {
	case n.IsCheckable():
		return n.Checked() != n.DefaultChecked()
	case n.Tag == "select":
		for _, opt := range n.Options() {
			if opt.Selected() != opt.DefaultSelected() {
				return true
			}
		}
		return false
	}
	return n.Value() != n.DefaultValue()
}

// SendUploads is a post-batch action: every bound file input carrying the upload attribute
// sends its selected files as binary messages, once per attribute value.
func (m *Manager) SendUploads(b hooks.Batch) {
	for n, v := range m.uploaded {
		if cur, ok := n.Attr(dom.AttrUpload); !ok || cur != v || !b.Document.Contains(n) {
			delete(m.uploaded, n)
		}
	}

	for _, n := range b.Document.QueryAttr(dom.AttrUpload) {
		if !n.IsFileInput() || n.Listener(EventUpload) == nil || len(n.Files()) == 0 {
			continue
		}

		v, _ := n.Attr(dom.AttrUpload)
		if done, ok := m.uploaded[n]; ok && done == v {
			continue
		}
		m.uploaded[n] = v

		m.logger.Debug("Uploading files", "count", len(n.Files()), "component_id", n.ComponentID())
		m.Dispatch(n, dom.NewEvent(EventUpload, n))
	}
}
