package hooks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/liveclient/internal/client/dom"
	"github.com/iudanet/liveclient/pkg/api"
)

type recordingDispatcher struct {
	events []*dom.Event
}

func (d *recordingDispatcher) Dispatch(target *dom.Node, ev *dom.Event) {
	ev.Target = target
	d.events = append(d.events, ev)
}

func parseDoc(t *testing.T, body string) *dom.Document {
	t.Helper()

	doc, err := dom.ParseDocument(strings.NewReader("<!DOCTYPE html><html><head></head><body>" + body + "</body></html>"))
	require.NoError(t, err)
	return doc
}

func TestRegisterBuiltins(t *testing.T) {
	p := New()
	RegisterBuiltins(p)
	assert.True(t, RegisterDiffApply(p))
	assert.False(t, RegisterDiffApply(p))

	assert.Equal(t, []string{KeyPreventDefault, KeyStopPropagation, KeyPreemptDisable}, p.DecoratorKeys())
	assert.Equal(t, []string{KeyFocus, KeyScrollTop, KeyDiffApply}, p.PostBatchKeys())
}

func TestBuiltins_Decorators(t *testing.T) {
	p := New()
	RegisterBuiltins(p)

	btn := dom.NewElement("button",
		dom.Attr{Name: dom.AttrPreventDefault, Value: ""},
		dom.Attr{Name: dom.AttrStopPropagation, Value: ""},
		dom.Attr{Name: dom.AttrPreemptDisable, Value: "click"},
	)
	ev := dom.NewEvent("click", btn)
	ev.CurrentTarget = btn

	msg := api.NewEvent("h1")
	out := p.DecorateEvent(ev, &msg)

	require.NotNil(t, out)
	assert.True(t, ev.DefaultPrevented())
	assert.True(t, ev.PropagationStopped())
	assert.True(t, btn.IsDisabled())
}

func TestBuiltins_PreemptDisableOtherEvent(t *testing.T) {
	p := New()
	RegisterBuiltins(p)

	btn := dom.NewElement("button", dom.Attr{Name: dom.AttrPreemptDisable, Value: "click"})
	ev := dom.NewEvent("mouseenter", btn)
	ev.CurrentTarget = btn

	msg := api.NewEvent("h1")
	p.DecorateEvent(ev, &msg)

	assert.False(t, btn.IsDisabled())
	assert.False(t, ev.DefaultPrevented())
}

func TestBuiltins_FocusAndScroll(t *testing.T) {
	doc := parseDoc(t, `<input id="a" value="hello" data-hlive-focus/>`+
		`<div id="log" data-scrollTop="120.7"></div><div id="bad" data-scrolltop="abc"></div>`)

	p := New()
	RegisterBuiltins(p)
	p.AfterBatch(Batch{Document: doc})

	input := doc.GetElementByID("a")
	assert.Same(t, input, doc.ActiveElement())
	assert.Equal(t, 5, input.Caret())
	assert.Equal(t, 120, doc.GetElementByID("log").ScrollTop())
	assert.Equal(t, 0, doc.GetElementByID("bad").ScrollTop())
}

func TestBuiltins_DiffApply(t *testing.T) {
	doc := parseDoc(t, `<div id="a" data-hlive-on="h1|diffapply"></div><div id="b" data-hlive-on="h2|click"></div>`)

	// слушатели ставит менеджер событий, здесь вручную
	doc.GetElementByID("a").SetListeners("h1|diffapply", []*dom.Listener{{Event: "diffapply", HandlerIDs: []string{"h1"}}})
	doc.GetElementByID("b").SetListeners("h2|click", []*dom.Listener{{Event: "click", HandlerIDs: []string{"h2"}}})

	p := New()
	RegisterDiffApply(p)

	d := &recordingDispatcher{}
	p.AfterBatch(Batch{Document: doc, Dispatcher: d})

	require.Len(t, d.events, 1)
	assert.Equal(t, EventDiffApply, d.events[0].Type)
	assert.Same(t, doc.GetElementByID("a"), d.events[0].Target)
}
