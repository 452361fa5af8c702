package hooks

import (
	"math"
	"strconv"
	"strings"

	"github.com/iudanet/liveclient/internal/client/dom"
	"github.com/iudanet/liveclient/pkg/api"
)

// Ключи встроенных плагинов
const (
	KeyPreventDefault  = "hlive-prevent-default"
	KeyStopPropagation = "hlive-stop-propagation"
	KeyPreemptDisable  = "hlive-preempt-disable"
	KeyFocus           = "hlive-focus"
	KeyScrollTop       = "hlive-scroll-top"
	KeyDiffApply       = "hlive-diffapply"
)

// EventDiffApply fires on bound elements after every applied batch
const EventDiffApply = "diffapply"

// caret position meaning "end of the value"; SetCaret clamps it
const caretEnd = math.MaxInt32

// RegisterBuiltins registers the built-in plugins except diffapply, see RegisterDiffApply
func RegisterBuiltins(p *Pipeline) {
	p.RegisterDecorator(KeyPreventDefault, EventDecoratorFunc(preventDefault))
	p.RegisterDecorator(KeyStopPropagation, EventDecoratorFunc(stopPropagation))
	p.RegisterDecorator(KeyPreemptDisable, EventDecoratorFunc(preemptDisable))
	p.RegisterPostBatch(KeyFocus, PostBatchFunc(focus))
	p.RegisterPostBatch(KeyScrollTop, PostBatchFunc(scrollTop))
}

// RegisterDiffApply registers the diffapply notification. It must run after every other
// post-batch action, so the client registers it right before the first batch.
func RegisterDiffApply(p *Pipeline) bool {
	return p.RegisterPostBatch(KeyDiffApply, PostBatchFunc(diffApply))
}

func preventDefault(ev *dom.Event, msg *api.Message) *api.Message {
	if ev.CurrentTarget != nil && ev.CurrentTarget.HasAttr(dom.AttrPreventDefault) {
		ev.PreventDefault()
	}
	return msg
}

func stopPropagation(ev *dom.Event, msg *api.Message) *api.Message {
	if ev.CurrentTarget != nil && ev.CurrentTarget.HasAttr(dom.AttrStopPropagation) {
		ev.StopPropagation()
	}
	return msg
}

func preemptDisable(ev *dom.Event, msg *api.Message) *api.Message {
	el := ev.CurrentTarget
	if el == nil {
		return msg
	}
	if on, ok := el.Attr(dom.AttrPreemptDisable); ok && strings.EqualFold(strings.TrimSpace(on), ev.Type) {
		el.SetAttr(dom.AttrDisabled, "")
	}
	return msg
}

func focus(b Batch) {
	for _, el := range b.Document.QueryAttr(dom.AttrFocus) {
		b.Document.Focus(el)
		if el.IsTextEntry() {
			el.SetCaret(caretEnd)
		}
	}
}

func scrollTop(b Batch) {
	for _, el := range b.Document.QueryAttr(dom.AttrScrollTop) {
		v, _ := el.Attr(dom.AttrScrollTop)
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			f = 0
		}
		el.SetScrollTop(int(f))
	}
}

func diffApply(b Batch) {
	if b.Dispatcher == nil {
		return
	}
	for _, el := range b.Document.QueryAttr(dom.AttrOn) {
		if el.Listener(EventDiffApply) == nil {
			continue
		}
		b.Dispatcher.Dispatch(el, dom.NewEvent(EventDiffApply, el))
	}
}
