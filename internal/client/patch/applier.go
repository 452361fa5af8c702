// Package patch применяет diff записи к зеркальному дереву.
package patch

import (
	"fmt"
	"log/slog"

	"github.com/iudanet/liveclient/internal/client/dom"
	"github.com/iudanet/liveclient/internal/client/wire"
	"github.com/iudanet/liveclient/internal/models"
)

//go:generate moq -out binder_mock.go . Binder

// Binder tears down listeners before nodes or binding attributes go away
type Binder interface {
	Unbind(n *dom.Node)
	UnbindTree(n *dom.Node)
}

type opKey struct {
	typ     models.DiffType
	content models.ContentType
}

type opFunc func(a *Applier, t dom.Target, rec *models.DiffRecord) error

var ops = map[opKey]opFunc{
	{models.DiffCreate, models.ContentText}:      (*Applier).createText,
	{models.DiffUpdate, models.ContentText}:      (*Applier).updateText,
	{models.DiffCreate, models.ContentHTML}:      (*Applier).createHTML,
	{models.DiffUpdate, models.ContentHTML}:      (*Applier).updateHTML,
	{models.DiffCreate, models.ContentAttribute}: (*Applier).setAttribute,
	{models.DiffUpdate, models.ContentAttribute}: (*Applier).setAttribute,
	{models.DiffDelete, models.ContentAttribute}: (*Applier).deleteAttribute,
	{models.DiffDelete, models.ContentText}:      (*Applier).deleteNode,
	{models.DiffDelete, models.ContentHTML}:      (*Applier).deleteNode,
	{models.DiffDelete, models.ContentNone}:      (*Applier).deleteNode,
}

// Applier executes diff records against the mirror tree
type Applier struct {
	doc      *dom.Document
	resolver *dom.Resolver
	binder   Binder
	logger   *slog.Logger
}

// NewApplier создает applier для документа
func NewApplier(doc *dom.Document, binder Binder, logger *slog.Logger) *Applier {
	return &Applier{
		doc:      doc,
		resolver: dom.NewResolver(doc),
		binder:   binder,
		logger:   logger,
	}
}

// Apply resolves the record target and runs the action for its diff and content type.
// Errors leave the tree untouched; the caller logs them and continues with the next record.
func (a *Applier) Apply(rec *models.DiffRecord) error {
	op, ok := ops[opKey{rec.Type, rec.Content}]
	if !ok {
		return fmt.Errorf("%w: %s/%q", ErrUnsupportedRecord, rec.Type, rec.Content)
	}

	target, err := a.resolver.Resolve(rec)
	if err != nil {
		return err
	}

	return op(a, target, rec)
}

func (a *Applier) decode(rec *models.DiffRecord) (string, error) {
	s, err := wire.DecodePayload(rec.Payload)
	if err != nil {
		return "", &wire.MalformedError{Raw: rec.Raw, Reason: err.Error()}
	}
	return s, nil
}

func (a *Applier) decodeAttribute(rec *models.DiffRecord) (string, string, error) {
	name, value, err := wire.DecodeAttribute(rec.Payload)
	if err != nil {
		return "", "", &wire.MalformedError{Raw: rec.Raw, Reason: err.Error()}
	}
	return name, value, nil
}

func (a *Applier) createText(t dom.Target, rec *models.DiffRecord) error {
	s, err := a.decode(rec)
	if err != nil {
		return err
	}

	t.Node.InsertAt(t.Index, dom.NewText(s))
	return nil
}

func (a *Applier) updateText(t dom.Target, rec *models.DiffRecord) error {
	s, err := a.decode(rec)
	if err != nil {
		return err
	}

	// у элемента заменяются все дети
	for _, c := range t.Node.Children() {
		a.binder.UnbindTree(c)
	}
	t.Node.SetTextContent(s)
	return nil
}

func (a *Applier) fragmentRoot(rec *models.DiffRecord, context *dom.Node) (*dom.Node, error) {
	s, err := a.decode(rec)
	if err != nil {
		return nil, err
	}

	nodes, err := dom.ParseFragment(s, context)
	if err != nil {
		return nil, &wire.MalformedError{Raw: rec.Raw, Reason: err.Error()}
	}

	root := dom.FirstRoot(nodes)
	if root == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFragment, rec.Raw)
	}
	if len(nodes) > 1 {
		a.logger.Debug("Fragment has more than one top-level node, using the first", "count", len(nodes), "root", rec.Root)
	}
	return root, nil
}

func (a *Applier) createHTML(t dom.Target, rec *models.DiffRecord) error {
	root, err := a.fragmentRoot(rec, t.Node)
	if err != nil {
		return err
	}

	t.Node.InsertAt(t.Index, root)
	return nil
}

func (a *Applier) updateHTML(t dom.Target, rec *models.DiffRecord) error {
	parent := t.Node.Parent()
	if parent == nil {
		return fmt.Errorf("%w: %s", ErrDetachedTarget, rec.Raw)
	}

	root, err := a.fragmentRoot(rec, parent)
	if err != nil {
		return err
	}

	a.binder.UnbindTree(t.Node)
	t.Node.ReplaceWith(root)
	return nil
}

func (a *Applier) setAttribute(t dom.Target, rec *models.DiffRecord) error {
	name, value, err := a.decodeAttribute(rec)
	if err != nil {
		return err
	}
	n := t.Node

	switch {
	case name == dom.AttrOn && rec.Type == models.DiffUpdate:
		// новая таблица слушателей строится после батча
		a.binder.Unbind(n)
		n.SetAttr(name, value)
	case name == dom.AttrValue && n.HasLiveValue():
		if value != "" && n.IsTextEntry() && a.doc.ActiveElement() == n {
			a.logger.Debug("Value update skipped, user is typing", "component_id", n.ComponentID())
			return nil
		}
		n.SetValue(value)
	default:
		n.SetAttr(name, value)
	}

	return nil
}

func (a *Applier) deleteAttribute(t dom.Target, rec *models.DiffRecord) error {
	name, _, err := a.decodeAttribute(rec)
	if err != nil {
		return err
	}

	if name == dom.AttrOn {
		a.binder.Unbind(t.Node)
	}
	t.Node.RemoveAttr(name)
	return nil
}

func (a *Applier) deleteNode(t dom.Target, rec *models.DiffRecord) error {
	if t.Node.Parent() == nil {
		return fmt.Errorf("%w: %s", ErrDetachedTarget, rec.Raw)
	}

	a.binder.UnbindTree(t.Node)
	t.Node.Remove()
	return nil
}
