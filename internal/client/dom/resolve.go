package dom

import (
	"fmt"
	"strings"

	"github.com/iudanet/liveclient/internal/models"
)

// Target is the result of resolving a record against the mirror tree
type Target struct {
	// Node is the addressed node, or the container for insertions
	Node *Node
	// Index is the position in Node's children where a new node goes
	Index  int
	Insert bool
}

// Resolver maps a record's root and path onto the mirror tree
type Resolver struct {
	doc *Document
}

// NewResolver создает резолвер для документа
func NewResolver(doc *Document) *Resolver {
	return &Resolver{doc: doc}
}

// Resolve walks the record path from its root.
// Create records with text or HTML content stop at the parent: the last segment is
// the insertion index and may equal the number of children.
func (r *Resolver) Resolve(rec *models.DiffRecord) (Target, error) {
	target := r.doc.Root()
	if rec.Root != models.RootDocument {
		target = r.doc.FindComponent(rec.Root)
		if target == nil {
			return Target{}, r.unresolved(rec, "root not found")
		}
	}

	steps := rec.Path
	insert := rec.Type == models.DiffCreate &&
		(rec.Content == models.ContentText || rec.Content == models.ContentHTML)
	if insert && len(steps) != 0 {
		steps = steps[:len(steps)-1]
	}

	for _, idx := range steps {
		children, _ := r.indexable(target)
		if idx >= len(children) {
			return Target{}, r.unresolved(rec, fmt.Sprintf("child %d of %d not found", idx, len(children)))
		}
		target = children[idx]
	}

	if !insert {
		return Target{Node: target}, nil
	}

	children, offset := r.indexable(target)
	idx, ok := rec.Path.Last()
	if !ok {
		// a fresh component path with no index appends to the root
		idx = len(children)
	}
	if idx > len(children) {
		return Target{}, r.unresolved(rec, fmt.Sprintf("insertion index %d beyond %d children", idx, len(children)))
	}

	return Target{Node: target, Index: offset + idx, Insert: true}, nil
}

// indexable returns the children counted by paths and how many leading children were skipped.
// Under the document element leading comments, doctypes and whitespace text are not counted.
func (r *Resolver) indexable(n *Node) ([]*Node, int) {
	children := n.Children()
	if n != r.doc.DocumentElement() {
		return children, 0
	}

	skip := 0
	for skip < len(children) && !isContent(children[skip]) {
		skip++
	}
	return children[skip:], skip
}

func isContent(n *Node) bool {
	switch n.Kind {
	case CommentNode, DoctypeNode:
		return false
	case TextNode:
		return strings.TrimSpace(n.Data) != ""
	}
	return true
}

func (r *Resolver) unresolved(rec *models.DiffRecord, reason string) error {
	return &UnresolvedError{Root: rec.Root, Path: rec.Path.String(), Reason: reason}
}
