package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_InsertAt(t *testing.T) {
	parent := NewElement("ul")
	a, b, c := NewElement("li"), NewElement("li"), NewElement("li")

	parent.AppendChild(a)
	parent.AppendChild(c)
	parent.InsertAt(1, b)

	assert.Equal(t, []*Node{a, b, c}, parent.Children())
	assert.Same(t, parent, b.Parent())

	// перенос узла отцепляет его от старого родителя
	other := NewElement("ol")
	other.AppendChild(a)
	assert.Equal(t, []*Node{b, c}, parent.Children())
	assert.Same(t, other, a.Parent())
}

func TestNode_RemoveAndReplace(t *testing.T) {
	parent := NewElement("div")
	a, b := NewText("a"), NewText("b")
	parent.AppendChild(a)
	parent.AppendChild(b)

	r := NewElement("span")
	a.ReplaceWith(r)
	assert.Equal(t, []*Node{r, b}, parent.Children())
	assert.Nil(t, a.Parent())

	b.Remove()
	assert.Equal(t, []*Node{r}, parent.Children())
	assert.False(t, parent.Contains(b))
	assert.True(t, parent.Contains(r))
}

func TestNode_TextContent(t *testing.T) {
	div := NewElement("div")
	p := NewElement("p")
	p.AppendChild(NewText("hello "))
	div.AppendChild(p)
	div.AppendChild(NewComment("ignored"))
	div.AppendChild(NewText("world"))

	assert.Equal(t, "hello world", div.TextContent())

	div.SetTextContent("replaced")
	require.Len(t, div.Children(), 1)
	assert.Equal(t, TextNode, div.Children()[0].Kind)
	assert.Equal(t, "replaced", div.TextContent())

	txt := NewText("old")
	txt.SetTextContent("new")
	assert.Equal(t, "new", txt.Data)
}

func TestNode_Attributes(t *testing.T) {
	n := NewElement("INPUT", Attr{Name: "Type", Value: "text"}, Attr{Name: "name", Value: "q"})

	assert.Equal(t, "input", n.Tag)
	v, ok := n.Attr("type")
	assert.True(t, ok)
	assert.Equal(t, "text", v)

	n.SetAttr("type", "search")
	n.SetAttr("placeholder", "find")
	assert.Equal(t, []Attr{
		{Name: "type", Value: "search"},
		{Name: "name", Value: "q"},
		{Name: "placeholder", Value: "find"},
	}, n.Attrs())

	n.RemoveAttr("NAME")
	assert.False(t, n.HasAttr("name"))
}

func TestNode_ComponentIDIsImmutable(t *testing.T) {
	n := NewElement("div", Attr{Name: AttrComponentID, Value: "c1"})
	n.SetAttr(AttrComponentID, "c2")

	assert.Equal(t, "c1", n.ComponentID())
}

func TestNode_Walk_SkipChildren(t *testing.T) {
	root := NewElement("div")
	skip := NewElement("section")
	skip.AppendChild(NewElement("p"))
	root.AppendChild(skip)
	root.AppendChild(NewElement("span"))

	var tags []string
	root.Walk(func(n *Node) bool {
		tags = append(tags, n.Tag)
		return n.Tag != "section"
	})

	assert.Equal(t, []string{"div", "section", "span"}, tags)
}

func TestNode_Listeners(t *testing.T) {
	n := NewElement("button")
	assert.False(t, n.HasListeners())

	n.SetListeners("h1|click", []*Listener{{Event: "click", HandlerIDs: []string{"h1"}}})
	src, ok := n.ListenerSource()
	assert.True(t, ok)
	assert.Equal(t, "h1|click", src)
	assert.NotNil(t, n.Listener("CLICK"))
	assert.Nil(t, n.Listener("keyup"))

	n.ClearListeners()
	assert.False(t, n.HasListeners())
	assert.Empty(t, n.Listeners())
}
