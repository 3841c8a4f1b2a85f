package htmlnode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/mdsite/core"
)

// Errors signalling a violated node invariant. They point to a defect in the
// code building a tree, never to a problem with Markdown input.
var (
	ErrMissingTag      = errors.New("html node: parent node without tag")
	ErrMissingChildren = errors.New("html node: parent node without children")
	ErrMissingValue    = errors.New("html node: leaf node without value")
)

// Node is a node of an HTML output tree. It is either a *Leaf or a *Parent;
// no other implementations exist.
type Node interface {
	// ToHTML serializes the node and its sub-tree.
	ToHTML() (string, error)
	// Attributes returns the node's attributes, possibly nil.
	Attributes() *Attributes
	writeHTML(*strings.Builder) error
}

// --- Leaf ------------------------------------------------------------------

// Leaf is a node without children. An empty Tag denotes raw text.
// Value must be set, but may point to an empty string.
type Leaf struct {
	Tag   string
	Value *string
	Attrs *Attributes
}

// Text creates an untagged leaf holding raw text.
func Text(value string) *Leaf {
	return &Leaf{Value: &value}
}

// NewLeaf creates a leaf node. attrs may be nil.
func NewLeaf(tag string, value string, attrs *Attributes) *Leaf {
	return &Leaf{Tag: tag, Value: &value, Attrs: attrs}
}

// Attributes is part of interface Node.
func (l *Leaf) Attributes() *Attributes {
	return l.Attrs
}

// ToHTML returns the raw value for untagged leafs, and
// `<tag attrs>value</tag>` otherwise.
func (l *Leaf) ToHTML() (string, error) {
	var b strings.Builder
	if err := l.writeHTML(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (l *Leaf) writeHTML(b *strings.Builder) error {
	if l.Value == nil {
		return core.WrapError(ErrMissingValue, core.EINTERNAL,
			"leaf node <%s> has no value", l.Tag)
	}
	if l.Tag == "" {
		b.WriteString(*l.Value)
		return nil
	}
	b.WriteByte('<')
	b.WriteString(l.Tag)
	writeProps(b, l.Attrs)
	b.WriteByte('>')
	b.WriteString(*l.Value)
	b.WriteString("</")
	b.WriteString(l.Tag)
	b.WriteByte('>')
	return nil
}

func (l *Leaf) String() string {
	if l.Value == nil {
		return fmt.Sprintf("Leaf(%s, <nil>, %s)", l.Tag, l.Attrs.String())
	}
	return fmt.Sprintf("Leaf(%s, %q,%s)", l.Tag, *l.Value, l.Attrs.String())
}

// --- Parent ----------------------------------------------------------------

// Parent is a node with a tag and an ordered list of children.
// A nil Children slice is considered missing, whereas an empty, non-nil
// slice is a parent without children.
type Parent struct {
	Tag      string
	Children []Node
	Attrs    *Attributes
}

// NewParent creates a parent node. A nil children argument is replaced by an
// empty list. attrs may be nil.
func NewParent(tag string, children []Node, attrs *Attributes) *Parent {
	if children == nil {
		children = []Node{}
	}
	return &Parent{Tag: tag, Children: children, Attrs: attrs}
}

// Attributes is part of interface Node.
func (p *Parent) Attributes() *Attributes {
	return p.Attrs
}

// AppendChild adds a child at the end of p's children.
func (p *Parent) AppendChild(n Node) {
	p.Children = append(p.Children, n)
}

// ToHTML returns `<tag attrs>` followed by the serialization of every child,
// followed by `</tag>`.
func (p *Parent) ToHTML() (string, error) {
	var b strings.Builder
	if err := p.writeHTML(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (p *Parent) writeHTML(b *strings.Builder) error {
	if p.Tag == "" {
		return core.WrapError(ErrMissingTag, core.EINTERNAL,
			"parent node has no tag")
	}
	if p.Children == nil {
		return core.WrapError(ErrMissingChildren, core.EINTERNAL,
			"parent node <%s> has no children list", p.Tag)
	}
	b.WriteByte('<')
	b.WriteString(p.Tag)
	writeProps(b, p.Attrs)
	b.WriteByte('>')
	for _, ch := range p.Children {
		if err := ch.writeHTML(b); err != nil {
			tracer().Errorf("cannot serialize child of <%s>: %v", p.Tag, err)
			return err
		}
	}
	b.WriteString("</")
	b.WriteString(p.Tag)
	b.WriteByte('>')
	return nil
}

func (p *Parent) String() string {
	return fmt.Sprintf("Parent(%s, %d children,%s)", p.Tag, len(p.Children), p.Attrs.String())
}

var _ Node = &Leaf{}
var _ Node = &Parent{}
