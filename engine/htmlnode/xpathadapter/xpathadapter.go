/*
Package xpathadapter implements an xpath.NodeNavigator.

We use this library for XPath queries:

	github.com/antchfx/xpath

Package xpathadapter implements an adapter to enable antchfx/xpath to
access an output tree of package htmlnode. As htmlnode trees do not link
children to their parents, the navigator keeps the path from the root to
the current node.

The tree is presented as follows:

- a virtual document node sits above the root node of the tree
- parent nodes and tagged leafs are element nodes
- untagged leafs are text nodes
- a tagged leaf with a non-empty value has a single text child
- attributes are attribute nodes, in insertion order

For a description of the various methods of interface xpath.NodeNavigator
please refer to the documentation of antchfx/xpath. It is not replicated here.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package xpathadapter

import (
	"errors"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/mdsite/engine/htmlnode"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdsite.htmlnode'.
func tracer() tracing.Trace {
	return tracing.Select("mdsite.htmlnode")
}

// NodeNavigator navigates an htmlnode tree.
type NodeNavigator struct {
	root  htmlnode.Node
	path  []htmlnode.Node // root … current; empty if positioned at document
	index []int           // index[i] is the position of path[i] among its siblings
	text  bool            // positioned at the text child of a tagged leaf
	attr  int             // attributes index
}

// NewNavigator creates a new xpath.NodeNavigator for a tree.
func NewNavigator(root htmlnode.Node) *NodeNavigator {
	return &NodeNavigator{
		root: root,
		attr: -1,
	}
}

// CurrentNode returns the node a navigator is positioned at. For attribute
// and text positions the enclosing node is returned. At the document
// position, nil is returned.
func CurrentNode(nav xpath.NodeNavigator) (htmlnode.Node, error) {
	mynav, ok := nav.(*NodeNavigator)
	if !ok {
		return nil, errors.New("navigator is not of type xpathadapter.NodeNavigator")
	}
	return mynav.current(), nil
}

func (nav *NodeNavigator) current() htmlnode.Node {
	if len(nav.path) == 0 {
		return nil
	}
	return nav.path[len(nav.path)-1]
}

func (nav *NodeNavigator) siblings() []htmlnode.Node {
	switch len(nav.path) {
	case 0:
		return nil
	case 1:
		return []htmlnode.Node{nav.root}
	}
	if p, ok := nav.path[len(nav.path)-2].(*htmlnode.Parent); ok {
		return p.Children
	}
	return nil
}

func (nav *NodeNavigator) NodeType() xpath.NodeType {
	cur := nav.current()
	switch {
	case cur == nil:
		return xpath.RootNode
	case nav.attr != -1:
		return xpath.AttributeNode
	case nav.text:
		return xpath.TextNode
	}
	if l, ok := cur.(*htmlnode.Leaf); ok && l.Tag == "" {
		return xpath.TextNode
	}
	return xpath.ElementNode
}

func (nav *NodeNavigator) LocalName() string {
	cur := nav.current()
	if cur == nil || nav.text {
		return ""
	}
	if nav.attr != -1 {
		return cur.Attributes().Names()[nav.attr]
	}
	return htmlnode.TagName(cur)
}

func (*NodeNavigator) Prefix() string {
	return ""
}

func (nav *NodeNavigator) Value() string {
	cur := nav.current()
	if cur == nil {
		return htmlnode.InnerText(nav.root)
	}
	if nav.attr != -1 {
		name := cur.Attributes().Names()[nav.attr]
		v, _ := cur.Attributes().Get(name)
		return v
	}
	return htmlnode.InnerText(cur)
}

func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	n.path = append([]htmlnode.Node(nil), nav.path...)
	n.index = append([]int(nil), nav.index...)
	return &n
}

func (nav *NodeNavigator) MoveToRoot() {
	nav.path = nav.path[:0]
	nav.index = nav.index[:0]
	nav.text = false
	nav.attr = -1
}

func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attributes to element
		return true
	}
	if nav.text {
		nav.text = false
		return true
	}
	if len(nav.path) == 0 {
		return false
	}
	nav.path = nav.path[:len(nav.path)-1]
	nav.index = nav.index[:len(nav.index)-1]
	return true
}

func (nav *NodeNavigator) MoveToNextAttribute() bool {
	cur := nav.current()
	if cur == nil || nav.text {
		return false
	}
	if nav.attr >= cur.Attributes().Len()-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 || nav.text {
		return false
	}
	cur := nav.current()
	if cur == nil {
		nav.path = append(nav.path, nav.root)
		nav.index = append(nav.index, 0)
		return true
	}
	switch n := cur.(type) {
	case *htmlnode.Parent:
		if len(n.Children) == 0 {
			return false
		}
		nav.path = append(nav.path, n.Children[0])
		nav.index = append(nav.index, 0)
		return true
	case *htmlnode.Leaf:
		if n.Tag != "" && n.Value != nil && *n.Value != "" {
			nav.text = true
			return true
		}
	}
	return false
}

func (nav *NodeNavigator) moveToSibling(i int) bool {
	if nav.attr != -1 || nav.text || len(nav.path) == 0 {
		return false
	}
	sibs := nav.siblings()
	if i < 0 || i >= len(sibs) {
		return false
	}
	nav.path[len(nav.path)-1] = sibs[i]
	nav.index[len(nav.index)-1] = i
	return true
}

func (nav *NodeNavigator) MoveToFirst() bool {
	return nav.moveToSibling(0)
}

func (nav *NodeNavigator) MoveToNext() bool {
	if len(nav.index) == 0 {
		return false
	}
	return nav.moveToSibling(nav.index[len(nav.index)-1] + 1)
}

func (nav *NodeNavigator) MoveToPrevious() bool {
	if len(nav.index) == 0 {
		return false
	}
	return nav.moveToSibling(nav.index[len(nav.index)-1] - 1)
}

func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	o, ok := other.(*NodeNavigator)
	if !ok || o.root != nav.root {
		return false
	}
	nav.path = append(nav.path[:0], o.path...)
	nav.index = append(nav.index[:0], o.index...)
	nav.text = o.text
	nav.attr = o.attr
	return true
}

var _ xpath.NodeNavigator = &NodeNavigator{}

// --- Queries ---------------------------------------------------------------

// Find evaluates an XPath expression on the tree rooted at root and returns
// the string values of all matches, in document order.
func Find(root htmlnode.Node, expr string) ([]string, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		tracer().Errorf("invalid xpath expression %q: %v", expr, err)
		return nil, err
	}
	var values []string
	it := x.Select(NewNavigator(root))
	for it.MoveNext() {
		values = append(values, it.Current().Value())
	}
	return values, nil
}

// FindNodes evaluates an XPath expression and returns the matching nodes.
// Attribute and text matches are returned as their enclosing nodes.
func FindNodes(root htmlnode.Node, expr string) ([]htmlnode.Node, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		tracer().Errorf("invalid xpath expression %q: %v", expr, err)
		return nil, err
	}
	var nodes []htmlnode.Node
	it := x.Select(NewNavigator(root))
	for it.MoveNext() {
		if n, _ := CurrentNode(it.Current()); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}
