package htmlnode

// Walk traverses the tree rooted at n depth-first, visiting a parent before
// its children. If f returns false for a parent, its children are skipped.
func Walk(n Node, f func(Node) bool) {
	if n == nil {
		return
	}
	if !f(n) {
		return
	}
	if p, ok := n.(*Parent); ok {
		for _, ch := range p.Children {
			Walk(ch, f)
		}
	}
}

// InnerText concatenates the values of all leafs below n, in document order.
func InnerText(n Node) string {
	var text []byte
	Walk(n, func(node Node) bool {
		if l, ok := node.(*Leaf); ok && l.Value != nil {
			text = append(text, *l.Value...)
		}
		return true
	})
	return string(text)
}

// TagName returns the tag of n, or "" for untagged leafs.
func TagName(n Node) string {
	switch node := n.(type) {
	case *Leaf:
		return node.Tag
	case *Parent:
		return node.Tag
	}
	return ""
}
