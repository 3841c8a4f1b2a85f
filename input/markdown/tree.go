package markdown

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/mdsite/core"
	"github.com/npillmayer/mdsite/engine/htmlnode"
)

// ErrUnsupportedSpanKind is returned for a span kind which has no HTML
// representation.
var ErrUnsupportedSpanKind = errors.New("markdown: unsupported span kind")

// ToHTML converts a Markdown document and serializes the result.
func ToHTML(doc string) (string, error) {
	root, err := ToHTMLNode(doc)
	if err != nil {
		return "", err
	}
	return root.ToHTML()
}

// ToHTMLNode converts a Markdown document into a tree of HTML nodes.
// The root of the tree is a `div` holding one sub-tree per block, in
// document order.
//
// If any block fails to convert, no tree is returned.
func ToHTMLNode(doc string) (*htmlnode.Parent, error) {
	blocks := SplitBlocks(doc)
	children := make([]htmlnode.Node, 0, len(blocks))
	for i, block := range blocks {
		bt := ClassifyBlock(block)
		tracer().Debugf("block #%d is of type %s", i+1, bt)
		n, err := blockToHTMLNode(block, bt)
		if err != nil {
			return nil, fmt.Errorf("block #%d (%s): %w", i+1, bt, err)
		}
		children = append(children, n)
	}
	return htmlnode.NewParent("div", children, nil), nil
}

func blockToHTMLNode(block string, bt BlockType) (htmlnode.Node, error) {
	switch bt {
	case Paragraph:
		return inlineParent("p", strings.ReplaceAll(block, "\n", " "))
	case Heading:
		level := headingLevel(block)
		return inlineParent("h"+strconv.Itoa(level), block[level+1:])
	case CodeBlock:
		return codeToHTMLNode(block), nil
	case Quote:
		return inlineParent("blockquote", quoteText(block))
	case UnorderedList:
		return listToHTMLNode("ul", block, func(line string) string {
			return line[2:]
		})
	case OrderedList:
		return listToHTMLNode("ol", block, func(line string) string {
			_, item, _ := strings.Cut(line, ". ")
			return item
		})
	}
	return nil, core.Error(core.EINTERNAL, "unknown block type %v", bt)
}

// codeToHTMLNode wraps the verbatim content of a fenced block as
// <pre><code>…</code></pre>.
func codeToHTMLNode(block string) htmlnode.Node {
	inner := strings.TrimPrefix(block, codeFence)
	inner = strings.TrimSuffix(inner, codeFence)
	code := htmlnode.NewLeaf("code", strings.TrimSpace(inner), nil)
	return htmlnode.NewParent("pre", []htmlnode.Node{code}, nil)
}

// quoteText removes the quote marker "> " or ">" from every line.
func quoteText(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "> ") {
			lines[i] = line[2:]
		} else {
			lines[i] = strings.TrimPrefix(line, ">")
		}
	}
	return strings.Join(lines, "\n")
}

func listToHTMLNode(tag string, block string, item func(string) string) (htmlnode.Node, error) {
	lines := strings.Split(block, "\n")
	items := make([]htmlnode.Node, 0, len(lines))
	for _, line := range lines {
		li, err := inlineParent("li", item(line))
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return htmlnode.NewParent(tag, items, nil), nil
}

// inlineParent tokenizes text and wraps the resulting nodes in a parent
// with the given tag.
func inlineParent(tag string, text string) (htmlnode.Node, error) {
	children, err := TextToHTMLNodes(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(tag, children, nil), nil
}

// TextToHTMLNodes tokenizes inline text and maps every span to an HTML node.
func TextToHTMLNodes(text string) ([]htmlnode.Node, error) {
	spans, err := TextToSpans(text)
	if err != nil {
		return nil, err
	}
	nodes := make([]htmlnode.Node, 0, len(spans))
	for _, span := range spans {
		n, err := SpanToHTMLNode(span)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// SpanToHTMLNode maps a span to a leaf node:
//
//     plain   →  raw text
//     bold    →  <b>
//     italic  →  <i>
//     code    →  <code>
//     link    →  <a href="target">
//     image   →  <img src="target" alt="text">, with empty value
//
func SpanToHTMLNode(span Span) (htmlnode.Node, error) {
	switch span.Kind {
	case Plain:
		return htmlnode.Text(span.Text), nil
	case Bold:
		return htmlnode.NewLeaf("b", span.Text, nil), nil
	case Italic:
		return htmlnode.NewLeaf("i", span.Text, nil), nil
	case Code:
		return htmlnode.NewLeaf("code", span.Text, nil), nil
	case Link:
		return htmlnode.NewLeaf("a", span.Text, htmlnode.NewAttributes("href", span.Target)), nil
	case Image:
		return htmlnode.NewLeaf("img", "",
			htmlnode.NewAttributes("src", span.Target, "alt", span.Text)), nil
	}
	tracer().Errorf("no HTML node for span %v", span)
	return nil, core.WrapError(
		fmt.Errorf("%w: %v", ErrUnsupportedSpanKind, span.Kind),
		core.EINTERNAL, "cannot convert span of kind %v", span.Kind)
}
