package markdown

import "fmt"

// SpanKind classifies a span of inline text.
type SpanKind uint8

const (
	Plain SpanKind = iota
	Bold
	Italic
	Code
	Link
	Image
)

func (k SpanKind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	case Link:
		return "link"
	case Image:
		return "image"
	}
	return fmt.Sprintf("SpanKind(%d)", uint8(k))
}

// Span is a fragment of inline text. For images, Text holds the alt text.
// Target is the URL of links and images and empty for all other kinds.
//
// Spans are values and compare with ==.
type Span struct {
	Kind   SpanKind
	Text   string
	Target string
}

// PlainSpan creates a span of kind Plain.
func PlainSpan(text string) Span {
	return Span{Kind: Plain, Text: text}
}

func (s Span) String() string {
	if s.Kind == Link || s.Kind == Image {
		return fmt.Sprintf("%s(%q, %q)", s.Kind, s.Text, s.Target)
	}
	return fmt.Sprintf("%s(%q)", s.Kind, s.Text)
}
