package markdown

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/npillmayer/mdsite/core"
)

// ErrUnmatchedDelimiter is returned if an inline delimiter (`, ** or _) is
// opened but not closed.
var ErrUnmatchedDelimiter = errors.New("markdown: unmatched inline delimiter")

// Alt/anchor text must not contain brackets, URLs must not contain parens.
var (
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)
)

// delimiters in order of resolution
var delimiters = []struct {
	delim string
	kind  SpanKind
}{
	{"`", Code},
	{"**", Bold},
	{"_", Italic},
}

// TextToSpans splits inline text into a sequence of spans.
//
// Images are extracted first, then links, then code, bold and italic text.
// Every step operates on plain spans only, so e.g. an underscore within the
// URL of a link is never taken for an italic delimiter.
// Delimited markup does not nest.
//
// An empty text results in an empty sequence.
func TextToSpans(text string) ([]Span, error) {
	spans := []Span{PlainSpan(text)}
	spans = splitImages(spans)
	spans = splitLinks(spans)
	var err error
	for _, d := range delimiters {
		if spans, err = splitDelimiter(spans, d.delim, d.kind); err != nil {
			return nil, err
		}
	}
	return spans, nil
}

// splitImages extracts `![alt](url)` from plain spans.
func splitImages(spans []Span) []Span {
	return splitPattern(spans, Image, func(text string, from int) []int {
		loc := imagePattern.FindStringSubmatchIndex(text[from:])
		return shift(loc, from)
	})
}

// splitLinks extracts `[text](url)` from plain spans. A match directly
// preceded by '!' is skipped and the search continues one byte further.
func splitLinks(spans []Span) []Span {
	return splitPattern(spans, Link, func(text string, from int) []int {
		for from < len(text) {
			loc := shift(linkPattern.FindStringSubmatchIndex(text[from:]), from)
			if loc == nil {
				return nil
			}
			if loc[0] > 0 && text[loc[0]-1] == '!' {
				from = loc[0] + 1
				continue
			}
			return loc
		}
		return nil
	})
}

func shift(loc []int, by int) []int {
	for i := range loc {
		if loc[i] >= 0 {
			loc[i] += by
		}
	}
	return loc
}

// splitPattern replaces plain spans by the sequence of text fragments and
// matches found by next. next returns submatch indices (whole match, text,
// target) of the first match at or after position from, or nil.
// Empty text fragments between matches are dropped.
func splitPattern(spans []Span, kind SpanKind, next func(string, int) []int) []Span {
	result := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != Plain {
			result = append(result, span)
			continue
		}
		text := span.Text
		last := 0
		for loc := next(text, 0); loc != nil; loc = next(text, last) {
			if loc[0] > last {
				result = append(result, PlainSpan(text[last:loc[0]]))
			}
			result = append(result, Span{
				Kind:   kind,
				Text:   text[loc[2]:loc[3]],
				Target: text[loc[4]:loc[5]],
			})
			last = loc[1]
		}
		if last < len(text) {
			result = append(result, PlainSpan(text[last:]))
		}
	}
	return result
}

// splitDelimiter splits plain spans at every occurrence of delim. Fragments
// enclosed by delimiters are of kind kind, the others stay plain. Empty
// fragments are dropped. A span which contains an odd number of delimiters
// results in ErrUnmatchedDelimiter.
func splitDelimiter(spans []Span, delim string, kind SpanKind) ([]Span, error) {
	result := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != Plain {
			result = append(result, span)
			continue
		}
		parts := strings.Split(span.Text, delim)
		if len(parts) == 1 {
			result = append(result, span)
			continue
		}
		if len(parts)%2 == 0 {
			tracer().Errorf("unmatched delimiter %q in %q", delim, span.Text)
			return nil, core.WrapError(
				fmt.Errorf("%w %q in text %q", ErrUnmatchedDelimiter, delim, span.Text),
				core.EINVALID, "delimiter %q is opened but not closed", delim)
		}
		for i, part := range parts {
			if part == "" {
				continue
			}
			if i%2 == 0 {
				result = append(result, PlainSpan(part))
			} else {
				result = append(result, Span{Kind: kind, Text: part})
			}
		}
	}
	return result, nil
}
