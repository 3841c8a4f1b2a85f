package markdown

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// BlockType is the structural classification of a block.
type BlockType uint8

const (
	Paragraph BlockType = iota
	Heading
	OrderedList
	UnorderedList
	CodeBlock
	Quote
)

func (bt BlockType) String() string {
	switch bt {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case OrderedList:
		return "ordered_list"
	case UnorderedList:
		return "unordered_list"
	case CodeBlock:
		return "code"
	case Quote:
		return "quote"
	}
	return fmt.Sprintf("BlockType(%d)", uint8(bt))
}

const codeFence = "```"

var blankLines = regexp.MustCompile(`\n{2,}`)

// SplitBlocks splits a document at blank lines. Blocks are trimmed of
// surrounding white space; empty blocks are dropped.
func SplitBlocks(doc string) []string {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")
	var blocks []string
	for _, b := range blankLines.Split(doc, -1) {
		if b = strings.TrimSpace(b); b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// ClassifyBlock determines the type of a block. Predicates are tested in
// the order heading, code, quote, unordered list, ordered list; a block
// matching none of them is a paragraph.
func ClassifyBlock(block string) BlockType {
	if headingLevel(block) > 0 {
		return Heading
	}
	if strings.HasPrefix(block, codeFence) && strings.HasSuffix(block, codeFence) {
		return CodeBlock
	}
	lines := strings.Split(block, "\n")
	if allLines(lines, func(_ int, line string) bool {
		return strings.HasPrefix(line, ">")
	}) {
		return Quote
	}
	if allLines(lines, func(_ int, line string) bool {
		return strings.HasPrefix(line, "- ")
	}) {
		return UnorderedList
	}
	if allLines(lines, func(i int, line string) bool {
		line = strings.TrimLeftFunc(line, unicode.IsSpace)
		return strings.HasPrefix(line, strconv.Itoa(i+1)+". ")
	}) {
		return OrderedList
	}
	return Paragraph
}

// headingLevel returns the number of leading '#' if it is in [1…6] and
// followed by a space, and 0 otherwise.
func headingLevel(block string) int {
	n := 0
	for n < len(block) && block[n] == '#' {
		n++
	}
	if n < 1 || n > 6 || n == len(block) || block[n] != ' ' {
		return 0
	}
	return n
}

func allLines(lines []string, pred func(int, string) bool) bool {
	for i, line := range lines {
		if !pred(i, line) {
			return false
		}
	}
	return true
}
