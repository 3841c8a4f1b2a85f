/*
Package markdown converts Markdown text into an htmlnode tree.

Conversion runs in three steps. A document is split into blocks at blank
lines and every block is classified (paragraph, heading, list, quote, code).
The text of each block is then split into inline spans (plain, bold,
italic, code, link, image). Finally blocks and spans are mapped to HTML
nodes, which are collected under a single root `div`.

The supported dialect is small: inline markup does not nest, lists do not
nest, and there are no reference-style links. Text is not HTML-escaped.
Inline delimiters which are not closed are reported as errors, there is
no recovery from malformed input.

All functions of this package are free of side effects and may be called
concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markdown

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdsite.markdown'.
func tracer() tracing.Trace {
	return tracing.Select("mdsite.markdown")
}
