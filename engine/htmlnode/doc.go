/*
Package htmlnode implements the output tree of a Markdown conversion.

A tree consists of two kinds of nodes: Leaf nodes carry terminal content
(optionally wrapped in a tag), Parent nodes carry an ordered list of child
nodes. Both may hold attributes, which are kept in insertion order to produce
deterministic output.

Serialization does not escape text content or attribute values. Text is
emitted verbatim.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmlnode

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdsite.htmlnode'.
func tracer() tracing.Trace {
	return tracing.Select("mdsite.htmlnode")
}
