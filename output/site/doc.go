/*
Package site generates a static web site from a tree of Markdown files.

Every Markdown file of a content directory is converted to HTML (see
package input/markdown) and poured into an HTML template. The template
may contain the placeholders

   {{ Title }}     replaced by the first level-1 heading of the page
   {{ Content }}   replaced by the HTML of the page

Site-absolute references within the result (`href="/…"` and `src="/…"`)
are rewritten to start with a configurable base path, which allows hosting
a site in a sub-folder (as with GitHub Pages). Static assets are copied
verbatim.

As conversions may be numerous, GenerateTree works in an async/await
fashion: every page is rendered by a promise, and results are written in
the order of the content tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package site

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdsite.site'.
func tracer() tracing.Trace {
	return tracing.Select("mdsite.site")
}
