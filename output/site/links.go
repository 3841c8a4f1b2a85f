package site

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/mdsite/engine/htmlnode"
	"github.com/npillmayer/mdsite/engine/htmlnode/xpathadapter"
)

// BrokenLink is a site-absolute link for which no file has been generated.
type BrokenLink struct {
	Page string // Markdown source containing the link
	Link string
}

// LocalLinks returns all site-absolute link targets of a page tree, i.e.
// hrefs of anchors and srcs of images starting with a single '/'.
func LocalLinks(tree htmlnode.Node) []string {
	var links []string
	for _, expr := range []string{"//a/@href", "//img/@src"} {
		targets, err := xpathadapter.Find(tree, expr)
		if err != nil {
			tracer().Errorf("link query failed: %v", err)
			continue
		}
		for _, target := range targets {
			if strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") {
				links = append(links, target)
			}
		}
	}
	return links
}

// CheckLinks verifies the site-absolute links of all pages against the
// files below cfg.DestDir. A link to a folder is satisfied by an
// `index.html` within it. Broken links are traced as errors and returned.
func CheckLinks(cfg Config, pages []Output) []BrokenLink {
	var broken []BrokenLink
	for _, out := range pages {
		for _, link := range LocalLinks(out.Page.Tree) {
			if !linkTargetExists(cfg.DestDir, link) {
				tracer().Errorf("%s: broken link %s", out.Page.Source, link)
				broken = append(broken, BrokenLink{Page: out.Page.Source, Link: link})
			}
		}
	}
	return broken
}

func linkTargetExists(root string, link string) bool {
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		link = link[:i]
	}
	path := filepath.Join(root, filepath.FromSlash(link))
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		_, err = os.Stat(filepath.Join(path, "index.html"))
		return err == nil
	}
	return true
}
