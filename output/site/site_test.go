package site

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/mdsite/core"
	"github.com/npillmayer/mdsite/input/markdown"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const template = `<!DOCTYPE html>
<html><head><title>{{ Title }}</title><link href="/index.css" rel="stylesheet"></head>
<body><article>{{ Content }}</article></body></html>`

func writeFile(t *testing.T, path string, content string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

// setupSite creates a small site below a temporary folder.
func setupSite(t *testing.T) Config {
	root := t.TempDir()
	cfg := Config{
		ContentDir:   filepath.Join(root, "content"),
		StaticDir:    filepath.Join(root, "static"),
		TemplatePath: filepath.Join(root, "template.html"),
		DestDir:      filepath.Join(root, "docs"),
		BasePath:     "/",
	}
	writeFile(t, cfg.TemplatePath, template)
	writeFile(t, filepath.Join(cfg.StaticDir, "index.css"), "body { margin: 0; }")
	writeFile(t, filepath.Join(cfg.StaticDir, "images", "x.png"), "PNG")
	writeFile(t, filepath.Join(cfg.ContentDir, "index.md"),
		"# Home\n\n![x](/images/x.png)\n\n- [post](/blog/post)\n- [gone](/missing)\n- [ext](https://example.com)")
	writeFile(t, filepath.Join(cfg.ContentDir, "blog", "post", "index.md"),
		"# A Post\n\nSome **bold** text, back [home](/#top).")
	writeFile(t, filepath.Join(cfg.ContentDir, "notes.txt"), "not markdown")
	return cfg
}

func TestCopyStatic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdsite.site")
	defer teardown()
	//
	cfg := setupSite(t)
	writeFile(t, filepath.Join(cfg.DestDir, "stale.html"), "old")
	require.NoError(t, CopyStatic(cfg.StaticDir, cfg.DestDir))
	assert.Equal(t, "body { margin: 0; }", readFile(t, filepath.Join(cfg.DestDir, "index.css")))
	assert.Equal(t, "PNG", readFile(t, filepath.Join(cfg.DestDir, "images", "x.png")))
	_, err := os.Stat(filepath.Join(cfg.DestDir, "stale.html"))
	assert.True(t, os.IsNotExist(err))
}

func TestCopyStaticMissingSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdsite.site")
	defer teardown()
	//
	err := CopyStatic(filepath.Join(t.TempDir(), "nope"), filepath.Join(t.TempDir(), "out"))
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestApplyTemplate(t *testing.T) {
	page := &Page{Title: "T", Content: `<div><p><a href="/x">x</a><img src="/i.png" alt="i"></img></p></div>`}
	out := ApplyTemplate(template, page, "/")
	assert.Contains(t, out, "<title>T</title>")
	assert.Contains(t, out, `<article><div><p><a href="/x">x</a>`)
	assert.Contains(t, out, `href="/index.css"`)
	//
	out = ApplyTemplate(template, page, "/repo/")
	assert.Contains(t, out, `<a href="/repo/x">`)
	assert.Contains(t, out, `<img src="/repo/i.png"`)
	assert.Contains(t, out, `href="/repo/index.css"`)
	assert.NotContains(t, out, "{{")
}

func TestRenderPage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdsite.site")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "bom.md")
	writeFile(t, path, "\xEF\xBB\xBF# Title\n\nSome **bold** text")
	page, err := RenderPage(path).PageContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Title", page.Title)
	assert.Equal(t, "<div><h1>Title</h1><p>Some <b>bold</b> text</p></div>", page.Content)
	assert.Equal(t, path, page.Source)
	//
	_, err = RenderPage(filepath.Join(t.TempDir(), "missing.md")).Page()
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestConvertPageErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdsite.site")
	defer teardown()
	//
	_, err := ConvertPage("a.md", "no heading here")
	assert.True(t, errors.Is(err, markdown.ErrNoHeading))
	_, err = ConvertPage("b.md", "# T\n\n_open")
	assert.True(t, errors.Is(err, markdown.ErrUnmatchedDelimiter))
	assert.Contains(t, err.Error(), "b.md")
}

func TestGeneratePage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdsite.site")
	defer teardown()
	//
	cfg := setupSite(t)
	dest := filepath.Join(cfg.DestDir, "deep", "er", "index.html")
	err := GeneratePage(filepath.Join(cfg.ContentDir, "index.md"), cfg.TemplatePath, dest, "/base/")
	require.NoError(t, err)
	html := readFile(t, dest)
	assert.Contains(t, html, "<title>Home</title>")
	assert.Contains(t, html, `<img src="/base/images/x.png" alt="x"></img>`)
	assert.Contains(t, html, `<a href="/base/blog/post">post</a>`)
	assert.Contains(t, html, `<a href="https://example.com">ext</a>`)
}

func TestBuild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdsite.site")
	defer teardown()
	//
	cfg := setupSite(t)
	cfg.BasePath = "/site/"
	cfg.CheckLinks = true
	report, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, report.Pages, 2)
	assert.Equal(t, filepath.Join(cfg.DestDir, "blog", "post", "index.html"), report.Pages[0].Dest)
	assert.Equal(t, filepath.Join(cfg.DestDir, "index.html"), report.Pages[1].Dest)
	//
	post := readFile(t, report.Pages[0].Dest)
	assert.Contains(t, post, "<title>A Post</title>")
	assert.Contains(t, post, `<a href="/site/#top">home</a>`)
	_, err = os.Stat(filepath.Join(cfg.DestDir, "notes.html"))
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, "PNG", readFile(t, filepath.Join(cfg.DestDir, "images", "x.png")))
	//
	assert.Equal(t, []BrokenLink{
		{Page: filepath.Join(cfg.ContentDir, "index.md"), Link: "/missing"},
	}, report.BrokenLinks)
}

func TestGenerateTreeStopsOnError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdsite.site")
	defer teardown()
	//
	cfg := setupSite(t)
	writeFile(t, filepath.Join(cfg.ContentDir, "broken.md"), "# Broken\n\n**never closed")
	pages, err := GenerateTree(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, markdown.ErrUnmatchedDelimiter))
	assert.Len(t, pages, 1) // blog/post/index.md precedes broken.md
}

func TestLocalLinks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdsite.site")
	defer teardown()
	//
	tree, err := markdown.ToHTMLNode("[a](/a) [b](//cdn.org/b) [c](c.html) ![d](/d.png) [e](https://e.org)")
	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "/d.png"}, LocalLinks(tree))
}

func TestDefaultConfig(t *testing.T) {
	teardown := testconfig.QuickConfig(t, map[string]string{
		"basepath":   "/blog/",
		"dest":       "public",
		"checklinks": "true",
	})
	defer teardown()
	//
	cfg := DefaultConfig()
	assert.Equal(t, "/blog/", cfg.BasePath)
	assert.Equal(t, "public", cfg.DestDir)
	assert.Equal(t, "content", cfg.ContentDir)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, "template.html", cfg.TemplatePath)
	assert.True(t, cfg.CheckLinks)
}
