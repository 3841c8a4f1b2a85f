package site

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/mdsite/engine/htmlnode"
	"github.com/npillmayer/mdsite/input/markdown"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Template placeholders.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// Page is a converted Markdown document.
type Page struct {
	Source  string           // path of the Markdown file
	Title   string           // text of the first level-1 heading
	Content string           // serialized HTML tree
	Tree    *htmlnode.Parent // HTML tree, root is a `div`
}

// --- Rendering -------------------------------------------------------------

type pagePlusErr struct {
	page *Page
	err  error
}

// PagePromise delivers the result of an asynchronous page conversion.
type PagePromise interface {
	Page() (*Page, error)
	PageContext(ctx context.Context) (*Page, error)
}

type pageLoader struct {
	await func(ctx context.Context) (*Page, error)
}

func (loader pageLoader) Page() (*Page, error) {
	return loader.await(context.Background())
}

func (loader pageLoader) PageContext(ctx context.Context) (*Page, error) {
	return loader.await(ctx)
}

// RenderPage reads and converts a Markdown file in the background. A call
// to the promise will block until conversion has completed.
func RenderPage(path string) PagePromise {
	ch := make(chan pagePlusErr, 1) // sender never waits for a receiver
	go func(ch chan<- pagePlusErr) {
		result := pagePlusErr{}
		var md string
		if md, result.err = readSource(path); result.err == nil {
			result.page, result.err = ConvertPage(path, md)
		}
		ch <- result
		close(ch)
	}(ch)
	return pageLoader{
		await: func(ctx context.Context) (*Page, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.page, r.err
			}
		},
	}
}

// ConvertPage converts Markdown text md, read from source, into a page.
func ConvertPage(source string, md string) (*Page, error) {
	tree, err := markdown.ToHTMLNode(md)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	content, err := tree.ToHTML()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	title, err := markdown.ExtractTitle(md)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	tracer().Debugf("converted %s, title is %q", source, title)
	return &Page{Source: source, Title: title, Content: content, Tree: tree}, nil
}

// readSource reads a UTF-8 text file. A leading byte order mark is removed.
func readSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fileError(err, "cannot open %s", path)
	}
	defer f.Close()
	r := transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fileError(err, "cannot read %s", path)
	}
	return string(b), nil
}

// --- Templates -------------------------------------------------------------

// ApplyTemplate substitutes a page's title and content into template, then
// prefixes site-absolute `href` and `src` attributes with basepath.
func ApplyTemplate(template string, page *Page, basepath string) string {
	out := strings.ReplaceAll(template, TitlePlaceholder, page.Title)
	out = strings.ReplaceAll(out, ContentPlaceholder, page.Content)
	if basepath == "" || basepath == "/" {
		return out
	}
	out = strings.ReplaceAll(out, `href="/`, `href="`+basepath)
	out = strings.ReplaceAll(out, `src="/`, `src="`+basepath)
	return out
}

// GeneratePage converts Markdown file from, pours it into the template found
// at templatePath and writes the result to dest. Missing parent folders of
// dest are created.
func GeneratePage(from, templatePath, dest, basepath string) error {
	tracer().Infof("generating page from %s to %s using %s", from, dest, templatePath)
	template, err := readSource(templatePath)
	if err != nil {
		return err
	}
	page, err := RenderPage(from).Page()
	if err != nil {
		return err
	}
	return writePage(dest, ApplyTemplate(template, page, basepath))
}

func writePage(dest string, html string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fileError(err, "cannot create folder for %s", dest)
	}
	if err := os.WriteFile(dest, []byte(html), 0644); err != nil {
		return fileError(err, "cannot write %s", dest)
	}
	tracer().Infof("page generated: %s", dest)
	return nil
}
