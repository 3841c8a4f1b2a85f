package site

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Output describes a generated page.
type Output struct {
	Dest string // path of the HTML file written
	Page *Page
}

// Report summarizes a site build.
type Report struct {
	Pages       []Output
	BrokenLinks []BrokenLink // only filled if links have been checked
}

// Build re-creates cfg.DestDir from the static folder and generates all
// pages of the content tree. If cfg.CheckLinks is set, site-absolute links
// are verified against the generated site.
func Build(ctx context.Context, cfg Config) (*Report, error) {
	tracer().Infof("building site from %s into %s", cfg.ContentDir, cfg.DestDir)
	if err := CopyStatic(cfg.StaticDir, cfg.DestDir); err != nil {
		return nil, err
	}
	pages, err := GenerateTree(ctx, cfg)
	if err != nil {
		return nil, err
	}
	report := &Report{Pages: pages}
	if cfg.CheckLinks {
		report.BrokenLinks = CheckLinks(cfg, pages)
	}
	return report, nil
}

type job struct {
	dest    string
	promise PagePromise
}

// GenerateTree converts every Markdown file (extension ".md") below
// cfg.ContentDir and writes it to the same relative location below
// cfg.DestDir, with extension ".html". Other files are ignored.
//
// Conversions run concurrently; pages are written in lexical order of the
// content tree. The first error stops generation.
func GenerateTree(ctx context.Context, cfg Config) ([]Output, error) {
	template, err := readSource(cfg.TemplatePath)
	if err != nil {
		return nil, err
	}
	var jobs []job
	err = filepath.WalkDir(cfg.ContentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fileError(err, "cannot walk %s", path)
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}
		rel, err := filepath.Rel(cfg.ContentDir, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(cfg.DestDir, strings.TrimSuffix(rel, ".md")+".html")
		tracer().Debugf("scheduling %s", path)
		jobs = append(jobs, job{dest: dest, promise: RenderPage(path)})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DestDir, 0755); err != nil {
		return nil, fileError(err, "cannot create %s", cfg.DestDir)
	}
	pages := make([]Output, 0, len(jobs))
	for _, j := range jobs {
		page, err := j.promise.PageContext(ctx)
		if err != nil {
			tracer().Errorf("page %s failed: %v", j.dest, err)
			return pages, err
		}
		if err := writePage(j.dest, ApplyTemplate(template, page, cfg.BasePath)); err != nil {
			return pages, err
		}
		pages = append(pages, Output{Dest: j.dest, Page: page})
	}
	return pages, nil
}
