package site

import (
	"github.com/npillmayer/schuko/gconf"
)

// Config holds the locations and options for generating a site.
type Config struct {
	ContentDir   string // tree of Markdown files
	StaticDir    string // assets to copy verbatim
	TemplatePath string // HTML template for every page
	DestDir      string // output folder; will be re-created
	BasePath     string // prefix for site-absolute links, usually ending in '/'
	CheckLinks   bool   // report site-absolute links without target
}

// Configuration keys read by DefaultConfig.
const (
	KeyContent    = "content"
	KeyStatic     = "static"
	KeyTemplate   = "template"
	KeyDest       = "dest"
	KeyBasePath   = "basepath"
	KeyCheckLinks = "checklinks"
)

// DefaultConfig returns a configuration taken from the global application
// configuration (see package gconf). Keys which are not set default to
//
//     content    "content"
//     static     "static"
//     template   "template.html"
//     dest       "docs"
//     basepath   "/"
//     checklinks false
//
func DefaultConfig() Config {
	return Config{
		ContentDir:   confString(KeyContent, "content"),
		StaticDir:    confString(KeyStatic, "static"),
		TemplatePath: confString(KeyTemplate, "template.html"),
		DestDir:      confString(KeyDest, "docs"),
		BasePath:     confString(KeyBasePath, "/"),
		CheckLinks:   gconf.GetBool(KeyCheckLinks),
	}
}

func confString(key string, dflt string) string {
	if v := gconf.GetString(key); v != "" {
		tracer().Debugf("config[%s] = %s", key, v)
		return v
	}
	return dflt
}
